package packer

import (
	"fmt"
	"sort"

	"github.com/nestlab/irregularpack/geom"
)

// unit is one expanded copy of an input piece, ready for placement: its
// orientation table is precomputed and its rank (area, largest first) is
// fixed before either strategy runs.
type unit struct {
	id         string
	originalID string
	copyNumber int

	// original is the piece polygon exactly as the caller supplied it,
	// carried through untouched so an unplaced unit can be regrouped into
	// the next bin's batch without compounding normalization or margin.
	original []Point

	orientations []Orientation
	area         float64
}

func toGeomPolygon(p []Point) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, v := range p {
		out[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return out
}

func fromGeomPolygon(p geom.Polygon) []Point {
	out := make([]Point, len(p))
	for i, v := range p {
		out[i] = Point{X: v.X, Y: v.Y}
	}
	return out
}

// prepare runs the preparation pipeline: normalize, build the orientation
// table, expand quantities, and sort largest-first. Margin is applied later,
// at placement time, as clearance rather than a change to piece geometry.
func prepare(pieces []Piece, opts Options) ([]unit, error) {
	seen := make(map[string]bool, len(pieces))
	angles := opts.rotationAngles()

	units := make([]unit, 0, len(pieces))
	for _, piece := range pieces {
		if len(piece.Polygon) < 3 {
			return nil, ErrDegeneratePiece
		}
		if piece.Quantity < 1 {
			return nil, ErrNonPositiveQuantity
		}
		if seen[piece.ID] {
			return nil, ErrDuplicateID
		}
		seen[piece.ID] = true

		base := geom.Normalize(toGeomPolygon(piece.Polygon))

		orientations := make([]Orientation, len(angles))
		for i, angle := range angles {
			rotated := base
			if angle != 0 {
				rotated = geom.RotateAboutCentroid(base, float64(angle))
			}
			rotated = geom.Normalize(rotated)
			orientations[i] = Orientation{
				Rotation: angle,
				Polygon:  fromGeomPolygon(rotated),
				Area:     geom.Area(rotated),
			}
		}

		for n := 1; n <= piece.Quantity; n++ {
			units = append(units, unit{
				id:           fmt.Sprintf("%s_%d", piece.ID, n),
				originalID:   piece.ID,
				copyNumber:   n,
				original:     piece.Polygon,
				orientations: orientations,
				area:         orientations[0].Area,
			})
		}
	}

	sort.SliceStable(units, func(i, j int) bool {
		return units[i].area > units[j].area
	})
	return units, nil
}
