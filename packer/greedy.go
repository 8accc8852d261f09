package packer

import (
	"math"

	"github.com/nestlab/irregularpack/geom"
	"github.com/nestlab/irregularpack/oracle"
)

// placeInOrder runs the bottom-left/best-fit placement sweep over units in
// the order given, trying every orientation of each unit and keeping the
// best-scoring legal (orientation, position) pair.
func placeInOrder(units []unit, container oracle.Container, strategy oracle.Strategy, margin float64) ([]Placement, []unit) {
	placed := make([]Placement, 0, len(units))
	var unplaced []unit
	absolute := make([]geom.Polygon, 0, len(units))

	for _, u := range units {
		bestOrientation, bestPos, found := bestOrientationFor(u, container, absolute, strategy, margin)
		if !found {
			unplaced = append(unplaced, u)
			continue
		}

		translated := geom.Translate(toGeomPolygon(bestOrientation.Polygon), bestPos.X, bestPos.Y)
		absolute = append(absolute, translated)
		placed = append(placed, Placement{
			ID:         u.id,
			OriginalID: u.originalID,
			CopyNumber: u.copyNumber,
			Polygon:    fromGeomPolygon(translated),
			X:          bestPos.X,
			Y:          bestPos.Y,
			Rotation:   bestOrientation.Rotation,
			Area:       bestOrientation.Area,
		})
	}
	return placed, unplaced
}

// bestOrientationFor evaluates every orientation of u against the pieces
// already placed (in absolute coordinates) and returns the one whose legal
// oracle position scores best.
func bestOrientationFor(u unit, container oracle.Container, placed []geom.Polygon, strategy oracle.Strategy, margin float64) (Orientation, geom.Point, bool) {
	var (
		best      Orientation
		bestPos   geom.Point
		bestScore = math.Inf(1)
		found     bool
	)
	for _, o := range u.orientations {
		pos, ok := oracle.FindPosition(container, placed, toGeomPolygon(o.Polygon), oracle.Options{Strategy: strategy, Margin: margin})
		if !ok {
			continue
		}
		s := oracle.Score(strategy, pos)
		if s < bestScore {
			bestScore = s
			best = o
			bestPos = pos
			found = true
		}
	}
	return best, bestPos, found
}

// placeOneOrientation evaluates a single chosen orientation index (used by
// the genetic algorithm, which fixes one orientation per gene rather than
// searching all of them).
func placeOneOrientation(u unit, orientationIdx int, container oracle.Container, placed []geom.Polygon, strategy oracle.Strategy, margin float64) (Placement, bool) {
	idx := orientationIdx % len(u.orientations)
	o := u.orientations[idx]

	pos, ok := oracle.FindPosition(container, placed, toGeomPolygon(o.Polygon), oracle.Options{Strategy: strategy, Margin: margin})
	if !ok {
		return Placement{}, false
	}
	translated := geom.Translate(toGeomPolygon(o.Polygon), pos.X, pos.Y)
	return Placement{
		ID:         u.id,
		OriginalID: u.originalID,
		CopyNumber: u.copyNumber,
		Polygon:    fromGeomPolygon(translated),
		X:          pos.X,
		Y:          pos.Y,
		Rotation:   o.Rotation,
		Area:       o.Area,
	}, true
}
