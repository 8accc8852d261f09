package oracle

import (
	"math"

	"github.com/nestlab/irregularpack/geom"
)

// coarseGridUnit caps the resolution of the grid sweep for large pieces and
// bounds it for small ones: step = max(coarseGridUnit, dimension/4).
const coarseGridUnit = 20.0

// Options configures a single FindPosition call.
type Options struct {
	Strategy Strategy

	// Margin is the minimum clearance candidate must keep from every
	// already-placed polygon. It never shrinks the legal region against
	// the container wall — only against neighbors.
	Margin float64
}

// FindPosition returns the best legal translation for candidate (already
// normalized so its bounding box's minimum corner sits at the origin)
// inside container, given the polygons already placed in absolute
// coordinates. The second return value is false if no legal translation
// exists among the enumerated candidates.
//
// Complexity: O(k^2 + k * p * m^2) where k is the number of candidate
// anchors (bounded by the placed-piece count and the grid sweep
// resolution), p is the already-placed count, and m is the average vertex
// count: the k^2 term is anchor deduplication, the m^2 term the SAT test
// against each placed polygon.
func FindPosition(container Container, placed []geom.Polygon, candidate geom.Polygon, opts Options) (geom.Point, bool) {
	if len(candidate) < 3 {
		return geom.Point{}, false
	}

	anchors := candidatePositions(container, placed, candidate, opts.Margin)

	var (
		best  geom.Point
		found bool
	)
	for _, a := range anchors {
		translated := geom.Translate(candidate, a.X, a.Y)
		if !isLegal(container, placed, translated, opts.Margin) {
			continue
		}

		if found {
			// Bottom-left: lowest y, then lowest x. Best-fit: axes swapped.
			pa, sa, pb, sb := a.Y, a.X, best.Y, best.X
			if opts.Strategy == StrategyBestFit {
				pa, sa, pb, sb = a.X, a.Y, best.X, best.Y
			}
			if pa > pb+geom.Epsilon || (math.Abs(pa-pb) <= geom.Epsilon && sa >= sb-geom.Epsilon) {
				continue
			}
		}
		best = a
		found = true
	}
	return best, found
}

// Score ranks a legal anchor according to strategy as a weighted sum, lower
// being better: bottom-left scores y + 0.1*x; best-fit mirrors that with the
// axes swapped (x + 0.1*y). It is exported for callers that must choose
// among several orientations' oracle positions (the packer, comparing one
// candidate polygon per rotation).
func Score(s Strategy, a geom.Point) float64 {
	if s == StrategyBestFit {
		return a.X + 0.1*a.Y
	}
	return a.Y + 0.1*a.X
}

// isLegal reports whether translated (already positioned in absolute
// coordinates) fits inside container and keeps at least margin clearance
// from every placed polygon. Touching boundaries and touching neighbors
// (at margin 0) are legal.
//
// Containment is checked against translated itself, never the
// margin-inflated footprint: margin is clearance between parts, not a
// no-go zone against the sheet edge. The overlap check instead inflates
// translated by margin and tests that against the placed polygons
// un-inflated — if the inflated candidate doesn't intersect a neighbor,
// every point of the real candidate is at least margin away from it.
func isLegal(container Container, placed []geom.Polygon, translated geom.Polygon, margin float64) bool {
	b := geom.BoundingBox(translated)
	if !b.FitsWithin(container.Width, container.Height) {
		return false
	}
	clearance := translated
	if margin > 0 {
		clearance = geom.Offset(translated, margin)
	}
	for _, p := range placed {
		if geom.Intersects(clearance, p) {
			return false
		}
	}
	return true
}

// candidatePositions enumerates the anchor points described in spec §4.2:
// the container's lower-left corner, four corner-adjacent points per
// already-placed piece (plus their margin-cleared counterparts), and a
// coarse grid sweep, deduplicated at geom.Epsilon.
func candidatePositions(container Container, placed []geom.Polygon, candidate geom.Polygon, margin float64) []geom.Point {
	cb := geom.BoundingBox(candidate)
	width, height := cb.Width(), cb.Height()

	points := make([]geom.Point, 0, 8*len(placed)+8)
	points = append(points, geom.Point{X: 0, Y: 0})

	for _, p := range placed {
		pb := geom.BoundingBox(p)
		points = append(points,
			geom.Point{X: pb.MaxX, Y: pb.MinY}, // slide right of P, aligned to P's bottom
			geom.Point{X: pb.MaxX, Y: 0},        // slide right of P, drop to floor
			geom.Point{X: pb.MinX, Y: pb.MaxY},  // slide above P, aligned to P's left
			geom.Point{X: 0, Y: pb.MaxY},        // slide above P, back to wall
		)
		if margin > 0 {
			points = append(points,
				geom.Point{X: pb.MaxX + margin, Y: pb.MinY}, // slide right, cleared by margin
				geom.Point{X: pb.MaxX + margin, Y: 0},
				geom.Point{X: pb.MinX, Y: pb.MaxY + margin}, // slide above, cleared by margin
				geom.Point{X: 0, Y: pb.MaxY + margin},
			)
		}
	}

	stepX := math.Max(coarseGridUnit, width/4)
	stepY := math.Max(coarseGridUnit, height/4)
	if stepX > 0 && stepY > 0 {
		for x := 0.0; x <= container.Width-width+geom.Epsilon; x += stepX {
			for y := 0.0; y <= container.Height-height+geom.Epsilon; y += stepY {
				points = append(points, geom.Point{X: x, Y: y})
			}
		}
	}

	return dedupe(points)
}

// dedupe removes points that are within geom.Epsilon of one already kept,
// preserving the first occurrence's position in the output order.
func dedupe(points []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		duplicate := false
		for _, kept := range out {
			if math.Abs(p.X-kept.X) < geom.Epsilon && math.Abs(p.Y-kept.Y) < geom.Epsilon {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, p)
		}
	}
	return out
}
