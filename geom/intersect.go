package geom

import "math"

// Intersects reports whether a and b overlap with non-empty interiors.
// It first rejects on a fast axis-aligned bounding-box test, then applies
// the Separating Axis Theorem over every edge normal of both polygons.
// Touching-but-not-overlapping (shared edge or vertex only) is treated as
// non-overlap: open intervals are used for the separation test, so an exact
// boundary touch does not itself trigger "intersects".
//
// For genuinely concave polygons SAT is not an exact overlap test (it can
// report intersection for polygons separated by a non-convex gap); this
// tracks spec.md's documented trade-off rather than falling back to a
// segment-intersection routine, since every caller in this module deals
// with bin-packing pieces where the candidate-enumeration approach in
// package oracle already bounds the false-negative rate in practice.
//
// Complexity: O((n+m)^2) worst case (n, m = vertex counts), dominated by
// the O(n+m) axis count times the O(n+m) projection per axis.
func Intersects(a, b Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}

	ba, bb := BoundingBox(a), BoundingBox(b)
	if ba.MaxX <= bb.MinX+Epsilon || bb.MaxX <= ba.MinX+Epsilon ||
		ba.MaxY <= bb.MinY+Epsilon || bb.MaxY <= ba.MinY+Epsilon {
		return false
	}

	for _, axis := range append(edgeNormals(a), edgeNormals(b)...) {
		minA, maxA := projectPolygon(a, axis)
		minB, maxB := projectPolygon(b, axis)
		if maxA <= minB+Epsilon || maxB <= minA+Epsilon {
			return false
		}
	}
	return true
}

// edgeNormals returns the left-hand normal (-dy, dx) of every edge of p,
// normalized to unit length; for a counterclockwise ring it points inward,
// which does not matter for the projection test. Zero-length edges
// contribute no axis.
func edgeNormals(p Polygon) []Point {
	n := len(p)
	axes := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx := p[j].X - p[i].X
		dy := p[j].Y - p[i].Y
		length := math.Hypot(dx, dy)
		if length < Epsilon {
			continue
		}
		axes = append(axes, Point{X: -dy / length, Y: dx / length})
	}
	return axes
}

// projectPolygon projects every vertex of p onto axis and returns the
// resulting [min, max] interval.
func projectPolygon(p Polygon, axis Point) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, pt := range p {
		d := pt.X*axis.X + pt.Y*axis.Y
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
