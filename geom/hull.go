package geom

import (
	"math"
	"sort"
)

// ConvexHull computes the convex hull of an arbitrary point set using a
// Graham scan: the lowest (then leftmost) point anchors the sweep, the
// remaining points are sorted by polar angle around it, and a
// left-turning stack is maintained via the cross-product sign. The result
// winds counterclockwise and omits the closing duplicate point.
//
// Fewer than 3 points return the input unchanged (total function, never
// panics on degenerate input); copies of the anchor point are dropped.
//
// Complexity: O(n log n).
func ConvexHull(points []Point) Polygon {
	if len(points) < 3 {
		out := make(Polygon, len(points))
		copy(out, points)
		return out
	}

	anchor := points[0]
	for _, pt := range points[1:] {
		if pt.Y < anchor.Y || (pt.Y == anchor.Y && pt.X < anchor.X) {
			anchor = pt
		}
	}

	rest := make([]Point, 0, len(points)-1)
	for _, pt := range points {
		if pt != anchor {
			rest = append(rest, pt)
		}
	}

	sort.Slice(rest, func(i, j int) bool {
		ai := math.Atan2(rest[i].Y-anchor.Y, rest[i].X-anchor.X)
		aj := math.Atan2(rest[j].Y-anchor.Y, rest[j].X-anchor.X)
		if ai != aj {
			return ai < aj
		}
		// Tie-break by distance: closer point first, so collinear points
		// are dropped by the turn test below rather than kept out of order.
		di := (rest[i].X-anchor.X)*(rest[i].X-anchor.X) + (rest[i].Y-anchor.Y)*(rest[i].Y-anchor.Y)
		dj := (rest[j].X-anchor.X)*(rest[j].X-anchor.X) + (rest[j].Y-anchor.Y)*(rest[j].Y-anchor.Y)
		return di < dj
	})

	hull := make([]Point, 0, len(points))
	hull = append(hull, anchor)
	for _, pt := range rest {
		for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}

	return Polygon(hull)
}

// cross returns the z-component of (a->b) x (a->c); positive means b->c
// turns left (counterclockwise) of a->b.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
