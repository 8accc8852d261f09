package geom

import geom2d "github.com/mikenye/geom2d"

// ContainsPoint reports whether pt lies inside p, delegating to geom2d's
// polygon/point relationship test. Points exactly on an edge or vertex count
// as contained; a degenerate p (fewer than 3 points, or one geom2d rejects
// as a malformed ring) reports false rather than raising an error, keeping
// ContainsPoint total as the kernel contract requires.
//
// Complexity: O(n).
func ContainsPoint(p Polygon, pt Point) bool {
	if len(p) < 3 {
		return false
	}

	points := make([]geom2d.Point[float64], len(p))
	for i, v := range p {
		points[i] = geom2d.NewPoint(v.X, v.Y)
	}

	poly, err := geom2d.NewPolygon(points, geom2d.PTSolid)
	if err != nil {
		return false
	}

	switch poly.RelationshipToPoint(geom2d.NewPoint(pt.X, pt.Y)) {
	case geom2d.PPRPointInside, geom2d.PPRPointOnEdge, geom2d.PPRPointOnVertex, geom2d.PPRPointInsideIsland:
		return true
	default:
		return false
	}
}
