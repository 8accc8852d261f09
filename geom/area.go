package geom

// SignedArea returns the shoelace signed area of p.
// Positive indicates counterclockwise winding, negative clockwise, and
// (near) zero indicates a degenerate or collinear polygon.
//
// Complexity: O(n).
func SignedArea(p Polygon) float64 {
	n := len(p)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// Area returns the absolute value of SignedArea: the unsigned area enclosed
// by p. Degenerate polygons (fewer than 3 points, zero area) report 0.
//
// Complexity: O(n).
func Area(p Polygon) float64 {
	a := SignedArea(p)
	if a < 0 {
		return -a
	}
	return a
}

// IsCounterClockwise reports whether p winds counterclockwise. Degenerate
// polygons (signed area within Epsilon of zero) report false.
func IsCounterClockwise(p Polygon) bool {
	return SignedArea(p) > Epsilon
}

// EnsureCounterClockwise returns p unchanged if it already winds
// counterclockwise, or a reversed copy otherwise. Degenerate polygons are
// returned unchanged.
func EnsureCounterClockwise(p Polygon) Polygon {
	a := SignedArea(p)
	if a >= -Epsilon {
		return p.Clone()
	}
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Centroid returns the area-weighted geometric centroid of p. For a
// degenerate polygon (area within Epsilon of zero, or fewer than 3 points)
// it falls back to the arithmetic mean of the vertices, or (0,0) for an
// empty polygon.
//
// Complexity: O(n).
func Centroid(p Polygon) Point {
	n := len(p)
	if n == 0 {
		return Point{}
	}

	a := SignedArea(p)
	if a > -Epsilon && a < Epsilon {
		var sx, sy float64
		for _, pt := range p {
			sx += pt.X
			sy += pt.Y
		}
		return Point{X: sx / float64(n), Y: sy / float64(n)}
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		cx += (p[i].X + p[j].X) * cross
		cy += (p[i].Y + p[j].Y) * cross
	}
	factor := 1 / (6 * a)
	return Point{X: cx * factor, Y: cy * factor}
}
