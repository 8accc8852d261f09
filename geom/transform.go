package geom

import "math"

// Translate returns a copy of p with every vertex shifted by (dx, dy).
//
// Complexity: O(n).
func Translate(p Polygon, dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}

// Normalize translates p so its bounding box's minimum corner sits at the
// origin. Normalize is idempotent: Normalize(Normalize(p)) == Normalize(p).
// An empty polygon is returned unchanged.
//
// Complexity: O(n).
func Normalize(p Polygon) Polygon {
	if len(p) == 0 {
		return p.Clone()
	}
	b := BoundingBox(p)
	return Translate(p, -b.MinX, -b.MinY)
}

// Rotate returns a copy of p rotated by angleDegrees counterclockwise
// around origin. An empty polygon is returned unchanged.
//
// Complexity: O(n).
func Rotate(p Polygon, angleDegrees float64, origin Point) Polygon {
	if len(p) == 0 {
		return p.Clone()
	}

	rad := angleDegrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	out := make(Polygon, len(p))
	for i, pt := range p {
		dx := pt.X - origin.X
		dy := pt.Y - origin.Y
		out[i] = Point{
			X: origin.X + dx*cos - dy*sin,
			Y: origin.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// RotateAboutCentroid rotates p by angleDegrees around its own centroid.
func RotateAboutCentroid(p Polygon, angleDegrees float64) Polygon {
	return Rotate(p, angleDegrees, Centroid(p))
}
