package geom

// BoundingBox returns the axis-aligned bounding box of p. An empty polygon
// reports the zero Bounds.
//
// Complexity: O(n).
func BoundingBox(p Polygon) Bounds {
	if len(p) == 0 {
		return Bounds{}
	}

	b := Bounds{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, pt := range p[1:] {
		if pt.X < b.MinX {
			b.MinX = pt.X
		}
		if pt.X > b.MaxX {
			b.MaxX = pt.X
		}
		if pt.Y < b.MinY {
			b.MinY = pt.Y
		}
		if pt.Y > b.MaxY {
			b.MaxY = pt.Y
		}
	}
	return b
}

// FitsWithin reports whether b lies within [0, width] x [0, height], up to
// Epsilon tolerance.
func (b Bounds) FitsWithin(width, height float64) bool {
	return b.MinX >= -Epsilon && b.MinY >= -Epsilon &&
		b.MaxX <= width+Epsilon && b.MaxY <= height+Epsilon
}

// Rectangle returns the four counterclockwise corners of an axis-aligned
// rectangle of the given width and height, with its minimum corner at
// (x, y).
func Rectangle(x, y, width, height float64) Polygon {
	return Polygon{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
}
