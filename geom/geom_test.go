package geom_test

import (
	"testing"

	"github.com/nestlab/irregularpack/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	return geom.Polygon{{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}}
}

func TestArea_Square(t *testing.T) {
	assert.InDelta(t, 100.0, geom.Area(square(10)), geom.Epsilon, "10x10 square has area 100")
}

func TestArea_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, geom.Area(nil), "nil polygon has zero area")
	assert.Equal(t, 0.0, geom.Area(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}), "2-point polygon has zero area")
}

func TestSignedArea_Orientation(t *testing.T) {
	ccw := square(5)
	cw := geom.Polygon{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 0}}

	assert.True(t, geom.IsCounterClockwise(ccw), "square listed CCW should read CCW")
	assert.False(t, geom.IsCounterClockwise(cw), "square listed CW should not read CCW")
}

func TestEnsureCounterClockwise(t *testing.T) {
	cw := geom.Polygon{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 0}}
	fixed := geom.EnsureCounterClockwise(cw)
	assert.True(t, geom.IsCounterClockwise(fixed), "EnsureCounterClockwise must produce a CCW ring")
	assert.True(t, geom.IsCounterClockwise(geom.EnsureCounterClockwise(fixed)), "idempotent on an already-CCW ring")
}

func TestCentroid_Square(t *testing.T) {
	c := geom.Centroid(square(10))
	assert.InDelta(t, 5.0, c.X, geom.Epsilon)
	assert.InDelta(t, 5.0, c.Y, geom.Epsilon)
}

func TestBoundingBox(t *testing.T) {
	b := geom.BoundingBox(geom.Polygon{{X: -2, Y: 3}, {X: 5, Y: -1}, {X: 1, Y: 8}})
	assert.Equal(t, geom.Bounds{MinX: -2, MinY: -1, MaxX: 5, MaxY: 8}, b)
}

func TestBoundingBox_Empty(t *testing.T) {
	assert.Equal(t, geom.Bounds{}, geom.BoundingBox(nil))
}

func TestTranslate(t *testing.T) {
	got := geom.Translate(square(1), 3, 4)
	require.Len(t, got, 4)
	assert.Equal(t, geom.Point{X: 3, Y: 4}, got[0])
}

func TestNormalize_Idempotent(t *testing.T) {
	p := geom.Translate(square(4), 7, -3)
	once := geom.Normalize(p)
	twice := geom.Normalize(once)

	b := geom.BoundingBox(once)
	assert.InDelta(t, 0, b.MinX, geom.Epsilon)
	assert.InDelta(t, 0, b.MinY, geom.Epsilon)
	for i := range once {
		assert.InDelta(t, once[i].X, twice[i].X, geom.Epsilon)
		assert.InDelta(t, once[i].Y, twice[i].Y, geom.Epsilon)
	}
}

func TestRotate_PreservesArea(t *testing.T) {
	p := geom.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 4}}
	for _, theta := range []float64{0, 37, 90, 180, 270, 359} {
		rotated := geom.RotateAboutCentroid(p, theta)
		assert.InDelta(t, geom.Area(p), geom.Area(rotated), 1e-6, "rotation by %v must preserve area", theta)
	}
}

func TestRotate90_AxisSwap(t *testing.T) {
	p := geom.Polygon{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 5}, {X: 0, Y: 5}}
	rotated := geom.Normalize(geom.Rotate(p, 90, geom.Point{}))
	b := geom.BoundingBox(rotated)
	assert.InDelta(t, 5, b.Width(), 1e-6)
	assert.InDelta(t, 30, b.Height(), 1e-6)
}

func TestConvexHull_Square(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
	hull := geom.ConvexHull(pts)
	assert.Len(t, hull, 4, "interior point must be dropped")
	assert.InDelta(t, 100, geom.Area(hull), geom.Epsilon)
}

func TestConvexHull_FewPoints(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	assert.Equal(t, geom.Polygon(pts), geom.ConvexHull(pts))
}

func TestContainsPoint(t *testing.T) {
	p := square(10)
	assert.True(t, geom.ContainsPoint(p, geom.Point{X: 5, Y: 5}))
	assert.False(t, geom.ContainsPoint(p, geom.Point{X: 15, Y: 5}))
}

func TestIntersects_Overlapping(t *testing.T) {
	a := square(10)
	b := geom.Translate(square(10), 5, 5)
	assert.True(t, geom.Intersects(a, b))
}

func TestIntersects_TouchingIsNotOverlap(t *testing.T) {
	a := square(10)
	b := geom.Translate(square(10), 10, 0)
	assert.False(t, geom.Intersects(a, b), "sharing an edge must not count as intersecting")
}

func TestIntersects_Separated(t *testing.T) {
	a := square(10)
	b := geom.Translate(square(10), 100, 100)
	assert.False(t, geom.Intersects(a, b))
}

func TestOffset_Monotone(t *testing.T) {
	p := square(10)
	small := geom.Offset(p, 1)
	large := geom.Offset(p, 2)

	assert.Greater(t, geom.Area(large), geom.Area(small), "larger offset distance must grow more")
	assert.Greater(t, geom.Area(small), geom.Area(p), "positive offset must grow the polygon")

	// The bounding box grows by the offset distance on every side; this
	// holds regardless of how the offset engine orders or numbers vertices.
	bOrig := geom.BoundingBox(p)
	bSmall := geom.BoundingBox(small)
	bLarge := geom.BoundingBox(large)
	assert.InDelta(t, -1, bSmall.MinX-bOrig.MinX, 0.01)
	assert.InDelta(t, 1, bSmall.MaxX-bOrig.MaxX, 0.01)
	assert.InDelta(t, -2, bLarge.MinX-bOrig.MinX, 0.01)
	assert.InDelta(t, 2, bLarge.MaxX-bOrig.MaxX, 0.01)
}

func TestOffset_ZeroIsNoop(t *testing.T) {
	p := square(10)
	assert.Equal(t, p, geom.Offset(p, 0))
}

func TestRectangle(t *testing.T) {
	r := geom.Rectangle(1, 2, 3, 4)
	assert.Equal(t, geom.Polygon{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6}}, r)
	assert.True(t, geom.IsCounterClockwise(r))
}
