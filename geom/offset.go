package geom

import (
	"math"

	clipper "github.com/go-clipper/clipper2"
)

// offsetScale is the fixed-point grid Clipper2 operates on. Clipper2's
// engine is integer (Point64); this package's polygons are float64, so
// coordinates are scaled up before the call and back down after. 1e4
// preserves four decimal digits, comfortably finer than geom.Epsilon for
// the piece magnitudes this system packs.
const offsetScale = 1e4

// Offset inflates (distance > 0) or deflates (distance < 0) p by distance,
// with mitered joins, via Clipper2's polygon-offsetting engine. distance
// == 0 or an empty/degenerate polygon returns p unchanged; a result
// Clipper2 collapses to nothing (can happen for large negative distances)
// also returns p unchanged rather than an empty polygon, keeping Offset
// total.
//
// Contract: for a simple polygon and distance > 0, every point on the
// returned boundary lies distance away from the nearest original edge
// along its outward normal, and the result contains the original polygon.
//
// Complexity: O(n).
func Offset(p Polygon, distance float64) Polygon {
	n := len(p)
	if n < 3 || distance == 0 {
		return p.Clone()
	}

	ccw := EnsureCounterClockwise(p)
	path := make(clipper.Path64, n)
	for i, v := range ccw {
		path[i] = clipper.Point64{
			X: int64(math.Round(v.X * offsetScale)),
			Y: int64(math.Round(v.Y * offsetScale)),
		}
	}

	result := clipper.InflatePaths64(
		clipper.Paths64{path},
		distance*offsetScale,
		clipper.Miter,
		clipper.ClosedPolygon,
		clipper.OffsetOptions{MiterLimit: 2.0, ArcTolerance: 0.25},
	)
	if len(result) == 0 || len(result[0]) < 3 {
		return p.Clone()
	}

	out := make(Polygon, len(result[0]))
	for i, pt := range result[0] {
		out[i] = Point{X: float64(pt.X) / offsetScale, Y: float64(pt.Y) / offsetScale}
	}
	return out
}
