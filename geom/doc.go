// Package geom provides the pure geometric primitives the nesting pipeline
// is built on: area, centroid, bounding box, translation, rotation,
// normalization, convex hull, point-in-polygon, polygon intersection and
// polygon offsetting.
//
// 🚀 What is geom?
//
//	A small kernel of total functions over 2D polygons (point-in-polygon
//	delegates to mikenye/geom2d, offsetting to go-clipper/clipper2; the
//	rest uses only the standard library), used as the foundation for:
//	  • the placement oracle (package oracle), which asks "does this
//	    translated polygon overlap any placed polygon?"
//	  • the single-bin packer (package packer), which rotates and
//	    normalizes candidate orientations before handing them to the oracle
//
// ✨ Key properties:
//   - Total: every function returns a safe zero value on degenerate input
//     (fewer than 3 points, zero-length edges) instead of panicking.
//   - Pure: every function accepts a Polygon and returns a fresh one;
//     nothing is mutated in place.
//   - Deterministic: no randomness, no global state, no wall-clock reads.
//
// Tolerance (Epsilon) is 1e-6 throughout, matching the numeric policy used
// by every layer above this one.
package geom
