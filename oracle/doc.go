// Package oracle implements the placement oracle (L1): given a container
// rectangle, the polygons already placed inside it, and a candidate
// polygon normalized to the origin, it decides the best legal translation
// for the candidate, or reports that none exists.
//
// 🚀 What is the placement oracle?
//
//	A finite-candidate stand-in for a true no-fit polygon (NFP). Rather
//	than computing the exact locus of legal translations, it enumerates a
//	bounded set of anchor points — the container corner, corner-adjacent
//	points of every already-placed piece, and a coarse grid sweep — and
//	picks the best of the legal ones.
//
// ✨ Key properties:
//   - Pure: FindPosition takes slices and returns a Point; it has no
//     side effects and keeps no state across calls.
//   - Deterministic: candidates are generated and scored in a fixed order,
//     so ties resolve the same way on every run.
//   - Total on well-formed input: "no legal position" is a first-class
//     result (ok == false), never a panic or an error.
package oracle
