// Package packer implements the single-bin packer (L2): given a multiset of
// pieces and a rectangular bin, it orders the pieces, picks a rotation for
// each, and drives the placement oracle to decide a position — or leaves the
// piece unplaced when no legal position exists.
//
// 🚀 What is the packer?
//
//	The layer that turns a pile of polygons into a packing for one bin. It
//	prepares pieces (normalize, build the orientation table, expand
//	quantities, sort largest-first) and then hands them to one of two
//	strategies: a deterministic greedy bottom-left/best-fit sweep, or a
//	genetic algorithm that searches over orderings and orientations. Margin
//	is enforced as oracle-side clearance between neighbors, not as a change
//	to piece geometry.
//
// ✨ Key properties:
//   - Deterministic under a fixed seed: same pieces, same Options, same
//     RNG seed ⇒ bit-identical output.
//   - Total: a piece that cannot be placed is reported in Unplaced, never
//     dropped silently and never causes an error.
//   - Single-threaded: no goroutines, no shared mutable state; safe to run
//     many Pack calls concurrently as long as each owns its own Options.
package packer
