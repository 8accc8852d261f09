// Package scheduler implements the multi-bin scheduler (L3): it repeatedly
// invokes the single-bin packer, opening a fresh bin for every round that
// places at least one piece and spilling the round's unplaced pieces into
// the next bin's batch.
//
// 🚀 What is the scheduler?
//
//	The layer that turns "pack these pieces into one bin" into "pack these
//	pieces into as many bins as it takes". It stops when a round places
//	nothing — those leftovers are reported as globally unplaceable — or when
//	an optional max-bins cap is reached.
//
// ✨ Key properties:
//   - Deterministic: bin identifiers are assigned 1, 2, 3, … in round order;
//     everything below it (the packer, the oracle, the geometry kernel) is
//     itself deterministic under a fixed seed.
//   - No retries: a round that places nothing ends the loop immediately.
package scheduler
