// Package nestapi implements the request handler (L4): it validates an
// incoming nesting request, converts it to the packer/scheduler's internal
// representation, invokes the scheduler, and wraps the result into the
// wire response schema. A chi router exposes it over HTTP.
//
// 🚀 What is the request handler?
//
//	The only layer that speaks JSON. Everything below it works with Go
//	structs and never fails outside of a handful of total, first-class
//	results (no position, no legal placement). L4 is where "malformed
//	input" becomes a client error and where an unexpected panic, were one
//	to occur, would become a generic server error instead of a crash.
//
// ✨ Key properties:
//   - Handle is transport-agnostic: it takes a Request and returns a
//     Response, so it can be driven by HTTP, a CLI, or a test directly.
//   - Validation failures and unsatisfiable-but-valid requests are both
//     first-class, distinguishable outcomes — only the former is an error.
package nestapi
