// Package irregularpack is the root of a two-dimensional irregular-shape
// bin-packing (nesting) system.
//
// 🚀 What is irregularpack?
//
//	A layered nesting engine: given a multiset of arbitrary simple polygons
//	and a rectangular bin of fixed width and height, it decides a rotation
//	and translation for each piece so placed pieces stay inside the bin,
//	never overlap, and collectively use as much of the sheet as possible.
//	Pieces that cannot fit spill into additional bins of the same size.
//
// Under the hood, everything is organized by layer:
//
//	geom/      — geometry kernel: area, centroid, rotation, convex hull,
//	             SAT intersection, point-in-polygon, polygon offset.
//	oracle/    — placement oracle: finite-candidate stand-in for a true
//	             no-fit-polygon, scoring legal translations.
//	packer/    — single-bin packer: greedy bottom-left/best-fit and a
//	             genetic-algorithm search over ordering and orientation.
//	scheduler/ — multi-bin scheduler: repeats the packer, spilling
//	             unplaced pieces into fresh bins.
//	nestapi/   — request handler: validation, JSON wire schema, HTTP router.
//	cmd/       — nestcli (demo driver) and nestserver (HTTP entrypoint).
package irregularpack
