// Package talus measures the topological persistence of scalar fields
// sampled over graphs — which pits and peaks matter, and at what scale
// the rest dissolves into noise.
//
// 🚀 What is talus?
//
//	A pure-Go library for 0-dimensional persistent topology:
//		• Core model: scalar-valued nodes, undirected edges, strict preconditions
//		• Persistence: per-node prominence via an elder-rule union-find sweep
//		• Filtration: the ordered log of basin merges, queryable at any threshold
//		• Morse–Smale: descending (pit) and ascending (peak) sweeps, bundled
//		• Grid bridge: elevation rasters in, prominence rasters out
//
// ✨ Why choose talus?
//
//   - Deterministic – value ties broken by ID, identical output every run
//   - Honest errors – malformed input fails loudly before the sweep starts
//   - Pure Go – no cgo, no hidden deps
//   - Query-friendly – threshold queries are pure replays, safe to parallelize
//
// Everything is organized under three subpackages:
//
//	core/      — Graph, Node, Edge types and the strict construction API
//	morse/     — persistence sweep, merge filtration, threshold queries
//	gridgraph/ — rectangular scalar fields ⇄ graphs, raster mapping
//
// Quick ASCII example (a 1×3 ridge, values 0–5–1):
//
//	a(0) ─── b(5) ─── c(1)
//
//	two pits compete across one saddle; the elder rule keeps "a",
//	and "c" dies with persistence 5 − 1 = 4.
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/talus-topo/talus
package talus
