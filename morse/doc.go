// Package morse computes 0-dimensional topological persistence over
// scalar-valued graphs: how significant each local extremum is, and the
// order in which its basin merges into more significant neighbors.
//
// 🚀 What is 0-dimensional persistence?
//
//	Sweep the nodes of a graph from most to least extreme value. Each local
//	extremum opens a "basin"; as the sweep rises past saddles, touching
//	basins merge under the elder rule (the basin with the more extreme
//	extremum survives). The value gap between a basin's extremum and the
//	saddle that absorbs it is that basin's persistence — a noise-robust
//	measure of how prominent the feature is. It's widely used in:
//	  • Terrain analysis (peak/valley prominence on digital elevation models)
//	  • Watershed segmentation of images and point clouds
//	  • Topological denoising & feature ranking of empirical scalar fields
//
// ✨ Key surfaces:
//   - Persistence(g): per-node persistence values (math.Inf(1) for nodes
//     whose basin is never absorbed) plus the descending Complex.
//   - Complex.Filtration(): the time-ordered merge log, lifetimes
//     non-decreasing; a plain slice, restartable and side-effect free.
//   - Complex.CellsAtLifetime(t): the basin partition after applying every
//     merge with lifetime ≤ t — a pure replay of the log, idempotent and
//     safe to call from concurrent goroutines.
//   - MorseSmale(g): descending and ascending sweeps bundled, for callers
//     that want both minima-basins and maxima-basins.
//
// ⚙️ Usage:
//
//	import "github.com/talus-topo/talus/morse"
//
//	res, err := morse.Persistence(g)
//	if err != nil { ... }            // ErrNilGraph, ErrEmptyGraph
//	p, _ := res.At("7")              // finite float64, or math.Inf(1)
//	cx := res.Complex()
//	for _, ev := range cx.Filtration() {
//	  cells := cx.CellsAtLifetime(ev.Lifetime)
//	  // cells: basin representative ID → sorted member node IDs
//	}
//
// Determinism:
//
//	The sweep order is (value, ID); equal values are broken by ID, so merge
//	order, filtration contents and every partition are identical across
//	runs for identical input.
//
// Complexity:
//
//	Persistence:      O(V log V + E·α(V)) time, O(V) memory.
//	CellsAtLifetime:  O((B + V)·α(B)) per query, B = number of basins.
//
// Errors:
//
//   - ErrNilGraph:   Persistence called with a nil graph.
//   - ErrEmptyGraph: Persistence called with a graph of zero nodes.
//
// A disconnected graph is NOT an error: each connected component simply
// keeps one basin that is never absorbed, and every node that activated
// into such a basin reports infinite persistence.
package morse
