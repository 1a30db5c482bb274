// File: complex.go
// Role: The merge complex — filtration access and threshold queries.
package morse

import "sort"

// Complex is the hierarchical record of one sweep: which basin every node
// activated into, and the ordered log of basin merges. It is immutable
// after construction; all methods are safe for concurrent use.
type Complex struct {
	kind       Kind
	filtration Filtration        // sorted by Lifetime, ties in sweep order
	ancestor   map[string]string // node ID → basin (extremum ID) at activation
	survivors  []string          // sorted extrema never absorbed, one per component
}

// Kind returns the sweep direction of this complex.
func (c *Complex) Kind() Kind { return c.kind }

// Filtration returns a copy of the merge log, sorted by Lifetime
// non-decreasing. Iterating it never mutates the Complex.
func (c *Complex) Filtration() Filtration {
	out := make(Filtration, len(c.filtration))
	copy(out, c.filtration)

	return out
}

// Basins returns a copy of the node → activation-basin mapping: for every
// node, the ID of the representative extremum of the basin it joined when
// it was activated.
func (c *Complex) Basins() map[string]string {
	out := make(map[string]string, len(c.ancestor))
	for node, ext := range c.ancestor {
		out[node] = ext
	}

	return out
}

// Survivors returns the sorted IDs of the extrema whose basins were never
// absorbed. Their count equals the number of connected components of the
// swept graph.
func (c *Complex) Survivors() []string {
	out := make([]string, len(c.survivors))
	copy(out, c.survivors)

	return out
}

// CellsAtLifetime reconstructs the basin partition as it stood after every
// merge with Lifetime <= threshold (inclusive) and before any merge with a
// greater lifetime. The result maps each basin's representative extremum ID
// to the sorted IDs of its member nodes.
//
// Boundary behavior:
//   - threshold below the smallest lifetime → one cell per extremum;
//   - threshold = math.Inf(1) → one cell per connected component;
//   - a NaN threshold compares below every lifetime, so no merges apply.
//
// This is a pure replay over the filtration log: no engine state is
// touched, repeated calls with equal thresholds yield identical partitions,
// and concurrent calls are safe.
//
// Steps:
//  1. Start a fresh union-find with one singleton set per extremum.
//  2. Walk the filtration in order, unioning Absorbed into Survivor while
//     Lifetime <= threshold; stop at the first greater lifetime (the log is
//     sorted, so everything after it is out of range too).
//  3. Group every node of the graph by the representative of its
//     activation basin.
//
// Complexity: O((B + V)·α(B)) time, O(B + V) memory, B = number of basins.
func (c *Complex) CellsAtLifetime(threshold float64) map[string][]string {
	// 1. Singleton set per extremum; parent[e] == e at roots.
	parent := make(map[string]string, len(c.ancestor))
	for _, ext := range c.ancestor {
		parent[ext] = ext
	}

	// Iterative find with path compression, as small as it looks.
	find := func(e string) string {
		for parent[e] != e {
			parent[e] = parent[parent[e]]
			e = parent[e]
		}

		return e
	}

	// 2. Apply merges up to and including the threshold.
	for _, ev := range c.filtration {
		if !(ev.Lifetime <= threshold) {
			break // sorted log: nothing later can qualify
		}
		parent[find(ev.Absorbed)] = find(ev.Survivor)
	}

	// 3. Group nodes by the live representative of their activation basin.
	cells := make(map[string][]string)
	for node, ext := range c.ancestor {
		rep := find(ext)
		cells[rep] = append(cells[rep], node)
	}
	for _, members := range cells {
		sort.Strings(members)
	}

	return cells
}
