// Package morse implements 0-dimensional persistence via a sorted sweep
// over a scalar graph with an elder-rule union-find.
package morse

import (
	"math"
	"sort"

	"github.com/talus-topo/talus/core"
)

// Persistence computes the descending persistence of every node in g and
// the descending Complex (merge filtration plus threshold queries).
//
// Error Conditions:
//   - ErrNilGraph   : g is nil.
//   - ErrEmptyGraph : g has zero nodes.
//
// A disconnected graph is valid: each connected component contributes one
// basin that is never absorbed, whose nodes all report math.Inf(1).
//
// Steps:
//  1. Enumerate nodes and sort them into sweep order: ascending by value,
//     ties broken by ID. The position of a node in this order is its dense
//     index for the union-find arena.
//  2. Activate nodes in order. A node with no already-activated neighbor
//     founds a new basin and becomes its representative extremum.
//  3. Otherwise collect the distinct basins among already-activated
//     neighbors. The earliest-founded one (smallest dense index) is the
//     elder; the activating node joins it, and every other basin is
//     absorbed into the elder by one MergeEvent with
//     lifetime = |saddle value − absorbed extremum value|.
//  4. Record, per node, the basin it joined at activation; a node's
//     persistence is that basin's eventual lifetime (math.Inf(1) if the
//     basin is never absorbed), fixed even though the basin itself may
//     later be swallowed.
//  5. Stable-sort the merge log by lifetime (insertion order breaks ties)
//     to produce the Filtration.
//
// Complexity: O(V log V + E·α(V)) time, O(V + E) memory.
func Persistence(g *core.Graph) (*Result, error) {
	return PersistenceKind(g, Descending)
}

// PersistenceKind is Persistence with an explicit sweep direction: pass
// Ascending to partition the graph into maxima-owned basins instead.
func PersistenceKind(g *core.Graph, kind Kind) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1. Establish the sweep order. Nodes() is sorted by ID, so a stable
	//    sort on value alone inherits the ID tie-break.
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	sort.SliceStable(nodes, func(i, j int) bool { return kind.sweepLess(nodes[i], nodes[j]) })

	n := len(nodes)
	pos := make(map[string]int, n) // node ID → dense sweep index
	for i, nd := range nodes {
		pos[nd.ID] = i
	}

	var (
		cells    = newPointedUnionFind(n) // basin membership over dense indices
		ancestor = make([]int, n)         // dense index → basin joined at activation
		absorbed = make([]float64, n)     // extremum index → lifetime when absorbed
		events   = make(Filtration, 0)    // merge log in sweep order
		reps     []int                    // scratch: distinct neighbor basins
	)
	for i := range absorbed {
		absorbed[i] = math.Inf(1) // unabsorbed until proven otherwise
	}

	// 2-3. Activate each node in sweep order.
	for i := 0; i < n; i++ {
		nbrs, err := g.Neighbors(nodes[i].ID)
		if err != nil {
			return nil, err
		}

		// Collect the distinct basins among already-activated neighbors.
		reps = reps[:0]
		for _, nb := range nbrs {
			j := pos[nb]
			if j >= i {
				continue // not yet activated
			}
			r := cells.find(j)
			seen := false
			for _, prev := range reps {
				if prev == r {
					seen = true
					break
				}
			}
			if !seen {
				reps = append(reps, r)
			}
		}

		if len(reps) == 0 {
			// Founding a basin: this node is a local extremum of the
			// activated sub-graph and its own representative.
			ancestor[i] = i
			continue
		}

		// The elder basin is the earliest-founded: smallest dense index,
		// which by sweep order is exactly (most extreme value, smallest ID).
		sort.Ints(reps)
		elder := reps[0]

		// The activating node joins the elder; the elder's representative
		// is pinned, so its basin ID never drifts.
		cells.union(elder, i)
		ancestor[i] = elder

		// Absorb every other touching basin, one MergeEvent each, in
		// deterministic (extremum value, ID) order.
		for _, r := range reps[1:] {
			lifetime := math.Abs(nodes[i].Value - nodes[r].Value)
			absorbed[r] = lifetime
			events = append(events, MergeEvent{
				Lifetime: lifetime,
				Survivor: nodes[elder].ID,
				Absorbed: nodes[r].ID,
				Saddle:   nodes[i].ID,
			})
			cells.union(elder, r)
		}
	}

	// 4. Per-node persistence: the lifetime of the basin joined at
	//    activation, regardless of what later happened to that basin.
	persistence := make(map[string]float64, n)
	ancestorIDs := make(map[string]string, n)
	for i := 0; i < n; i++ {
		persistence[nodes[i].ID] = absorbed[ancestor[i]]
		ancestorIDs[nodes[i].ID] = nodes[ancestor[i]].ID
	}

	// 5. Sort the merge log by lifetime into the Filtration. Stable, so
	//    simultaneous merges keep their sweep order.
	sort.SliceStable(events, func(i, j int) bool { return events[i].Lifetime < events[j].Lifetime })

	// Surviving extrema: basins never absorbed, one per connected component.
	var survivors []string
	for i := 0; i < n; i++ {
		if ancestor[i] == i && math.IsInf(absorbed[i], 1) {
			survivors = append(survivors, nodes[i].ID)
		}
	}
	sort.Strings(survivors)

	cx := &Complex{
		kind:       kind,
		filtration: events,
		ancestor:   ancestorIDs,
		survivors:  survivors,
	}

	return &Result{kind: kind, persistence: persistence, complex: cx}, nil
}

// Result maps every node of the swept graph to its persistence value and
// owns the Complex produced by the sweep.
type Result struct {
	kind        Kind
	persistence map[string]float64
	complex     *Complex
}

// Kind returns the sweep direction this result was computed with.
func (r *Result) Kind() Kind { return r.kind }

// At returns the persistence of the node with the given ID: a finite
// non-negative float, or math.Inf(1) if the node's activation basin was
// never absorbed. Returns core.ErrUnknownNode for IDs outside the graph.
func (r *Result) At(id string) (float64, error) {
	v, ok := r.persistence[id]
	if !ok {
		return 0, core.ErrUnknownNode
	}

	return v, nil
}

// Persistence returns a copy of the full node → persistence mapping.
func (r *Result) Persistence() map[string]float64 {
	out := make(map[string]float64, len(r.persistence))
	for id, v := range r.persistence {
		out[id] = v
	}

	return out
}

// Unbounded returns the sorted IDs of all nodes with infinite persistence:
// every node whose activation basin survived the sweep.
func (r *Result) Unbounded() []string {
	var ids []string
	for id, v := range r.persistence {
		if IsUnbounded(v) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// Complex returns the merge complex built by the sweep — the descending
// complex for the default kind. The Complex is read-only and safe to share.
func (r *Result) Complex() *Complex {
	return r.complex
}
