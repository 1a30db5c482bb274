// File: graph.go
// Role: Node/edge lifecycle and deterministic read accessors.
package core

import (
	"math"
	"sort"
)

// AddNode registers a new node with the given scalar value.
//
// Error Conditions:
//   - ErrEmptyNodeID   : id is the empty string.
//   - ErrNaNValue      : value is NaN (NaN has no place in a total order).
//   - ErrDuplicateNode : id is already present; values are immutable, so a
//     second registration is always a caller bug rather than an update.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string, value float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if math.IsNaN(value) {
		return ErrNaNValue
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return ErrDuplicateNode
	}
	g.nodes[id] = value
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// AddEdge connects two existing nodes with an undirected edge.
//
// Both endpoints must already exist: there is deliberately no auto-growth
// here, so a typo in an endpoint ID surfaces as ErrUnknownNode instead of a
// silently invented node. Self-loops and already-present edges are
// idempotent no-ops (merging a component with itself changes nothing).
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1. Validate both endpoints before touching adjacency.
	if _, ok := g.nodes[a]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[b]; !ok {
		return ErrUnknownNode
	}

	// 2. Self-loop: structurally meaningless for an undirected pair, ignore.
	if a == b {
		return nil
	}

	// 3. Duplicate edge: already connected, ignore.
	if _, ok := g.adjacency[a][b]; ok {
		return nil
	}

	// 4. Record symmetrically and count the distinct undirected edge once.
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++

	return nil
}

// Value returns the scalar value stored at id.
// Returns ErrUnknownNode if the node does not exist.
// Complexity: O(1).
func (g *Graph) Value(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.nodes[id]
	if !ok {
		return 0, ErrUnknownNode
	}

	return v, nil
}

// Has reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) Has(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// NodeIDs returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Nodes returns every node (ID plus value) sorted by ID ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.nodes))
	for id, v := range g.nodes {
		nodes = append(nodes, Node{ID: id, Value: v})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	return nodes
}

// Edges returns every undirected edge exactly once, canonically oriented
// (From <= To) and sorted by (From, To).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			// Emit each undirected pair once, from its smaller endpoint.
			if u < v {
				edges = append(edges, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Returns ErrUnknownNode if the node does not exist.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrUnknownNode
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
