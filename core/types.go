// Package core declares the Node, Edge and Graph types plus the sentinel
// errors shared by all talus packages that build or read graphs.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNaNValue indicates a node was given NaN as its scalar value.
	ErrNaNValue = errors.New("core: node value is NaN")
)

// Node is a graph vertex carrying the scalar sample measured at that point
// (elevation, density, loss — whatever the field under study is).
//
// ID uniquely identifies the Node within its Graph. Value is immutable
// after AddNode.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Value is the scalar sample at this Node.
	Value float64
}

// Edge is an unordered connection between two nodes.
//
// Edges are stored canonically with From <= To, so the same undirected pair
// always compares equal regardless of the order it was added in.
type Edge struct {
	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string
}

// Graph is the in-memory scalar graph.
//
// It is intended to be built once and then read concurrently; a single
// RWMutex guards the node catalog and adjacency sets so construction may
// also proceed from multiple goroutines if a caller wants that.
type Graph struct {
	mu sync.RWMutex // guards nodes and adjacency

	// nodes maps node ID → scalar value.
	nodes map[string]float64

	// adjacency[u] is the set of neighbor IDs of u; symmetric by construction.
	adjacency map[string]map[string]struct{}

	// edgeCount tracks distinct undirected edges (self-loops excluded).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]float64),
		adjacency: make(map[string]map[string]struct{}),
	}
}
