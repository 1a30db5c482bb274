// Package core defines the scalar-valued graph model consumed by the
// persistence engine in github.com/talus-topo/talus/morse.
//
// What:
//
//   - Node: unique string ID plus an immutable float64 scalar value.
//   - Edge: unordered pair of node IDs, stored canonically (From <= To).
//   - Graph: a build-once, read-many container with strict preconditions:
//     no duplicate nodes, no edges to unknown nodes, no NaN values.
//
// Why strict preconditions:
//
//   - The sweep in morse assumes every endpoint exists and every value is
//     comparable. Looser graph libraries grow nodes on demand; here that
//     would silently paper over malformed input, so AddEdge refuses
//     unknown endpoints instead.
//
// Determinism:
//
//   - Nodes(), NodeIDs(), Edges() and Neighbors() enumerate in sorted
//     order, so downstream algorithms are reproducible run to run.
//
// Errors:
//
//   - ErrEmptyNodeID: AddNode called with an empty ID.
//   - ErrDuplicateNode: AddNode called with an ID already present.
//   - ErrUnknownNode: an operation referenced an absent node.
//   - ErrNaNValue: AddNode called with a NaN scalar value.
//
// Self-loops and repeated edges are not errors; both are idempotent no-ops.
package core
