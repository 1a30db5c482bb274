// Package morse defines kinds, merge events, options and sentinel errors
// for the persistence engine.
package morse

import (
	"errors"
	"math"

	"github.com/talus-topo/talus/core"
)

// Sentinel errors for persistence computation.
var (
	// ErrNilGraph indicates Persistence was called with a nil graph.
	ErrNilGraph = errors.New("morse: graph is nil")

	// ErrEmptyGraph indicates the graph contains no nodes; persistence over
	// an empty field is undefined.
	ErrEmptyGraph = errors.New("morse: graph has no nodes")
)

// Kind selects the sweep direction, i.e. which extrema own the basins.
//
//   - Descending — basins belong to local minima; nodes activate in
//     ascending value order, and a basin's persistence is the saddle value
//     at its absorption minus its minimum's value.
//   - Ascending  — basins belong to local maxima; the mirror image.
//
// Both directions yield non-negative lifetimes.
type Kind int

const (
	// Descending sweeps minima-first (the default).
	Descending Kind = iota
	// Ascending sweeps maxima-first.
	Ascending
)

// String returns the kind's name, for logs and test output.
func (k Kind) String() string {
	if k == Ascending {
		return "ascending"
	}

	return "descending"
}

// sweepLess reports whether node a activates strictly before node b under
// kind k. Equal values are broken by ID ascending, which is the single
// source of determinism for the whole engine: the elder of two basins is
// exactly the one whose extremum activated first.
func (k Kind) sweepLess(a, b core.Node) bool {
	if a.Value != b.Value {
		if k == Ascending {
			return a.Value > b.Value
		}

		return a.Value < b.Value
	}

	return a.ID < b.ID
}

// MergeEvent records one basin absorption: at the activation of Saddle, the
// basin represented by Absorbed was merged into the basin represented by
// Survivor, after living for Lifetime units of value.
//
// Survivor and Absorbed are basin IDs, which are always the node IDs of the
// basins' representative extrema. Lifetime = |saddle value − absorbed
// extremum value|, and is the persistence assigned to the absorbed basin.
type MergeEvent struct {
	// Lifetime is the persistence of the absorbed basin.
	Lifetime float64

	// Survivor is the representative extremum of the basin that remains.
	Survivor string

	// Absorbed is the representative extremum of the basin that is destroyed.
	Absorbed string

	// Saddle is the node whose activation connected the two basins.
	Saddle string
}

// Filtration is the complete merge log of one sweep, sorted by Lifetime
// non-decreasing (ties keep merge order). It is a plain slice: iterate it
// as many times as you like, no hidden state advances.
type Filtration []MergeEvent

// IsUnbounded reports whether a persistence value denotes a basin that
// survived the full sweep (represented as math.Inf(1)).
func IsUnbounded(v float64) bool {
	return math.IsInf(v, 1)
}
