// File: smale.go
// Role: Bundled descending + ascending sweeps.
package morse

import "github.com/talus-topo/talus/core"

// SmaleComplex bundles the two sweeps of one graph: the descending result
// (basins owned by minima) and the ascending result (basins owned by
// maxima). Intersecting the two partitions yields the classical
// Morse-Smale decomposition of the field.
type SmaleComplex struct {
	// Descending holds the minima-basin sweep.
	Descending *Result

	// Ascending holds the maxima-basin sweep.
	Ascending *Result
}

// MorseSmale runs both sweep directions over g.
//
// Error Conditions: identical to Persistence (ErrNilGraph, ErrEmptyGraph);
// both sweeps share the same validation, so a graph that survives one
// survives the other.
//
// Complexity: twice Persistence, O(V log V + E·α(V)).
func MorseSmale(g *core.Graph) (*SmaleComplex, error) {
	descending, err := PersistenceKind(g, Descending)
	if err != nil {
		return nil, err
	}
	ascending, err := PersistenceKind(g, Ascending)
	if err != nil {
		return nil, err
	}

	return &SmaleComplex{Descending: descending, Ascending: ascending}, nil
}
