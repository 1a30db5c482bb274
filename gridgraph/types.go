// Package gridgraph defines the Field type, options, and sentinel errors
// for the scalar-field subpackage of github.com/talus-topo/talus.
package gridgraph

import (
	"errors"
)

// Sentinel errors for field construction and raster mapping.
var (
	// ErrEmptyField indicates the input has no rows or no columns.
	ErrEmptyField = errors.New("gridgraph: field must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNaNCell indicates a cell value is NaN.
	ErrNaNCell = errors.New("gridgraph: field cell is NaN")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for field-to-graph conversion.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn4, matching the row/column
// adjacency of raster data.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Field treats a 2D scalar sampling as a graph source. It is immutable
// once built. Width and Height define dimensions; values[y][x] holds the
// sample at (x, y). neighborOffsets is precomputed from Options.Conn.
type Field struct {
	Width, Height   int
	values          [][]float64
	conn            Connectivity
	neighborOffsets [][2]int
}
