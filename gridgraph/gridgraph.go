// Package gridgraph converts rectangular scalar fields into graphs for
// persistence analysis.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/talus-topo/talus/core"
)

// NewField constructs a Field from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyField if the slice has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNaNCell if any sample
// is NaN.
// Complexity: O(W×H) time and memory.
func NewField(values [][]float64, opts Options) (*Field, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyField
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if math.IsNaN(v) {
				return nil, ErrNaNCell
			}
		}
	}
	// Deep copy to prevent external mutation.
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Field{
		Width:           w,
		Height:          h,
		values:          cells,
		conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the field boundaries.
// Complexity: O(1).
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// At returns the sample stored at (x,y). Callers must check InBounds.
// Complexity: O(1).
func (f *Field) At(x, y int) float64 {
	return f.values[y][x]
}

// NodeID formats the unique node identifier for cell (x,y), as used by
// ToGraph.
func (f *Field) NodeID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (f *Field) Index(x, y int) int {
	return y*f.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (f *Field) Coordinate(idx int) (x, y int) {
	return idx % f.Width, idx / f.Width
}

// ToGraph converts the Field into a *core.Graph: one node per cell, with
// ID "x,y" and the cell's sample as its scalar value, and one undirected
// edge per neighboring pair under the field's connectivity.
//
// Each undirected pair is visited from both sides; AddEdge's idempotence
// collapses the duplicates.
//
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (f *Field) ToGraph() (*core.Graph, error) {
	g := core.NewGraph()

	// 1. Add all cells as nodes first, so edges never see an unknown endpoint.
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if err := g.AddNode(f.NodeID(x, y), f.values[y][x]); err != nil {
				return nil, err
			}
		}
	}

	// 2. Connect each cell to its in-bounds neighbors.
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			uID := f.NodeID(x, y)
			for _, d := range f.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !f.InBounds(nx, ny) {
					continue
				}
				if err := g.AddEdge(uID, f.NodeID(nx, ny)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
