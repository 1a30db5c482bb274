// File: raster.go
// Role: Map persistence results back onto the grid for raster writers.
package gridgraph

import (
	"github.com/talus-topo/talus/morse"
)

// PersistenceRaster lays the per-node persistence of res back over the
// field's cells: out[y][x] is the persistence of cell (x,y) multiplied by
// scale, or sentinel for cells of unbounded persistence. Raster writers
// commonly want integer-friendly magnitudes and a large marker value in
// place of infinity; scale and sentinel parameterize both conventions.
//
// Returns core.ErrUnknownNode (wrapped through res.At) if res was computed
// over a graph that does not cover every cell of this field — i.e. a
// result from a different ToGraph call.
//
// Complexity: O(W×H) time and memory.
func (f *Field) PersistenceRaster(res *morse.Result, scale, sentinel float64) ([][]float64, error) {
	out := make([][]float64, f.Height)
	for y := 0; y < f.Height; y++ {
		out[y] = make([]float64, f.Width)
		for x := 0; x < f.Width; x++ {
			p, err := res.At(f.NodeID(x, y))
			if err != nil {
				return nil, err
			}
			if morse.IsUnbounded(p) {
				out[y][x] = sentinel
				continue
			}
			out[y][x] = p * scale
		}
	}

	return out, nil
}
