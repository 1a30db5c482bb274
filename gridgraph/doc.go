// Package gridgraph bridges rectangular scalar fields (elevation rasters,
// density images, any 2D sampling) and the graph model that the morse
// engine consumes.
//
// What:
//
//   - Field wraps a non-empty rectangular [][]float64 of samples, deep
//     copied for immutability, with 4- or 8-directional connectivity.
//   - ToGraph() produces a *core.Graph: one node per cell (ID "x,y"),
//     one edge per neighboring cell pair.
//   - PersistenceRaster() maps a morse.Result back onto the grid, scaled
//     and with a caller-chosen sentinel standing in for infinite
//     persistence — the shape downstream raster writers expect.
//
// Why:
//
//   - Terrain analysis: pit/peak prominence over digital elevation models.
//   - Image segmentation: watershed basins of intensity fields.
//
// Complexity:
//
//   - NewField:           O(W×H) time and memory.
//   - ToGraph:            O(W×H×d) time, O(W×H + E) memory (d = 4 or 8).
//   - PersistenceRaster:  O(W×H) time and memory.
//
// Options:
//
//   - Options.Conn: Conn4 (N/E/S/W, the default) or Conn8 (adds diagonals).
//
// Errors:
//
//   - ErrEmptyField: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNaNCell: a cell holds NaN; the engine needs a total order.
package gridgraph
