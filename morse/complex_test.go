package morse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talus-topo/talus/morse"
)

// terrainResult builds the 3×3 terrain of TestPersistence_TerrainGrid and
// returns its descending result. Extrema: "5" (global), "6" (dies at
// lifetime 4), "1" (dies at lifetime 1).
func terrainResult(t *testing.T) *morse.Result {
	t.Helper()
	g := buildGraph(t,
		map[string]float64{
			"0": 6, "1": 2, "2": 3,
			"3": 5, "4": 4, "5": -5,
			"6": 0, "7": 1, "8": 10,
		},
		[][2]string{
			{"0", "1"}, {"1", "2"},
			{"0", "3"}, {"1", "4"}, {"2", "5"},
			{"3", "4"}, {"4", "5"},
			{"3", "6"}, {"4", "7"}, {"5", "8"},
			{"6", "7"}, {"7", "8"},
		},
	)
	res, err := morse.Persistence(g)
	require.NoError(t, err)

	return res
}

// TestCellsAtLifetime_BelowSmallest: any threshold under the first merge
// yields one cell per original extremum.
func TestCellsAtLifetime_BelowSmallest(t *testing.T) {
	cx := terrainResult(t).Complex()

	want := map[string][]string{
		"1": {"1"},
		"5": {"0", "2", "3", "4", "5", "8"},
		"6": {"6", "7"},
	}
	assert.Equal(t, want, cx.CellsAtLifetime(0))
	assert.Equal(t, want, cx.CellsAtLifetime(0.999))
	assert.Equal(t, want, cx.CellsAtLifetime(-5))
}

// TestCellsAtLifetime_InclusiveBoundary: a threshold equal to an event's
// lifetime applies that event (<=, not <).
func TestCellsAtLifetime_InclusiveBoundary(t *testing.T) {
	cx := terrainResult(t).Complex()

	cells := cx.CellsAtLifetime(1)
	want := map[string][]string{
		"5": {"0", "1", "2", "3", "4", "5", "8"},
		"6": {"6", "7"},
	}
	assert.Equal(t, want, cells, "the lifetime-1 merge must be included at threshold 1")
}

// TestCellsAtLifetime_FullMerge: at or above the largest lifetime (and at
// +Inf) a connected graph collapses to a single cell.
func TestCellsAtLifetime_FullMerge(t *testing.T) {
	cx := terrainResult(t).Complex()

	all := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8"}
	assert.Equal(t, map[string][]string{"5": all}, cx.CellsAtLifetime(4))
	assert.Equal(t, map[string][]string{"5": all}, cx.CellsAtLifetime(math.Inf(1)))
}

// TestCellsAtLifetime_MonotoneCellCount: the number of cells never grows
// as the threshold rises.
func TestCellsAtLifetime_MonotoneCellCount(t *testing.T) {
	cx := terrainResult(t).Complex()

	prev := math.MaxInt
	for _, th := range []float64{-1, 0, 0.5, 1, 2, 4, 100, math.Inf(1)} {
		n := len(cx.CellsAtLifetime(th))
		assert.LessOrEqual(t, n, prev, "cell count must be non-increasing (threshold %v)", th)
		prev = n
	}
}

// TestCellsAtLifetime_Idempotent: the query is a pure function of the
// threshold and the filtration.
func TestCellsAtLifetime_Idempotent(t *testing.T) {
	cx := terrainResult(t).Complex()

	first := cx.CellsAtLifetime(1)
	second := cx.CellsAtLifetime(1)
	assert.Equal(t, first, second)

	// Interleave other thresholds; the answer for 1 must not drift.
	_ = cx.CellsAtLifetime(math.Inf(1))
	_ = cx.CellsAtLifetime(0)
	assert.Equal(t, first, cx.CellsAtLifetime(1))
}

// TestCellsAtLifetime_ReplayOverFiltration mirrors the driver loop: query
// at every recorded lifetime and watch the partition coarsen step by step.
func TestCellsAtLifetime_ReplayOverFiltration(t *testing.T) {
	cx := terrainResult(t).Complex()

	filt := cx.Filtration()
	require.Len(t, filt, 2)

	counts := make([]int, 0, len(filt))
	for _, ev := range filt {
		counts = append(counts, len(cx.CellsAtLifetime(ev.Lifetime)))
	}
	assert.Equal(t, []int{2, 1}, counts)
}

// TestCellsAtLifetime_NaNThreshold: NaN compares below every lifetime, so
// no merges apply.
func TestCellsAtLifetime_NaNThreshold(t *testing.T) {
	cx := terrainResult(t).Complex()

	assert.Equal(t, cx.CellsAtLifetime(-1), cx.CellsAtLifetime(math.NaN()))
}

// TestCellsAtLifetime_ZeroLifetimeMerge: plateau merges carry lifetime 0
// and are therefore already applied at threshold 0.
func TestCellsAtLifetime_ZeroLifetimeMerge(t *testing.T) {
	g := buildGraph(t,
		map[string]float64{"a": 0, "z": 0, "b": 0},
		[][2]string{{"a", "z"}, {"z", "b"}},
	)
	res, err := morse.Persistence(g)
	require.NoError(t, err)
	cx := res.Complex()

	assert.Equal(t, map[string][]string{"a": {"a", "b", "z"}}, cx.CellsAtLifetime(0))
	assert.Equal(t, map[string][]string{"a": {"a", "z"}, "b": {"b"}}, cx.CellsAtLifetime(-1))
}

// TestFiltration_CopyIsDetached: mutating the slice returned by
// Filtration() must not corrupt later queries.
func TestFiltration_CopyIsDetached(t *testing.T) {
	cx := terrainResult(t).Complex()

	filt := cx.Filtration()
	require.NotEmpty(t, filt)
	filt[0].Lifetime = 1e9
	filt[0].Survivor = "tampered"

	fresh := cx.Filtration()
	assert.Equal(t, 1.0, fresh[0].Lifetime)
	assert.Equal(t, "5", fresh[0].Survivor)
	assert.Equal(t, map[string][]string{
		"1": {"1"},
		"5": {"0", "2", "3", "4", "5", "8"},
		"6": {"6", "7"},
	}, cx.CellsAtLifetime(0), "queries must see the original log")
}

// TestCellsAtLifetime_Disconnected: +Inf threshold on a disconnected graph
// yields one cell per component, never a single global cell.
func TestCellsAtLifetime_Disconnected(t *testing.T) {
	g := buildGraph(t,
		map[string]float64{"a": 0, "b": 5, "c": 1, "x": 2, "y": 3},
		[][2]string{{"a", "b"}, {"b", "c"}, {"x", "y"}},
	)
	res, err := morse.Persistence(g)
	require.NoError(t, err)

	cells := res.Complex().CellsAtLifetime(math.Inf(1))
	assert.Equal(t, map[string][]string{
		"a": {"a", "b", "c"},
		"x": {"x", "y"},
	}, cells)
}
