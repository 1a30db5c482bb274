// File: unionfind.go
// Role: Disjoint-set engine used by the sweep, with a pinned representative.
package morse

// pointedUnionFind is a union-find over dense indices whose union operation
// privileges its left argument: after union(x, y), find of any member of
// either set yields the representative x's set had before the union.
//
// The sweep relies on this pin: a basin's representative must stay equal to
// its extremum's index for the whole computation, no matter how rank-based
// merging rearranges the internal trees. Plain union by rank cannot promise
// which root wins, so the internal root is mapped through repr to the
// pinned external one.
//
// find is amortized O(α(n)) via iterative path compression (halving);
// union is O(α(n)).
type pointedUnionFind struct {
	parent []int // internal forest, parent[i] == i at roots
	rank   []int // rank bound per internal root
	repr   []int // internal root index → pinned external representative
}

// newPointedUnionFind creates n singleton sets, each its own representative.
func newPointedUnionFind(n int) *pointedUnionFind {
	u := &pointedUnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		repr:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		u.parent[i] = i
		u.repr[i] = i
	}

	return u
}

// root walks to the internal root of x with path halving.
func (u *pointedUnionFind) root(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// find returns the pinned external representative of x's set.
func (u *pointedUnionFind) find(x int) int {
	return u.repr[u.root(x)]
}

// union merges the sets of x and y; x's current representative survives.
// A union of a set with itself is a no-op.
func (u *pointedUnionFind) union(x, y int) {
	rx, ry := u.root(x), u.root(y)
	if rx == ry {
		return
	}

	// Remember the representative that must survive before the trees move.
	keep := u.repr[rx]

	// Union by rank on the internal forest.
	switch {
	case u.rank[rx] < u.rank[ry]:
		u.parent[rx] = ry
	case u.rank[rx] > u.rank[ry]:
		u.parent[ry] = rx
	default:
		u.parent[ry] = rx
		u.rank[rx]++
	}

	// Re-pin whichever internal root won.
	u.repr[u.root(rx)] = keep
}
