// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest over the integer elements [0, n).
//
// Find applies path compression (path halving, iterative, no recursion) and Union
// links by rank, so a sequence of m operations costs O(m·α(n)).
//
// All operations are total over [0, n); out-of-range elements are a caller error
// and panic like any out-of-range slice index.
package unionfind

// UnionFind is a disjoint-set forest. The zero value is an empty structure;
// use New to create one with n singleton sets.
type UnionFind struct {
	parent []int
	rank   []uint8
	count  int
}

// New creates n singleton sets {0}, {1}, …, {n-1}.
// Complexity: O(n).
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Find returns the representative of the set containing v.
func (uf *UnionFind) Find(v int) int {
	for uf.parent[v] != v {
		// Path compression: make v point to its grandparent.
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}

	return v
}

// Union merges the sets containing a and b.
// It reports whether a merge happened (false if they were already connected).
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	// Attach the shorter tree under the taller one.
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.count--

	return true
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }
