package engine

import (
	"github.com/jrenders/circumference6/bitset"
	"github.com/jrenders/circumference6/graph"
)

// LongestPathLength returns the number of edges in a longest simple path
// of g, or 0 if g has no edge.
//
// For every starting vertex v and every neighbour w, it seeds a path
// v-w and extends it through every available neighbour of the path's
// active end, tracking the largest vertex count reached. It exits early
// the moment a Hamiltonian path (n vertices) is found.
func LongestPathLength(g graph.Graph) int {
	checkWidth(g)
	n := g.N()
	best := 0

outer:
	for v := 0; v < n; v++ {
		for w := g.Adj(v).Next(-1); w != bitset.NoElement; w = g.Adj(v).Next(w) {
			remaining := bitset.FullN(n)
			remaining.Remove(v)
			remaining.Remove(w)
			if extendPath(g, remaining, w, 2, &best, n) {
				break outer
			}
		}
	}

	if best == 0 {
		return 0
	}
	return best - 1
}

// extendPath extends the path whose active end is last and whose current
// vertex count is k, updating *best, and reports whether a Hamiltonian
// path (k == n) was reached.
func extendPath(g graph.Graph, remaining bitset.Bitset, last, k int, best *int, n int) bool {
	if k > *best {
		*best = k
	}
	if *best == n {
		return true
	}

	candidates := g.Adj(last).Intersection(remaining)
	for nbr := candidates.Next(-1); nbr != bitset.NoElement; nbr = candidates.Next(nbr) {
		remaining.Remove(nbr)
		if extendPath(g, remaining, nbr, k+1, best, n) {
			remaining.Add(nbr)
			return true
		}
		remaining.Add(nbr)
	}
	return false
}
