package engine

import (
	"github.com/jrenders/circumference6/bitset"
	"github.com/jrenders/circumference6/graph"
	"github.com/jrenders/circumference6/stats"
)

// LongestInducedPathLength returns the number of edges in a longest
// chordless path in g, incrementing freq[l] for every induced path edge
// count l >= 1 the search encounters (edge count 0, the trivial
// single-vertex path, is not counted).
//
// For every vertex v and every neighbour w, it seeds a path v-w with all
// of v's neighbours excluded from future extension, then extends via
// extendInducedPath. Unlike the cycle walker, every node of the
// recursion tree is itself a valid induced path, so the walker both
// records and extends at every step.
func LongestInducedPathLength(g graph.Graph, freq *stats.Table) int {
	checkWidth(g)
	n := g.N()
	best := 0

	for v := 0; v < n; v++ {
		remainingFromV := bitset.FullN(n).Difference(g.Adj(v))
		remainingFromV.Remove(v)
		for w := g.Adj(v).Next(-1); w != bitset.NoElement; w = g.Adj(v).Next(w) {
			extendInducedPath(g, remainingFromV, w, 2, &best, freq)
		}
	}

	if best == 0 {
		return 0
	}
	return best - 1
}

// extendInducedPath records the path ending at last with k vertices so
// far (bumping freq[k-1], its edge count) and attempts to extend it
// through every neighbour of last that is chord-free with respect to the
// vertices already on the path.
func extendInducedPath(g graph.Graph, remaining bitset.Bitset, last, k int, best *int, freq *stats.Table) {
	freq.Bump(k - 1)
	if k > *best {
		*best = k
	}

	neighbours := g.Adj(last).Intersection(remaining)
	pruned := remaining.Difference(g.Adj(last))
	for nbr := neighbours.Next(-1); nbr != bitset.NoElement; nbr = neighbours.Next(nbr) {
		extendInducedPath(g, pruned, nbr, k+1, best, freq)
	}
}
