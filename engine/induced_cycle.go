package engine

import (
	"github.com/jrenders/circumference6/bitset"
	"github.com/jrenders/circumference6/graph"
	"github.com/jrenders/circumference6/stats"
)

// LongestInducedCycleLength returns the vertex count of a largest
// chordless cycle in g, incrementing freq[l] for every induced cycle of
// length l >= 3 the search encounters.
//
// For every vertex v and every ordered pair (w, u) of its neighbours with
// v < w < u, it seeds a path w-v-u with all of v's neighbours excluded
// from future extension (so the cycle being built can never gain a chord
// through v), then extends via extendInducedCycle. Each induced cycle is
// discovered once per (v, w, u) seed that lies on it, a multiplicity the
// frequency table intentionally preserves rather than reducing to one
// count per cycle.
func LongestInducedCycleLength(g graph.Graph, freq *stats.Table) int {
	checkWidth(g)
	n := g.N()
	best := 0

	for v := 0; v < n; v++ {
		neighboursOfV := g.Adj(v)
		for w := neighboursOfV.Next(v); w != bitset.NoElement; w = neighboursOfV.Next(w) {
			for u := neighboursOfV.Next(w); u != bitset.NoElement; u = neighboursOfV.Next(u) {
				remaining := bitset.FullN(n).Difference(neighboursOfV)
				remaining.Remove(v)
				extendInducedCycle(g, remaining, u, w, 3, &best, freq)
			}
		}
	}
	return best
}

// extendInducedCycle extends the chordless path first...last, with k
// vertices so far, recording a closure against first (updating *best and
// freq) and returning without further extension when one is found, since
// a chordless cycle has no proper chordless super-cycle sharing the same
// first vertex.
func extendInducedCycle(g graph.Graph, remaining bitset.Bitset, last, first, k int, best *int, freq *stats.Table) {
	if g.Adj(first).Contains(last) {
		if k > *best {
			*best = k
		}
		freq.Bump(k)
		return
	}
	if g.Adj(first).Intersection(remaining).IsEmpty() {
		return
	}

	neighbours := g.Adj(last).Intersection(remaining)
	// Every further vertex of the path must avoid adj[last], or the
	// eventual cycle would gain a chord at last; computing this once
	// before the loop (rather than mutating remaining per iteration) is
	// equivalent because Bitset is a value type copied at each call.
	pruned := remaining.Difference(g.Adj(last))
	for nbr := neighbours.Next(-1); nbr != bitset.NoElement; nbr = neighbours.Next(nbr) {
		extendInducedCycle(g, pruned, nbr, first, k+1, best, freq)
	}
}
