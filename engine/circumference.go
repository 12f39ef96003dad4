package engine

import (
	"github.com/jrenders/circumference6/bitset"
	"github.com/jrenders/circumference6/graph"
)

// Circumference returns the length (vertex count) of a longest cycle in
// the subgraph induced by V \ excluded, or 0 if that subgraph is acyclic.
// Pass bitset.Empty for excluded to measure the whole graph.
//
// The search descends candidate lengths i from n down to 3. At each i it
// repeatedly picks the lowest-degree vertex among the currently-included
// candidates as a pivot, tries every ordered pair of the pivot's included
// neighbours as a cycle seed, and if none closes a cycle of length i,
// forbids the pivot and retries with one fewer candidate (bounded by
// n-i retries, since a length-i cycle can avoid at most n-i vertices).
func Circumference(g graph.Graph, excluded bitset.Bitset) int {
	checkWidth(g)
	n := g.N()
	excludedCount := excluded.Size()

	for i := n; i >= 3; i-- {
		forbidden := excluded
		for j := 0; j <= n-i; j++ {
			included := forbidden.ComplementN(n)
			if included.IsEmpty() {
				return 0
			}

			v := lowestDegreeVertex(g, included)
			neighbours := g.Adj(v).Intersection(included)
			for w := neighbours.Next(-1); w != bitset.NoElement; w = neighbours.Next(w) {
				for u := neighbours.Next(w); u != bitset.NoElement; u = neighbours.Next(u) {
					remaining := included
					remaining.Remove(v)
					remaining.Remove(w)
					remaining.Remove(u)
					if canBeCycleOfLength(g, remaining, u, w, i-excludedCount, 3) {
						return i - excludedCount
					}
				}
			}
			forbidden.Add(v)
		}
	}
	return 0
}

// canBeCycleOfLength reports whether the simple path with endpoints
// first and last, with pathLength vertices so far, can be extended using
// only vertices of remaining into a cycle of exactly cycleLength vertices.
func canBeCycleOfLength(g graph.Graph, remaining bitset.Bitset, last, first, cycleLength, pathLength int) bool {
	if pathLength == cycleLength && g.Adj(first).Contains(last) {
		return true
	}
	if g.Adj(first).Intersection(remaining).IsEmpty() {
		return false
	}

	candidates := g.Adj(last).Intersection(remaining)
	for nbr := candidates.Next(-1); nbr != bitset.NoElement; nbr = candidates.Next(nbr) {
		remaining.Remove(nbr)
		if canBeCycleOfLength(g, remaining, nbr, first, cycleLength, pathLength+1) {
			return true
		}
		remaining.Add(nbr)
	}
	return false
}
