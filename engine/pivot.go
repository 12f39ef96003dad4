package engine

import (
	"fmt"

	"github.com/jrenders/circumference6/bitset"
	"github.com/jrenders/circumference6/graph"
)

// checkWidth panics with ErrVertexCountExceedsWidth if g carries more
// vertices than this build's bitset.Width. The decoder is responsible for
// rejecting such graphs long before they reach the engine, so this should
// never trigger in normal operation.
func checkWidth(g graph.Graph) {
	if g.N() > bitset.Width {
		panic(fmt.Errorf("%w: n=%d", ErrVertexCountExceedsWidth, g.N()))
	}
}

// lowestDegreeVertex returns the member of included with the fewest
// neighbours also in included, breaking ties by smallest index (the
// natural order bitset.Bitset.Next walks in).
func lowestDegreeVertex(g graph.Graph, included bitset.Bitset) int {
	start := included.Next(-1)
	best := start
	bestDegree := g.Adj(start).Intersection(included).Size()
	for v := included.Next(start); v != bitset.NoElement; v = included.Next(v) {
		degree := g.Adj(v).Intersection(included).Size()
		if degree < bestDegree {
			bestDegree = degree
			best = v
		}
	}
	return best
}
