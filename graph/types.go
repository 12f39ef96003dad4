package graph

import (
	"errors"

	"github.com/jrenders/circumference6/bitset"
)

// Sentinel errors for graph construction. Never wrapped with fmt.Errorf at
// the definition site; callers that need context wrap with %w.
var (
	// ErrTooManyVertices indicates n exceeds bitset.Width, the compile-time
	// vertex-count ceiling for this build.
	ErrTooManyVertices = errors.New("graph: vertex count exceeds bitset width")

	// ErrNegativeVertexCount indicates a negative n was supplied.
	ErrNegativeVertexCount = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint falls outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: edge endpoint out of range")

	// ErrSelfLoop indicates an edge endpoint pair referenced the same vertex.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)

// Graph is an immutable undirected simple graph on vertices {0,...,n-1}.
// The zero value is not useful; construct with New.
type Graph struct {
	n   int
	adj [bitset.Width]bitset.Bitset
}

// N returns the number of vertices in g.
func (g Graph) N() int { return g.n }

// Adj returns the neighbour set of vertex v as a Bitset. The caller must
// ensure 0 <= v < g.N(); out-of-range v returns the empty set.
func (g Graph) Adj(v int) bitset.Bitset {
	if v < 0 || v >= g.n {
		return bitset.Empty
	}
	return g.adj[v]
}

// New builds a Graph on n vertices from an edge list. Each edge {u, v} is
// undirected; duplicate edges are idempotent. Returns ErrTooManyVertices if
// n > bitset.Width, ErrNegativeVertexCount if n < 0, ErrVertexOutOfRange if
// an endpoint falls outside [0, n), and ErrSelfLoop if u == v.
//
// Complexity: O(n + len(edges)).
func New(n int, edges [][2]int) (Graph, error) {
	if n < 0 {
		return Graph{}, ErrNegativeVertexCount
	}
	if n > bitset.Width {
		return Graph{}, ErrTooManyVertices
	}

	var g Graph
	g.n = n
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return Graph{}, ErrVertexOutOfRange
		}
		if u == v {
			return Graph{}, ErrSelfLoop
		}
		g.adj[u].Add(v)
		g.adj[v].Add(u)
	}

	return g, nil
}
