package graphgen

import (
	"fmt"

	"github.com/jrenders/circumference6/graph"
)

// File-local constants mirroring the minimum-size guards of the teacher's
// builder package (methodComplete/minCompleteNodes and friends).
const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
)

// Empty returns the n-vertex graph with no edges.
func Empty(n int) (graph.Graph, error) {
	return graph.New(n, nil)
}

// Complete returns the complete simple graph K_n: every pair {i, j}, i < j,
// joined exactly once.
func Complete(n int) (graph.Graph, error) {
	if n < minCompleteNodes {
		return graph.Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return graph.New(n, edges)
}

// Cycle returns the n-vertex simple cycle C_n: edges i -> (i+1)%n.
func Cycle(n int) (graph.Graph, error) {
	if n < minCycleNodes {
		return graph.Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}
	return graph.New(n, edges)
}

// Path returns the n-vertex simple path P_n: edges (i-1) -> i for i=1..n-1.
func Path(n int) (graph.Graph, error) {
	if n < minPathNodes {
		return graph.Graph{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	return graph.New(n, edges)
}

// petersenEdges is the standard outer-5-cycle / inner-5-pentagram / spokes
// edge list for the Petersen graph on vertices 0..9 (outer 0-4, inner 5-9).
var petersenEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer cycle
	{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner pentagram
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
}

// Petersen returns the Petersen graph: 10 vertices, 3-regular, girth 5,
// circumference 9, longest induced cycle 6, longest induced path 6 edges.
func Petersen() (graph.Graph, error) {
	return graph.New(10, petersenEdges)
}
