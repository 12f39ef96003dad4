package engine

import (
	"testing"

	"github.com/jrenders/circumference6/graph"
	"github.com/jrenders/circumference6/internal/graphgen"
)

// smallTestGraphs returns a fixed gallery of graphs on n <= 10 vertices
// covering a mix of shapes (regular, irregular, disconnected, chordal)
// small enough for the brute-force DFS in brute_test.go to enumerate
// exhaustively.
func smallTestGraphs(t *testing.T) []graph.Graph {
	t.Helper()

	must := func(g graph.Graph, err error) graph.Graph {
		t.Helper()
		if err != nil {
			t.Fatalf("building test graph: %v", err)
		}
		return g
	}

	var graphs []graph.Graph
	graphs = append(graphs,
		must(graphgen.Empty(0)),
		must(graphgen.Empty(5)),
		must(graphgen.Complete(6)),
		must(graphgen.Cycle(5)),
		must(graphgen.Cycle(7)),
		must(graphgen.Path(6)),
		must(graphgen.Petersen()),
	)

	// C5 with one chord (0-2), built directly from its edge list.
	graphs = append(graphs, must(graph.New(5, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2},
	})))

	// Two disjoint triangles: a disconnected graph exercising the pivot
	// exclusion loop across separate components.
	graphs = append(graphs, must(graph.New(6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})))

	// A "bull" graph: triangle with two pendant edges.
	graphs = append(graphs, must(graph.New(5, [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 4},
	})))

	// The 3-cube graph Q3: bipartite, 3-regular, 8 vertices.
	graphs = append(graphs, must(graph.New(8, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	})))

	// A tree (no cycle at all): star plus a pendant path.
	graphs = append(graphs, must(graph.New(7, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {3, 4}, {4, 5}, {5, 6},
	})))

	// Wheel W5: a 5-cycle plus a hub adjacent to all of it.
	graphs = append(graphs, must(graph.New(6, [][2]int{
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1},
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	})))

	return graphs
}
