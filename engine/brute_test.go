package engine

import "github.com/jrenders/circumference6/graph"

// Brute-force reference implementations used only by differential tests
// at small n. These are deliberately written as a plain DFS over every
// simple path (no pivot selection, no descending length search) so they
// exercise the production walkers against an independently-derived
// answer rather than a restatement of the same algorithm.

func bruteCircumference(g graph.Graph) int {
	n := g.N()
	visited := make([]bool, n)
	best := 0

	var dfs func(start, current, length int)
	dfs = func(start, current, length int) {
		if length >= 3 && g.Adj(current).Contains(start) && length > best {
			best = length
		}
		for next := 0; next < n; next++ {
			if !visited[next] && g.Adj(current).Contains(next) {
				visited[next] = true
				dfs(start, next, length+1)
				visited[next] = false
			}
		}
	}

	for start := 0; start < n; start++ {
		visited[start] = true
		dfs(start, start, 1)
		visited[start] = false
	}
	return best
}

func bruteLongestPathLength(g graph.Graph) int {
	n := g.N()
	visited := make([]bool, n)
	best := 0

	var dfs func(current, length int)
	dfs = func(current, length int) {
		if length > best {
			best = length
		}
		for next := 0; next < n; next++ {
			if !visited[next] && g.Adj(current).Contains(next) {
				visited[next] = true
				dfs(next, length+1)
				visited[next] = false
			}
		}
	}

	for start := 0; start < n; start++ {
		visited[start] = true
		dfs(start, 1)
		visited[start] = false
	}
	if best == 0 {
		return 0
	}
	return best - 1
}

// induced reports whether the visited path/cycle (in visitation order)
// has no chord: no two vertices adjacent in the graph unless they are
// consecutive in path, or (for a cycle) the wraparound pair.
func induced(g graph.Graph, path []int, isCycle bool) bool {
	n := len(path)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			consecutive := j == i+1
			wraparound := isCycle && i == 0 && j == n-1
			if consecutive || wraparound {
				continue
			}
			if g.Adj(path[i]).Contains(path[j]) {
				return false
			}
		}
	}
	return true
}

func bruteInducedCycleLength(g graph.Graph) int {
	n := g.N()
	visited := make([]bool, n)
	path := make([]int, 0, n)
	best := 0

	var dfs func(start, current int)
	dfs = func(start, current int) {
		if len(path) >= 3 && g.Adj(current).Contains(start) && induced(g, path, true) {
			if len(path) > best {
				best = len(path)
			}
		}
		for next := 0; next < n; next++ {
			if !visited[next] && g.Adj(current).Contains(next) {
				visited[next] = true
				path = append(path, next)
				dfs(start, next)
				path = path[:len(path)-1]
				visited[next] = false
			}
		}
	}

	for start := 0; start < n; start++ {
		visited[start] = true
		path = append(path, start)
		dfs(start, start)
		path = path[:len(path)-1]
		visited[start] = false
	}
	return best
}

func bruteInducedPathLength(g graph.Graph) int {
	n := g.N()
	visited := make([]bool, n)
	path := make([]int, 0, n)
	best := 0

	var dfs func(current int)
	dfs = func(current int) {
		if induced(g, path, false) && len(path) > best {
			best = len(path)
		}
		for next := 0; next < n; next++ {
			if !visited[next] && g.Adj(current).Contains(next) {
				visited[next] = true
				path = append(path, next)
				dfs(next)
				path = path[:len(path)-1]
				visited[next] = false
			}
		}
	}

	for start := 0; start < n; start++ {
		visited[start] = true
		path = append(path, start)
		dfs(start)
		path = path[:len(path)-1]
		visited[start] = false
	}
	if best == 0 {
		return 0
	}
	return best - 1
}
