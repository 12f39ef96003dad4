// Package graph defines the immutable undirected simple graph over dense
// vertex indices {0,...,n-1} that the engine package operates on.
//
// Unlike the mutable, string-keyed, thread-safe Graph the rest of this
// module's lineage uses elsewhere, a graph.Graph here is a value built once
// (by the graph6 decoder, or by internal/graphgen in tests) and never
// mutated again: adjacency is a dense array of bitset.Bitset, one per
// vertex, and the zero-allocation backtracking search in engine reads it
// for the lifetime of a single measure call.
//
// Invariants, enforced by New and never rechecked afterward:
//   - 0 <= n <= bitset.Width
//   - adj[v] never contains v (no self-loops)
//   - u is in adj[v] if and only if v is in adj[u] (symmetry)
package graph
