// Package graphgen provides deterministic constructors for the small family
// of graphs exercised by the engine package's tests and by the differential
// brute-force checks: the complete graph K_n, the cycle C_n, the path P_n,
// the empty graph on n vertices, and the Petersen graph.
//
// Each constructor returns a graph.Graph directly (there is no incremental,
// mutable builder here: graph.Graph is built once from a finished edge
// list), unlike the teacher's functional-options Constructor/BuildGraph
// pattern this package is adapted from, which composes mutations against a
// long-lived mutable graph.
package graphgen
