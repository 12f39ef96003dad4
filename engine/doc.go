// Package engine implements the four exhaustive measures this program
// computes over a small simple graph: circumference, longest (non-induced)
// path length, longest induced cycle length, and longest induced path
// length.
//
// Rationale.
//  1. Every measure is an exact, deterministic backtracking search over a
//     fixed-width bitset.Bitset, never an approximation: the graphs this
//     tool processes are small enough (n <= bitset.Width) that exhaustive
//     search with basic pruning finishes quickly.
//  2. Circumference descends candidate lengths from n to 3, picking a
//     lowest-degree pivot at each attempt and trying to close a cycle
//     through it; see circumference.go.
//  3. The two induced measures walk every chordless extension of a seed
//     path, recording a running maximum and a full frequency table as they
//     go, rather than stopping at the first closure; see
//     induced_cycle.go and induced_path.go.
//  4. Longest path is the induced-path walker's un-chorded cousin: it
//     simply maximises path length with an early Hamiltonian exit.
//
// Complexity: worst case exponential in n; in practice bounded by the
// branching factor of max degree and the pruning each search applies.
// Memory: O(n) call stack depth, no heap allocation during recursion
// (bitset.Bitset is a fixed-size array, copied by value at each call).
package engine
