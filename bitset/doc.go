// Package bitset implements a fixed-width set of vertex indices
// {0,...,Width-1}, used by the engine package as the sole working
// representation of a vertex subset during backtracking search.
//
// Width is a build-time constant chosen from {64, 128, 192, 256} via the
// build tags bitset128, bitset192, bitset256 (no tag selects 64, the
// default). Exactly one of bitset_w64.go, bitset_w128.go, bitset_w192.go,
// bitset_w256.go is compiled into any given binary; all four define the
// same Bitset type and method set, mirroring how the original C program
// chose among bitset64Vertices.h/bitset128Vertices.h/.../bitset256Vertices.h
// via a preprocessor #ifdef ladder.
//
// Bitset is a plain fixed-size array of uint64 words, not a pointer type:
// assigning one Bitset to another copies it. That property is what lets the
// search engine mutate a "remaining candidates" set on every recursive
// descent and restore it on backtrack by simple reassignment, with no
// separate undo log.
//
// All operations are O(Width/64) word-parallel; there is no growth path,
// no heap allocation, and no bounds-widening: a vertex index must already
// satisfy 0 <= i < Width, which the graph6 decoder enforces before any
// Bitset is constructed.
package bitset
