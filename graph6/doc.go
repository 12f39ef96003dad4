// Package graph6 decodes and encodes the canonical graph6 text format used
// to feed graphs into the engine package and to echo accepted graphs back
// to stdout.
//
// A graph6 line is: an optional 10-byte ">>graph6<<" header, a vertex-count
// prefix (1, 4, or 8 bytes), a run of bytes encoding the upper-triangular
// adjacency matrix in column-major order, and a terminating newline. See
// Decode for the exact byte layout.
//
// This package is a full reimplementation of readGraph6.c/readGraph6.h from
// the original circumferenceChecker program, translated from C's
// pointer-and-index bit scanning into a bounds-checked byte-slice walk that
// returns a sentinel error instead of printing to stderr and returning -1.
package graph6
