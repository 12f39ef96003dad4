// Package circumference6 measures circumference, longest path, and their
// induced (chordless) analogues over streams of graphs in graph6 text
// format.
//
// 🔧 What does it do?
//
//	Reads graph6 lines from stdin, one graph per line, and for each one
//	computes exactly one of four properties:
//
//	  • circumference           — longest cycle (default)
//	  • graph length (-l)       — longest path
//	  • induced cycle (-c)      — longest chordless cycle
//	  • induced path (-p)       — longest chordless path
//
// Graphs can be filtered before being forwarded to stdout: -o accepts an
// exact measured value, -f accepts graphs where a given induced length
// never occurs, -d reports the order-minus-value difference instead of
// the value itself, and -C complements whichever accept/reject decision
// results. A frequency table and read/skipped/emitted counts are written
// to stderr once stdin is exhausted.
//
// Under the hood, the work is organized into a handful of small packages:
//
//	graph/     — fixed-width bitset-backed adjacency representation
//	graph6/    — graph6 text codec
//	bitset/    — compile-time-width bit vectors used as vertex sets
//	engine/    — the four backtracking measures
//	stats/     — fixed-size frequency tables
//	filter/    — the accept/reject predicate built from CLI modifiers
//	cliopts/   — flag parsing and validation
//	cmd/circumference/ — the executable wiring the above together
//
// Build and install the CLI with:
//
//	go install github.com/jrenders/circumference6/cmd/circumference@latest
package circumference6
