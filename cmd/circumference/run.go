// Package main is the circumference command: it reads graph6 graphs from
// stdin, measures one of four properties per graph, filters by the
// selected modifiers, and forwards accepted graphs to stdout while
// reporting a frequency table and summary counts to stderr.
package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jrenders/circumference6/bitset"
	"github.com/jrenders/circumference6/cliopts"
	"github.com/jrenders/circumference6/engine"
	"github.com/jrenders/circumference6/filter"
	"github.com/jrenders/circumference6/graph6"
	"github.com/jrenders/circumference6/stats"
)

// readBufferSize sizes the buffered reader over stdin. ReadBytes returns a
// whole line however long it is, so this only sets how much is read from
// stdin at a time.
const readBufferSize = 1 << 20

// run drives the whole pipeline over stdin/stdout/stderr, factored out of
// main so it can be exercised with in-memory buffers in tests.
func run(cfg cliopts.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	reader := bufio.NewReaderSize(stdin, readBufferSize)

	pred := filter.Predicate{
		Difference:      cfg.Difference,
		Forbidden:       cfg.Forbidden,
		ForbiddenIsPath: cfg.Measure == cliopts.MeasureInducedPath,
		Output:          cfg.Output,
		Complement:      cfg.Complement,
	}

	var histogram stats.Table
	var graphsRead, graphsSkipped, graphsEmitted uint64
	start := time.Now()

	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) == 0 {
			break
		}

		g, hadHeader, decodeErr := graph6.Decode(line)
		if decodeErr == nil && hadHeader && graphsRead+graphsSkipped > 0 {
			decodeErr = fmt.Errorf(">>graph6<< header on line %d; only the first line may carry one", graphsRead+graphsSkipped+1)
		}
		if decodeErr != nil {
			fmt.Fprintf(stderr, "skipping invalid graph: %v\n", decodeErr)
			graphsSkipped++
			if readErr != nil {
				break
			}
			continue
		}
		graphsRead++

		n := g.N()
		var value int
		var perGraph stats.Table
		switch cfg.Measure {
		case cliopts.MeasureInducedCycle:
			value = engine.LongestInducedCycleLength(g, &perGraph)
		case cliopts.MeasureInducedPath:
			value = engine.LongestInducedPathLength(g, &perGraph)
		case cliopts.MeasurePath:
			value = engine.LongestPathLength(g)
		default:
			value = engine.Circumference(g, bitset.Empty)
		}

		if pred.Evaluate(n, value, &perGraph) {
			graphsEmitted++
			if _, err := stdout.Write(line); err != nil {
				return err
			}
		}

		if cfg.Difference {
			histogram.Bump(n - value)
		} else {
			histogram.Bump(value)
		}

		if readErr != nil {
			break
		}
	}

	printSummary(stderr, cfg, &histogram, graphsRead, graphsSkipped, graphsEmitted, time.Since(start))
	return nil
}

func printSummary(w io.Writer, cfg cliopts.Config, histogram *stats.Table, read, skipped, emitted uint64, elapsed time.Duration) {
	label := cfg.Measure.String()
	if cfg.Difference {
		label = "order - " + label
	}
	fmt.Fprintf(w, "%s frequencies:\n", label)
	for length, count := range histogram {
		if count > 0 {
			fmt.Fprintf(w, "  %d: %d\n", length, count)
		}
	}
	fmt.Fprintf(w, "graphs read: %d\n", read)
	fmt.Fprintf(w, "graphs skipped: %d\n", skipped)
	fmt.Fprintf(w, "graphs emitted: %d\n", emitted)
	fmt.Fprintf(w, "elapsed: %s\n", elapsed)
}
