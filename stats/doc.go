// Package stats provides the fixed-width frequency table the two induced
// measures accumulate into: one counter per possible induced cycle length
// or induced path edge-count, indexed 0..W.
package stats
