package stats

import "github.com/jrenders/circumference6/bitset"

// Table counts occurrences of each possible induced length, indexed
// 0..bitset.Width. The zero value is an empty table, ready to use.
type Table [bitset.Width + 1]uint64

// Bump increments the counter at i. i is always derived internally from a
// path or cycle length bounded by bitset.Width, so an out-of-range i is a
// programmer error, not a user-facing condition, and Bump panics rather
// than returning an error.
func (t *Table) Bump(i int) {
	if i < 0 || i >= len(t) {
		panic("stats: Bump index out of range")
	}
	t[i]++
}

// Total returns the sum of all counters.
func (t *Table) Total() uint64 {
	var sum uint64
	for _, c := range t {
		sum += c
	}
	return sum
}
