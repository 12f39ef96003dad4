package filter

import "github.com/jrenders/circumference6/stats"

// Predicate captures the four modifier flags that decide whether a
// measured graph is forwarded to stdout. Difference and Forbidden together
// is a construction-time usage error, rejected by cliopts before any graph
// is read; Evaluate assumes that combination never reaches it.
type Predicate struct {
	// Difference reports n-value against Output instead of value itself.
	Difference bool

	// Forbidden, when non-nil, accepts graphs whose frequency table has no
	// entry at this induced length. Only meaningful for the two induced
	// measures; ForbiddenIsPath distinguishes the bound check between them.
	Forbidden       *int
	ForbiddenIsPath bool

	// Output, when non-nil, accepts graphs whose (possibly differenced)
	// value equals it exactly.
	Output *int

	// Complement negates the result of whichever case above applies.
	Complement bool
}

// Evaluate reports whether a graph with n vertices and measured value
// should be forwarded, consulting freq only when Forbidden is set.
func (p Predicate) Evaluate(n, value int, freq *stats.Table) bool {
	return p.condition(n, value, freq) != p.Complement
}

func (p Predicate) condition(n, value int, freq *stats.Table) bool {
	switch {
	case p.Forbidden != nil:
		tooLong := (p.ForbiddenIsPath && *p.Forbidden >= n) ||
			(!p.ForbiddenIsPath && *p.Forbidden > n)
		if tooLong {
			return true
		}
		return freq[*p.Forbidden] == 0

	case p.Difference:
		return p.Output != nil && n-value == *p.Output

	default:
		return p.Output != nil && value == *p.Output
	}
}
