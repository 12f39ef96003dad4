package graphgen

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum a given
// constructor requires (e.g. Cycle needs n >= 3).
var ErrTooFewVertices = errors.New("graphgen: n too small for this constructor")
