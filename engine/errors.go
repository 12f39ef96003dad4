package engine

import "errors"

// ErrVertexCountExceedsWidth guards against a graph with more vertices
// than bitset.Width reaching a measure function. The decoder is expected
// to reject such graphs before they ever reach the engine; this is a
// defensive check against a programmer error, not a condition any caller
// should expect to handle at runtime.
var ErrVertexCountExceedsWidth = errors.New("engine: vertex count exceeds bitset width")
