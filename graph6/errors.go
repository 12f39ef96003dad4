package graph6

import "errors"

var (
	// ErrEmptyLine is returned when Decode is given a zero-length line.
	ErrEmptyLine = errors.New("graph6: empty line")

	// ErrMalformedHeader is returned when a line begins with '>' but its
	// first ten bytes are not exactly ">>graph6<<".
	ErrMalformedHeader = errors.New("graph6: malformed header")

	// ErrInvalidByte is returned when a byte outside the printable range
	// [63, 126] appears where a graph6 data byte is expected.
	ErrInvalidByte = errors.New("graph6: byte outside valid range [63,126]")

	// ErrTruncated is returned when the line ends before the vertex-count
	// prefix or the adjacency byte run is complete.
	ErrTruncated = errors.New("graph6: truncated line")

	// ErrNoNewline is returned when the line has no terminating '\n',
	// which the format requires of every record.
	ErrNoNewline = errors.New("graph6: missing terminating newline")

	// ErrTooWide is returned when the decoded vertex count exceeds the
	// bitset width compiled into this binary.
	ErrTooWide = errors.New("graph6: vertex count exceeds compiled bitset width")
)
