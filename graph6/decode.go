package graph6

import (
	"github.com/jrenders/circumference6/bitset"
	"github.com/jrenders/circumference6/graph"
)

// header is the fixed 10-byte prefix graph6 files may carry on any line
// that starts with it; spec policy restricts it to the first line of a
// stream, which is enforced by the caller, not by Decode itself.
const header = ">>graph6<<"

// Decode parses a single graph6 record. line must include its terminating
// '\n' when the source stream provided one; a line read as the final,
// unterminated chunk of a file (no trailing '\n') is rejected with
// ErrNoNewline, matching the original reader's refusal to accept a
// truncated last line.
//
// On success hadHeader reports whether the ">>graph6<<" prefix was present.
func Decode(line []byte) (g graph.Graph, hadHeader bool, err error) {
	if len(line) == 0 {
		return graph.Graph{}, false, ErrEmptyLine
	}
	if line[len(line)-1] != '\n' {
		return graph.Graph{}, false, ErrNoNewline
	}
	body := line[:len(line)-1]

	idx := 0
	if len(body) >= len(header) && string(body[:len(header)]) == header {
		hadHeader = true
		idx = len(header)
	} else if len(body) > 0 && body[0] == '>' {
		return graph.Graph{}, false, ErrMalformedHeader
	}

	n, idx, err := readN(body, idx)
	if err != nil {
		return graph.Graph{}, hadHeader, err
	}
	if n > bitset.Width {
		return graph.Graph{}, hadHeader, ErrTooWide
	}

	totalBits := n * (n - 1) / 2
	bodyLen := (totalBits + 5) / 6
	if idx+bodyLen > len(body) {
		return graph.Graph{}, hadHeader, ErrTruncated
	}
	bits := body[idx : idx+bodyLen]
	for _, c := range bits {
		if c < 63 || c > 126 {
			return graph.Graph{}, hadHeader, ErrInvalidByte
		}
	}

	edges := make([][2]int, 0, totalBits/2)
	bitIndex := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			byteIdx := bitIndex / 6
			bitInByte := bitIndex % 6
			val := bits[byteIdx] - 63
			if val&(1<<uint(5-bitInByte)) != 0 {
				edges = append(edges, [2]int{i, j})
			}
			bitIndex++
		}
	}

	g, err = graph.New(n, edges)
	if err != nil {
		return graph.Graph{}, hadHeader, err
	}
	return g, hadHeader, nil
}

// readN parses the vertex-count prefix starting at data[idx] and returns
// the decoded count together with the index of the first unconsumed byte.
// It implements the three-tier encoding: a single byte in [63,125] for
// n <= 62, a leading 126 followed by three bytes for 63 <= n <= 262143,
// or two leading 126 bytes followed by six bytes for larger n.
func readN(data []byte, idx int) (n int, next int, err error) {
	if idx >= len(data) {
		return 0, 0, ErrTruncated
	}
	b0 := data[idx]
	if b0 < 63 || b0 > 126 {
		return 0, 0, ErrInvalidByte
	}
	if b0 < 126 {
		return int(b0) - 63, idx + 1, nil
	}

	idx++
	if idx >= len(data) {
		return 0, 0, ErrTruncated
	}
	b1 := data[idx]
	if b1 < 63 || b1 > 126 {
		return 0, 0, ErrInvalidByte
	}
	if b1 < 126 {
		if idx+3 > len(data) {
			return 0, 0, ErrTruncated
		}
		n := 0
		for i := 0; i < 3; i++ {
			c := data[idx+i]
			if c < 63 || c > 126 {
				return 0, 0, ErrInvalidByte
			}
			n = n<<6 | int(c-63)
		}
		return n, idx + 3, nil
	}

	idx++
	if idx+6 > len(data) {
		return 0, 0, ErrTruncated
	}
	n = 0
	for i := 0; i < 6; i++ {
		c := data[idx+i]
		if c < 63 || c > 126 {
			return 0, 0, ErrInvalidByte
		}
		n = n<<6 | int(c-63)
	}
	return n, idx + 6, nil
}
