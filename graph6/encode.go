package graph6

import "github.com/jrenders/circumference6/graph"

// Encode renders g as a graph6 record, including the terminating newline.
// If withHeader is set the ">>graph6<<" prefix is emitted first. It is the
// inverse of Decode and exists primarily to drive round-trip tests; the
// harness itself forwards the original input bytes verbatim rather than
// re-encoding.
func Encode(g graph.Graph, withHeader bool) []byte {
	n := g.N()
	out := make([]byte, 0, 16)
	if withHeader {
		out = append(out, header...)
	}
	out = append(out, encodeN(n)...)

	totalBits := n * (n - 1) / 2
	bodyLen := (totalBits + 5) / 6
	bits := make([]byte, bodyLen)
	bitIndex := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if g.Adj(i).Contains(j) {
				byteIdx := bitIndex / 6
				bitInByte := bitIndex % 6
				bits[byteIdx] |= 1 << uint(5-bitInByte)
			}
			bitIndex++
		}
	}
	for k := range bits {
		bits[k] += 63
	}
	out = append(out, bits...)
	out = append(out, '\n')
	return out
}

// encodeN renders the vertex-count prefix for n using the same three-tier
// scheme readN decodes.
func encodeN(n int) []byte {
	if n <= 62 {
		return []byte{byte(n + 63)}
	}
	if n <= 262143 {
		return []byte{
			126,
			byte((n>>12)&0x3f) + 63,
			byte((n>>6)&0x3f) + 63,
			byte(n&0x3f) + 63,
		}
	}
	return []byte{
		126, 126,
		byte((n>>30)&0x3f) + 63,
		byte((n>>24)&0x3f) + 63,
		byte((n>>18)&0x3f) + 63,
		byte((n>>12)&0x3f) + 63,
		byte((n>>6)&0x3f) + 63,
		byte(n&0x3f) + 63,
	}
}
