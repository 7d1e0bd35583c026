package qoi

// pixel holds one decoded pixel as r, g, b, a byte lanes. Channel
// arithmetic is plain byte math and wraps at 8 bits, as the format requires.
type pixel [4]byte

// pixelInit is the implicit pixel preceding the first chunk.
var pixelInit = pixel{0, 0, 0, 255}

// hash returns the lookback-cache slot of p. Each multiply and add wraps at
// 8 bits before the final reduction mod 64.
func (p pixel) hash() uint8 {
	return (3*p[0] + 5*p[1] + 7*p[2] + 11*p[3]) % qoiMaxBufferSize
}
