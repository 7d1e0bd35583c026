package qoi

// remainder holds pixel bytes that have been decoded but not yet delivered.
// A single chunk can stand for up to 62 repeated pixels while the caller may
// ask for output one byte at a time; pattern and count bridge the two
// without re-decoding or losing bytes.
type remainder struct {
	pattern [4]byte
	stride  int
	count   int
}

// read copies up to count bytes into p by cycling the first stride bytes of
// the pattern. A copy that stops mid-pixel rotates the pattern so the next
// call resumes at the right lane.
func (rem *remainder) read(p []byte) int {
	n := len(p)
	if n > rem.count {
		n = rem.count
	}
	if n == 0 {
		return 0
	}

	i := 0
	for ; i+rem.stride <= n; i += rem.stride {
		copy(p[i:], rem.pattern[:rem.stride])
	}

	if part := n - i; part > 0 {
		copy(p[i:n], rem.pattern[:part])
		rem.rotate(part)
	}

	rem.count -= n
	return n
}

// rotate shifts the first stride pattern bytes left by k lanes.
func (rem *remainder) rotate(k int) {
	var tmp [4]byte
	copy(tmp[:], rem.pattern[:rem.stride])
	for i := 0; i < rem.stride; i++ {
		rem.pattern[i] = tmp[(i+k)%rem.stride]
	}
}
