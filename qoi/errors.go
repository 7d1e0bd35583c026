package qoi

import "errors"

var (
	// ErrTruncatedHeader reports that fewer than 14 header bytes were available.
	ErrTruncatedHeader = errors.New("qoi: truncated header")
	// ErrBadMagic reports a header that does not start with "qoif".
	ErrBadMagic = errors.New("qoi: bad magic")
	// ErrTruncatedStream reports that the input ended inside a chunk.
	ErrTruncatedStream = errors.New("qoi: truncated stream")
)
