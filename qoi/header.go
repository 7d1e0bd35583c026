package qoi

import (
	"encoding/binary"
	"io"
)

type qoiHeader struct {
	width      uint32
	height     uint32
	channels   uint8
	colorspace uint8
}

// decodeHeader consumes exactly qoiHeaderSize bytes from r. Channels and
// colorspace are stored as-is: the decoder only ever distinguishes 3-channel
// streams from everything else, and the colorspace byte carries no meaning
// for decoding.
func decodeHeader(r io.Reader) (qoiHeader, error) {
	var buf [qoiHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return qoiHeader{}, ErrTruncatedHeader
		}
		return qoiHeader{}, err
	}

	if string(buf[:4]) != qoiMagic {
		return qoiHeader{}, ErrBadMagic
	}

	return qoiHeader{
		width:      binary.BigEndian.Uint32(buf[4:8]),
		height:     binary.BigEndian.Uint32(buf[8:12]),
		channels:   buf[12],
		colorspace: buf[13],
	}, nil
}
