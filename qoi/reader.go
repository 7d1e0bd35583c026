package qoi

import (
	"bufio"
	"io"
)

// Format reports the channel layout promised by a stream's header.
type Format uint8

const (
	FormatRGB  Format = 3
	FormatRGBA Format = 4
)

// Channels returns the number of bytes each decoded pixel occupies.
func (f Format) Channels() int {
	return int(f)
}

func (f Format) String() string {
	if f == FormatRGB {
		return "RGB"
	}
	return "RGBA"
}

// Reader decodes the chunk stream following a QOI header and streams the raw
// pixel bytes out through its io.Reader side. Its state is constant-size
// regardless of image dimensions: the 64-slot lookback cache, the most
// recently decoded pixel, and the bytes of the current chunk that have not
// been delivered yet.
type Reader struct {
	r      *bufio.Reader
	header qoiHeader
	stride int
	pixels uint64 // pixels not yet decoded into a remainder
	cache  [qoiMaxBufferSize]pixel
	latest pixel
	rem    remainder
	buf    [4]byte
}

// NewReader parses the 14-byte header from r and returns a Reader decoding
// the chunk stream that follows. Read returns io.EOF once exactly
// width*height pixels have been delivered; trailing bytes such as the
// optional end-of-stream marker are left unread.
func NewReader(r io.Reader) (*Reader, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	stride := 4
	if h.channels == 3 {
		stride = 3
	}

	return &Reader{
		r:      bufio.NewReader(r),
		header: h,
		stride: stride,
		pixels: uint64(h.width) * uint64(h.height),
		latest: pixelInit,
	}, nil
}

// Dimensions returns the width and height promised by the header.
func (z *Reader) Dimensions() (width, height int) {
	return int(z.header.width), int(z.header.height)
}

// Format returns the channel layout of the decoded pixel bytes. Streams
// whose header declares 3 channels decode as RGB, everything else as RGBA.
func (z *Reader) Format() Format {
	if z.stride == 3 {
		return FormatRGB
	}
	return FormatRGBA
}

// Read fills p with decoded pixel bytes. Buffers of any size are fine: a
// chunk decoded once is drained across as many calls as needed.
func (z *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if z.rem.count == 0 {
		if z.pixels == 0 {
			return 0, io.EOF
		}
		if err := z.readChunk(); err != nil {
			return 0, err
		}
	}

	return z.rem.read(p), nil
}

// readChunk decodes exactly one chunk from the source into a fresh
// remainder: one tag byte, then up to four follow-on bytes selected by the
// tag's opcode.
func (z *Reader) readChunk() error {
	if err := z.readFull(z.buf[:1]); err != nil {
		return err
	}

	tag := z.buf[0]

	if tag == opRGBA {
		if err := z.readFull(z.buf[:4]); err != nil {
			return err
		}
		z.save(pixel{z.buf[0], z.buf[1], z.buf[2], z.buf[3]})

	} else if tag == opRGB {
		if err := z.readFull(z.buf[:3]); err != nil {
			return err
		}
		z.save(pixel{z.buf[0], z.buf[1], z.buf[2], z.latest[3]})

	} else if (tag & maskOP) == opRUN {
		// The previous pixel repeats as-is. No save: its cache slot already
		// holds it, and latest is unchanged.
		run := uint64(tag&mask6) + 1
		if run > z.pixels {
			run = z.pixels
		}
		z.pixels -= run
		z.rem = remainder{pattern: z.latest, stride: z.stride, count: int(run) * z.stride}
		return nil

	} else if (tag & maskOP) == opLUMA {
		if err := z.readFull(z.buf[:1]); err != nil {
			return err
		}
		vg := (tag & mask6) - 32
		z.save(pixel{
			z.latest[0] + vg - 8 + ((z.buf[0] >> 4) & mask4),
			z.latest[1] + vg,
			z.latest[2] + vg - 8 + ((z.buf[0] >> 0) & mask4),
			z.latest[3],
		})

	} else if (tag & maskOP) == opDIFF {
		z.save(pixel{
			z.latest[0] + ((tag >> 4) & mask2) - 2,
			z.latest[1] + ((tag >> 2) & mask2) - 2,
			z.latest[2] + ((tag >> 0) & mask2) - 2,
			z.latest[3],
		})

	} else { // opINDEX
		z.save(z.cache[tag&mask6])
	}

	z.pixels--
	z.rem = remainder{pattern: z.latest, stride: z.stride, count: z.stride}
	return nil
}

// save registers px as the latest pixel and overwrites its cache slot.
// Colliding pixels displace each other unconditionally.
func (z *Reader) save(px pixel) {
	z.latest = px
	z.cache[px.hash()] = px
}

// readFull reads len(p) bytes from the source, reclassifying short reads as
// a stream truncation. Other I/O errors pass through verbatim.
func (z *Reader) readFull(p []byte) error {
	if _, err := io.ReadFull(z.r, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrTruncatedStream
		}
		return err
	}
	return nil
}
