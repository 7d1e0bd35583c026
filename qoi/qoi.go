// Package qoi implements a streaming decoder for the QOI
// ("Quite OK Image") format, https://qoiformat.org.
package qoi

import (
	"image"
)

const (
	/*
		2GB is the max image size that the whole-image Decode path can safely
		materialize, assuming the worst case with 4 output bytes per pixel,
		rounded down to a nice clean value.

		400 million pixels ought to be enough for anybody.
	*/
	qoiMaxPixels = 400_000_000
	qoiMagic     = "qoif"

	qoiHeaderSize    = 14 //size in bytes
	qoiMaxBufferSize = 64
)

const (
	opINDEX uint8 = 0b00000000
	opDIFF  uint8 = 0b01000000
	opLUMA  uint8 = 0b10000000
	opRUN   uint8 = 0b11000000
	opRGB   uint8 = 0b11111110
	opRGBA  uint8 = 0b11111111
)

const (
	maskOP uint8 = 0b11000000
	mask6  uint8 = 0b00111111
	mask4  uint8 = 0b00001111
	mask2  uint8 = 0b00000011
)

func init() {
	image.RegisterFormat("qoi", qoiMagic, Decode, DecodeConfig)
}
