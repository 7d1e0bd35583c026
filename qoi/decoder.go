package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/conradludgate/image-qoi/imgconv"
)

// Decode reads a QOI image from r and returns it as an image.Image. The
// result is always an *image.NRGBA; 3-channel streams decode fully opaque.
func Decode(r io.Reader) (image.Image, error) {
	z, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	width, height := z.Dimensions()
	if width <= 0 || height <= 0 || int64(width)*int64(height) > qoiMaxPixels {
		return nil, fmt.Errorf("qoi: invalid image size %dx%d", width, height)
	}

	channels := z.Format().Channels()
	raw := make([]byte, width*height*channels)
	if _, err := io.ReadFull(z, raw); err != nil {
		return nil, err
	}

	return imgconv.FromRaw(raw, width, height, channels), nil
}

// DecodeConfig returns the dimensions and color model of a QOI image without
// decoding any pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.width),
		Height:     int(h.height),
	}, nil
}
