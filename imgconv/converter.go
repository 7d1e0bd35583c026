// Package imgconv converts between raw pixel buffers and the standard
// library image types.
package imgconv

import (
	"image"
	"image/color"
)

// FromRaw builds an *image.NRGBA from width*height pixels stored in pix as
// consecutive 3-byte (RGB) or 4-byte (RGBA) tuples in row-major order.
// 3-channel input becomes fully opaque. pix must hold at least
// width*height*channels bytes.
func FromRaw(pix []byte, width, height, channels int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	if channels == 4 {
		copy(img.Pix, pix)
		return img
	}

	for i, j := 0, 0; j+4 <= len(img.Pix); i, j = i+3, j+4 {
		img.Pix[j+0] = pix[i+0]
		img.Pix[j+1] = pix[i+1]
		img.Pix[j+2] = pix[i+2]
		img.Pix[j+3] = 255
	}

	return img
}

// ToNRGBA converts any image m to an *image.NRGBA image with bounds starting
// at (0,0). Images that are not image.NRGBA might be converted lossily.
func ToNRGBA(m image.Image) *image.NRGBA {
	if img, ok := m.(*image.NRGBA); ok {
		return img
	}

	b := m.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.NRGBAModel.Convert(m.At(x, y))
			img.Set(x-b.Min.X, y-b.Min.Y, px)
		}
	}

	return img
}
