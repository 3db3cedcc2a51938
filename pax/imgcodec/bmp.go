// Package imgcodec decodes on-disk image formats straight into a pax.Buffer,
// for loading sprites and blit sources (spec.md §1's blit surface, fed
// from golang.org/x/image/bmp rather than a bespoke decoder).
package imgcodec

import (
	"bytes"
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/pixfmt"
	"github.com/paxgfx/pax/pax"
)

// LoadBMP decodes a Windows/OS2 bitmap from data into a new ARGB8888
// pax.Buffer the same dimensions as the source image.
func LoadBMP(data []byte) (*pax.Buffer, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "imgcodec: decoding bmp")
	}
	return FromImage(img), nil
}

// FromImage copies any image.Image into a new ARGB8888 pax.Buffer,
// row by row, converting through its native color model.
func FromImage(img image.Image) *pax.Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := pax.NewBuffer(w, h, pixfmt.ARGB8888, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := pcolor.ARGB(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			b.SetPixel(x, y, c)
		}
	}
	return b
}
