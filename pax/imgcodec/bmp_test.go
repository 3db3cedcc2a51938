package imgcodec

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodeTestBMP(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadBMPDecodesPixels(t *testing.T) {
	data := encodeTestBMP(t)
	b := LoadBMP
	buf, err := b(data)
	require.NoError(t, err)
	require.Equal(t, 2, buf.Width)
	require.Equal(t, 2, buf.Height)
	require.Equal(t, uint8(255), buf.GetPixel(0, 0).R())
	require.Equal(t, uint8(255), buf.GetPixel(1, 1).B())
}

func TestLoadBMPRejectsGarbage(t *testing.T) {
	_, err := LoadBMP([]byte("not a bmp"))
	require.Error(t, err)
}
