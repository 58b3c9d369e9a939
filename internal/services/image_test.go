package services

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(40 * x), B: 10, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	return buf.Bytes()
}

func TestDecodeImagePassthrough(t *testing.T) {
	var jpegBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpegBuf, testImage(), nil))

	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{name: "png", data: encodePNG(t), format: "png"},
		{name: "jpeg", data: jpegBuf.Bytes(), format: "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeImage(tt.data)
			require.NoError(t, err)

			assert.Equal(t, tt.format, img.Format)
			assert.Equal(t, tt.data, img.Data)
			assert.Equal(t, 4, img.Width)
			assert.Equal(t, 3, img.Height)
		})
	}
}

func TestDecodeImageConvertsGIFToPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, testImage(), nil))

	img, err := DecodeImage(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, "png", img.Format)
	_, format, err := image.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestDecodeImageRejectsNonImage(t *testing.T) {
	_, err := DecodeImage([]byte("definitely not an image"))
	assert.Error(t, err)
}
