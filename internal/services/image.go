package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// UploadedImage is a decoded upload in a format the provider accepts.
// Format is the subtype of the MIME type, e.g. "png".
type UploadedImage struct {
	Format string
	Data   []byte
	Width  int
	Height int
}

// formats Gemini accepts as inline data without conversion
var passthroughFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// DecodeImage checks that data is an image and normalizes it for the provider.
// Formats outside passthroughFormats are re-encoded as PNG.
func DecodeImage(data []byte) (*UploadedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot identify image file: %w", err)
	}

	bounds := img.Bounds()
	uploaded := &UploadedImage{
		Format: format,
		Data:   data,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	if passthroughFormats[format] {
		return uploaded, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("convert %s image to png: %w", format, err)
	}
	uploaded.Format = "png"
	uploaded.Data = buf.Bytes()

	return uploaded, nil
}
