package commands

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// pngSignature is the fixed 8-byte header every PNG stream starts with
var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// hasCorrectPngSignature checks whether the provided data begins with a valid PNG signature
func hasCorrectPngSignature(data []byte) bool {
	return len(data) >= len(pngSignature) && bytes.Equal(data[:len(pngSignature)], pngSignature)
}

// DecodePNG decodes PNG bytes into an image
func DecodePNG(data []byte) (image.Image, error) {
	if !hasCorrectPngSignature(data) {
		return nil, fmt.Errorf("input is not a PNG stream")
	}
	return png.Decode(bytes.NewReader(data))
}

// EncodePNG encodes an image as PNG. The stdlib encoder is deterministic,
// so equal pixels always give equal bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	bb := img.Bounds()
	// rough heuristic: 1 byte per pixel
	buf.Grow(bb.Dx() * bb.Dy())
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
