package commands

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/jo-hoe/goicons/internal/commandstructure"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
)

// PngConverterCommand converts raster or SVG input into PNG
type PngConverterCommand struct {
	name      string
	svgWidth  int
	svgHeight int
}

// NewPngConverterCommand creates a new PNG converter command. The optional
// width and height params force the SVG render size; without them the SVG
// viewBox decides.
func NewPngConverterCommand(params map[string]any) (commandstructure.Command, error) {
	w := commandstructure.GetIntParam(params, "width", 0)
	h := commandstructure.GetIntParam(params, "height", 0)
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("svg render size must not be negative, got %dx%d", w, h)
	}

	return &PngConverterCommand{
		name:      "PngConverterCommand",
		svgWidth:  w,
		svgHeight: h,
	}, nil
}

// Name returns the command name
func (c *PngConverterCommand) Name() string {
	return c.name
}

// Execute returns PNG bytes for the given input
func (c *PngConverterCommand) Execute(_ context.Context, imageData []byte) ([]byte, error) {
	if hasCorrectPngSignature(imageData) {
		slog.Debug("PngConverterCommand: PNG detected; returning original bytes")
		return imageData, nil
	}

	if isSVGData(imageData) {
		img, err := RasterizeSVG(imageData, c.svgWidth, c.svgHeight)
		if err != nil {
			slog.Error("PngConverterCommand: failed to render SVG", "error", err)
			return nil, err
		}
		return EncodePNG(img)
	}

	img, currentFormat, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		slog.Error("PngConverterCommand: failed to decode image", "error", err)
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	slog.Debug("PngConverterCommand: decoded raster image",
		"current_format", currentFormat,
		"orig_width", img.Bounds().Dx(),
		"orig_height", img.Bounds().Dy())

	out, err := EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return out, nil
}

// RasterizeSVG renders an SVG document onto a transparent canvas. A zero
// width or height is taken from the document's viewBox.
func RasterizeSVG(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 {
		width = int(math.Ceil(icon.ViewBox.W))
	}
	if height == 0 {
		height = int(math.Ceil(icon.ViewBox.H))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions for SVG rendering: %dx%d", width, height)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, dst, dst.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)

	return dst, nil
}

// isSVGData performs a lightweight detection of SVG content from raw bytes
func isSVGData(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	n := len(data)
	if n > 4096 {
		n = 4096
	}
	header := bytes.ToLower(data[:n])
	return bytes.Contains(header, []byte("<svg"))
}

func init() {
	if err := commandstructure.DefaultRegistry.Register("PngConverterCommand", NewPngConverterCommand); err != nil {
		panic(fmt.Sprintf("failed to register PngConverterCommand: %v", err))
	}
}
