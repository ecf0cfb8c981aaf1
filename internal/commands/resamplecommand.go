package commands

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/jo-hoe/goicons/internal/commandstructure"
	"golang.org/x/image/draw"
)

// ResampleParams represents typed parameters for the resample command
type ResampleParams struct {
	Width  int
	Height int
	Filter string
}

// NewResampleParamsFromMap creates ResampleParams from a generic map
func NewResampleParamsFromMap(params map[string]any) (*ResampleParams, error) {
	width, err := commandstructure.GetPositiveIntParam(params, "width")
	if err != nil {
		return nil, err
	}
	height, err := commandstructure.GetPositiveIntParam(params, "height")
	if err != nil {
		return nil, err
	}
	filter := commandstructure.GetStringParam(params, "filter", DefaultFilter)
	if _, err := ParseFilter(filter); err != nil {
		return nil, err
	}

	return &ResampleParams{
		Width:  width,
		Height: height,
		Filter: filter,
	}, nil
}

// ResampleCommand resizes a PNG to exact target dimensions. It does not keep
// the aspect ratio; icon sources are always square.
type ResampleCommand struct {
	name   string
	params *ResampleParams
	interp draw.Interpolator
}

// NewResampleCommand creates a new resample command from configuration parameters
func NewResampleCommand(params map[string]any) (commandstructure.Command, error) {
	typedParams, err := NewResampleParamsFromMap(params)
	if err != nil {
		return nil, err
	}
	return newResampleCommand(typedParams)
}

// newResampleCommandWithParams creates a resample command from concrete typed parameters
func newResampleCommandWithParams(width, height int, filter string) (*ResampleCommand, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive, got %d", height)
	}
	return newResampleCommand(&ResampleParams{Width: width, Height: height, Filter: filter})
}

func newResampleCommand(params *ResampleParams) (*ResampleCommand, error) {
	interp, err := ParseFilter(params.Filter)
	if err != nil {
		return nil, err
	}
	return &ResampleCommand{
		name:   "ResampleCommand",
		params: params,
		interp: interp,
	}, nil
}

// Name returns the command name
func (c *ResampleCommand) Name() string {
	return c.name
}

// Execute decodes the PNG, resamples it and encodes the result as PNG
func (c *ResampleCommand) Execute(ctx context.Context, imageData []byte) ([]byte, error) {
	img, err := DecodePNG(imageData)
	if err != nil {
		slog.Error("ResampleCommand: failed to decode PNG image", "error", err)
		return nil, fmt.Errorf("failed to decode PNG image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == c.params.Width && bounds.Dy() == c.params.Height {
		slog.Debug("ResampleCommand: target dimensions equal original; skipping resampling")
		return imageData, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("ResampleCommand: resampling",
		"original_width", bounds.Dx(),
		"original_height", bounds.Dy(),
		"target_width", c.params.Width,
		"target_height", c.params.Height,
		"filter", c.params.Filter)

	out, err := EncodePNG(Resample(img, c.params.Width, c.params.Height, c.interp))
	if err != nil {
		slog.Error("ResampleCommand: failed to encode resampled image", "error", err)
		return nil, fmt.Errorf("failed to encode resampled PNG image: %w", err)
	}

	slog.Debug("ResampleCommand: resampling complete", "output_size_bytes", len(out))
	return out, nil
}

// Resample scales src into a new width×height image. The destination is
// premultiplied RGBA, so interpolation never bleeds color out of fully
// transparent pixels.
func Resample(src image.Image, width, height int, interp draw.Interpolator) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func init() {
	if err := commandstructure.DefaultRegistry.Register("ResampleCommand", NewResampleCommand); err != nil {
		panic(fmt.Sprintf("failed to register ResampleCommand: %v", err))
	}
}
