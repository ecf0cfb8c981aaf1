// Package icon holds the two icon designs and renders them on a canvas.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/jo-hoe/goicons/internal/canvas"
)

// Design is a named, fixed-size drawing. Layers are painted in order.
type Design struct {
	Name   string
	Size   int
	Layers []Group
}

// Render draws the design on a fresh canvas from the named renderer
func Render(registry *canvas.Registry, renderer string, d Design) (*image.RGBA, error) {
	start := time.Now()

	c, err := registry.New(renderer, d.Size)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			slog.Warn("failed to close canvas", "renderer", renderer, "error", cerr)
		}
	}()

	for _, layer := range d.Layers {
		if err := layer.Draw(c); err != nil {
			slog.Error("failed to draw layer",
				"design", d.Name,
				"layer", layer.Name,
				"renderer", renderer,
				"error", err)
			return nil, fmt.Errorf("failed to draw %s: %w", d.Name, err)
		}
	}

	img, err := c.Image()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s canvas: %w", d.Name, err)
	}

	slog.Debug("design rendered",
		"design", d.Name,
		"renderer", renderer,
		"size", d.Size,
		"layer_count", len(d.Layers),
		"duration_ms", time.Since(start).Milliseconds())

	return img, nil
}

func rgba(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
