package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jo-hoe/goicons/internal/canvas"
	"github.com/jo-hoe/goicons/internal/commands"
	"github.com/jo-hoe/goicons/internal/commandstructure"
	"github.com/jo-hoe/goicons/internal/icon"
)

// IconService renders the icon designs and writes their outputs
type IconService struct {
	config    *GeneratorConfig
	renderers *canvas.Registry
	commands  *commandstructure.CommandRegistry
}

// Option customizes an IconService
type Option func(*IconService)

// WithRendererRegistry swaps the registry canvases are created from
func WithRendererRegistry(r *canvas.Registry) Option {
	return func(s *IconService) {
		s.renderers = r
	}
}

// WithCommandRegistry swaps the registry pipeline commands are created from
func WithCommandRegistry(r *commandstructure.CommandRegistry) Option {
	return func(s *IconService) {
		s.commands = r
	}
}

// NewIconService creates a service using the default registries
func NewIconService(config *GeneratorConfig, opts ...Option) *IconService {
	s := &IconService{
		config:    config,
		renderers: canvas.DefaultRegistry,
		commands:  commandstructure.DefaultRegistry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// renderPNG draws the design and returns it PNG-encoded
func (s *IconService) renderPNG(ctx context.Context, d icon.Design) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := icon.Render(s.renderers, s.config.Renderer, d)
	if err != nil {
		return nil, err
	}

	data, err := commands.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", d.Name, err)
	}
	return data, nil
}

// resample runs the PNG through a single ResampleCommand pipeline
func (s *IconService) resample(ctx context.Context, base []byte, size int) ([]byte, error) {
	invoker, err := commandstructure.NewCommandInvokerFromConfigs(s.commands, []commandstructure.CommandConfig{
		{
			Name: "ResampleCommand",
			Params: map[string]any{
				"width":  size,
				"height": size,
				"filter": s.config.Filter,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	data, err := invoker.Execute(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to resample to %dpx: %w", size, err)
	}
	return data, nil
}

func logRun(generator string, start time.Time, artifacts []Artifact) {
	slog.Info("generation completed",
		"generator", generator,
		"artifact_count", len(artifacts),
		"duration_ms", time.Since(start).Milliseconds())
}
