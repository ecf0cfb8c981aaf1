package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jo-hoe/goicons/internal/commands"
	"github.com/jo-hoe/goicons/internal/commandstructure"
	"github.com/jo-hoe/goicons/internal/icon"
	ico "github.com/sergeymakinen/go-ico"
)

// SVGStatus describes the hand-maintained vector favicon next to the outputs
type SVGStatus struct {
	Path    string
	Present bool
	// Err is set when the file exists but cannot be read or rendered
	Err error
}

// FaviconResult lists what a favicon run wrote
type FaviconResult struct {
	Artifacts []Artifact
	IcoSizes  []int
	SVG       SVGStatus
}

// GenerateFavicon draws the favicon at its base size, writes it as PNG and
// packs the configured smaller sizes into one ICO container.
func (s *IconService) GenerateFavicon(ctx context.Context) (*FaviconResult, error) {
	start := time.Now()
	cfg := s.config.Favicon

	base, err := s.renderPNG(ctx, icon.Favicon())
	if err != nil {
		return nil, err
	}

	icoData, err := s.packIco(ctx, base, cfg.IcoSizes)
	if err != nil {
		return nil, err
	}

	artifacts := []Artifact{
		{
			Name:   cfg.PngName,
			Path:   filepath.Join(cfg.OutputDir, cfg.PngName),
			Data:   base,
			Width:  icon.FaviconSize,
			Height: icon.FaviconSize,
		},
		{
			Name:   cfg.IcoName,
			Path:   filepath.Join(cfg.OutputDir, cfg.IcoName),
			Data:   icoData,
			Width:  maxSize(cfg.IcoSizes),
			Height: maxSize(cfg.IcoSizes),
		},
	}
	if err := writeArtifacts(cfg.OutputDir, artifacts); err != nil {
		return nil, err
	}

	logRun("favicon", start, artifacts)
	return &FaviconResult{
		Artifacts: artifacts,
		IcoSizes:  cfg.IcoSizes,
		SVG:       s.checkSVG(ctx, filepath.Join(cfg.OutputDir, cfg.SvgName)),
	}, nil
}

func (s *IconService) packIco(ctx context.Context, base []byte, sizes []int) ([]byte, error) {
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		data, err := s.resample(ctx, base, size)
		if err != nil {
			return nil, err
		}
		img, err := commands.DecodePNG(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %dpx variant: %w", size, err)
		}
		images = append(images, img)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return nil, fmt.Errorf("failed to encode icon container: %w", err)
	}
	return buf.Bytes(), nil
}

// checkSVG confirms the vector favicon exists and renders. It never fails the run.
func (s *IconService) checkSVG(ctx context.Context, path string) SVGStatus {
	status := SVGStatus{Path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("vector favicon not found", "path", path)
		return status
	}
	status.Present = true
	if err != nil {
		status.Err = err
		return status
	}

	invoker, err := commandstructure.NewCommandInvokerFromConfigs(s.commands, []commandstructure.CommandConfig{
		{
			Name: "PngConverterCommand",
			Params: map[string]any{
				"width":  icon.FaviconSize,
				"height": icon.FaviconSize,
			},
		},
	})
	if err == nil {
		_, err = invoker.Execute(ctx, data)
	}
	if err != nil {
		slog.Warn("vector favicon could not be rendered", "path", path, "error", err)
		status.Err = err
	}
	return status
}

func maxSize(sizes []int) int {
	m := 0
	for _, s := range sizes {
		if s > m {
			m = s
		}
	}
	return m
}
