package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jo-hoe/goicons/internal/icon"
)

// ExtensionIconName returns the file name of the extension icon at the given size
func ExtensionIconName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// GenerateExtensionIcons draws the extension icon once at its base size and
// writes one PNG per configured size into the extension output directory.
func (s *IconService) GenerateExtensionIcons(ctx context.Context) ([]Artifact, error) {
	start := time.Now()
	cfg := s.config.Extension

	base, err := s.renderPNG(ctx, icon.ExtensionIcon())
	if err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		data, err := s.resample(ctx, base, size)
		if err != nil {
			return nil, err
		}
		name := ExtensionIconName(size)
		artifacts = append(artifacts, Artifact{
			Name:   name,
			Path:   filepath.Join(cfg.OutputDir, name),
			Data:   data,
			Width:  size,
			Height: size,
		})
	}

	if err := writeArtifacts(cfg.OutputDir, artifacts); err != nil {
		return nil, err
	}

	logRun("extension", start, artifacts)
	return artifacts, nil
}
