package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Artifact is one output file, fully encoded before anything is written
type Artifact struct {
	Name   string
	Path   string
	Data   []byte
	Width  int
	Height int
}

// writeArtifacts creates dir if needed and writes every artifact in order.
// Each file goes through a temporary file renamed into place, so a reader
// never sees a half-written icon.
func writeArtifacts(dir string, artifacts []Artifact) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, a := range artifacts {
		if err := writeFileAtomic(a.Path, a.Data); err != nil {
			slog.Error("failed to write artifact", "path", a.Path, "error", err)
			return fmt.Errorf("failed to write %s: %w", a.Path, err)
		}
		slog.Info("artifact written",
			"path", a.Path,
			"width", a.Width,
			"height", a.Height,
			"size_bytes", len(a.Data))
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
