package core

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/jo-hoe/goicons/internal/renderers"
)

// testConfig returns the built-in configuration with every output redirected into a temp dir
func testConfig(t *testing.T) *GeneratorConfig {
	t.Helper()
	config, err := DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig failed: %v", err)
	}
	root := t.TempDir()
	config.Extension.OutputDir = filepath.Join(root, "icons")
	config.Favicon.OutputDir = filepath.Join(root, "site")
	return config
}

// listDir returns the sorted file names in dir, or nil when dir does not exist
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return data
}
