package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jo-hoe/goicons/internal/canvas"
	"github.com/jo-hoe/goicons/internal/commands"
	ico "github.com/sergeymakinen/go-ico"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<circle cx="32" cy="32" r="30" fill="#7fbe25"/>
</svg>`

func TestGenerateFavicon_EndToEnd(t *testing.T) {
	config := testConfig(t)

	result, err := NewIconService(config).GenerateFavicon(context.Background())
	if err != nil {
		t.Fatalf("GenerateFavicon failed: %v", err)
	}

	want := []string{"favicon.ico", "favicon.png"}
	if got := listDir(t, config.Favicon.OutputDir); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("Expected files %v, got %v", want, got)
	}
	if len(result.Artifacts) != 2 || result.Artifacts[0].Name != "favicon.png" || result.Artifacts[1].Name != "favicon.ico" {
		t.Fatalf("unexpected artifacts: %+v", result.Artifacts)
	}

	img, err := commands.DecodePNG(readFile(t, filepath.Join(config.Favicon.OutputDir, "favicon.png")))
	if err != nil {
		t.Fatalf("favicon.png is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("Expected 64x64, got %v", img.Bounds())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", a>>8)
	}

	icoData := readFile(t, filepath.Join(config.Favicon.OutputDir, "favicon.ico"))
	images, err := ico.DecodeAll(bytes.NewReader(icoData))
	if err != nil {
		t.Fatalf("favicon.ico is not a valid ICO: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("Expected 3 ICO entries, got %d", len(images))
	}
	for i, size := range []int{16, 32, 48} {
		b := images[i].Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("entry %d: expected %dx%d, got %dx%d", i, size, size, b.Dx(), b.Dy())
		}
		if _, _, _, a := images[i].At(b.Min.X, b.Min.Y).RGBA(); a>>8 >= 64 {
			t.Errorf("entry %d: expected near-transparent corner, got alpha %d", i, a>>8)
		}
		_, _, _, center := images[i].At(b.Min.X+size/2, b.Min.Y+size/2).RGBA()
		if center>>8 < 250 {
			t.Errorf("entry %d: expected opaque center, got alpha %d", i, center>>8)
		}
	}
}

func TestGenerateFavicon_SVGStatus(t *testing.T) {
	tests := []struct {
		name        string
		svg         []byte
		wantPresent bool
		wantErr     bool
	}{
		{
			name:        "missing",
			wantPresent: false,
		},
		{
			name:        "valid",
			svg:         []byte(testSVG),
			wantPresent: true,
		},
		{
			name:        "unreadable",
			svg:         []byte("not an svg document"),
			wantPresent: true,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig(t)
			svgPath := filepath.Join(config.Favicon.OutputDir, config.Favicon.SvgName)
			if tt.svg != nil {
				if err := os.MkdirAll(config.Favicon.OutputDir, 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(svgPath, tt.svg, 0644); err != nil {
					t.Fatal(err)
				}
			}

			result, err := NewIconService(config).GenerateFavicon(context.Background())
			if err != nil {
				t.Fatalf("GenerateFavicon must not fail on the SVG check: %v", err)
			}
			if result.SVG.Path != svgPath {
				t.Errorf("Expected SVG path %s, got %s", svgPath, result.SVG.Path)
			}
			if result.SVG.Present != tt.wantPresent {
				t.Errorf("Expected Present=%v, got %v", tt.wantPresent, result.SVG.Present)
			}
			if (result.SVG.Err != nil) != tt.wantErr {
				t.Errorf("Expected SVG error=%v, got %v", tt.wantErr, result.SVG.Err)
			}
			if tt.svg != nil && !bytes.Equal(readFile(t, svgPath), tt.svg) {
				t.Error("favicon.svg must never be modified")
			}
		})
	}
}

func TestGenerateFavicon_Idempotent(t *testing.T) {
	config := testConfig(t)
	service := NewIconService(config)

	if _, err := service.GenerateFavicon(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	png1 := readFile(t, filepath.Join(config.Favicon.OutputDir, "favicon.png"))
	ico1 := readFile(t, filepath.Join(config.Favicon.OutputDir, "favicon.ico"))

	if _, err := service.GenerateFavicon(context.Background()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !bytes.Equal(png1, readFile(t, filepath.Join(config.Favicon.OutputDir, "favicon.png"))) {
		t.Error("favicon.png changed between runs")
	}
	if !bytes.Equal(ico1, readFile(t, filepath.Join(config.Favicon.OutputDir, "favicon.ico"))) {
		t.Error("favicon.ico changed between runs")
	}
}

func TestGenerateFavicon_RendererUnavailable(t *testing.T) {
	config := testConfig(t)
	service := NewIconService(config, WithRendererRegistry(canvas.NewRegistry()))

	result, err := service.GenerateFavicon(context.Background())
	if !errors.Is(err, canvas.ErrRendererUnavailable) {
		t.Fatalf("Expected ErrRendererUnavailable, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil result, got %+v", result)
	}
	if _, err := os.Stat(config.Favicon.OutputDir); !os.IsNotExist(err) {
		t.Error("Expected no output directory when drawing is unavailable")
	}
}

func TestGenerateFavicon_IcoSizeOutOfRange(t *testing.T) {
	config := testConfig(t)
	config.Favicon.IcoSizes = []int{16, 300}

	if _, err := NewIconService(config).GenerateFavicon(context.Background()); err == nil {
		t.Fatal("Expected error for an ICO entry larger than 256px")
	}
	if got := listDir(t, config.Favicon.OutputDir); len(got) != 0 {
		t.Errorf("Expected no files, got %v", got)
	}
}
