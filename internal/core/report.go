package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jo-hoe/goicons/internal/canvas"
)

// Reporter prints the human-readable outcome of a generator run
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Extension reports the outcome of GenerateExtensionIcons
func (r *Reporter) Extension(renderer string, artifacts []Artifact, err error) {
	if err != nil {
		if errors.Is(err, canvas.ErrRendererUnavailable) {
			r.printInstallHint(renderer)
			return
		}
		r.printf("✗ generation failed: %v\n", err)
		return
	}

	for _, a := range artifacts {
		r.printf("  %s\n", a.Name)
	}
	r.printf("\n✓ extension icons generated\n")
}

// Favicon reports the outcome of GenerateFavicon
func (r *Reporter) Favicon(renderer string, result *FaviconResult, err error) {
	if err != nil {
		if errors.Is(err, canvas.ErrRendererUnavailable) {
			r.printInstallHint(renderer)
			r.printf("\nOr use an online tool:\n")
			r.printf("1. Visit https://favicon.io/\n")
			r.printf("2. Upload favicon.svg\n")
			r.printf("3. Download the generated favicon.ico\n")
			return
		}
		r.printf("✗ generation failed: %v\n", err)
		r.printf("\nAlternative: use an online tool\n")
		r.printf("1. Visit https://favicon.io/ or https://realfavicongenerator.net/\n")
		r.printf("2. Upload favicon.svg\n")
		r.printf("3. Download the generated favicon.ico\n")
		return
	}

	png, icoFile := result.Artifacts[0], result.Artifacts[1]
	r.printf("✓ %s generated\n", png.Name)
	r.printf("✓ %s generated (contains %s)\n", icoFile.Name, sizeList(result.IcoSizes))

	r.printf("\n✓ favicon generation complete\n")
	r.printf("Files:\n")
	r.printf("  - %s (SVG, maintained by hand, modern browsers)\n", filepath.Base(result.SVG.Path))
	r.printf("  - %s (PNG)\n", png.Name)
	r.printf("  - %s (ICO, legacy browsers)\n", icoFile.Name)

	switch {
	case !result.SVG.Present:
		r.printf("\n! %s not found; it is not generated and must be added by hand\n", result.SVG.Path)
	case result.SVG.Err != nil:
		r.printf("\n! %s could not be rendered: %v\n", result.SVG.Path, result.SVG.Err)
	}
}

func (r *Reporter) printInstallHint(renderer string) {
	r.printf("✗ drawing renderer %q is not available in this build\n", renderer)
	if module, ok := canvas.KnownModules[renderer]; ok {
		r.printf("Install it with: go get %s\n", module)
		r.printf("then rebuild with the renderers package imported\n")
		return
	}
	r.printf("Known renderers: %s\n", strings.Join(knownRenderers(), ", "))
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func knownRenderers() []string {
	names := make([]string, 0, len(canvas.KnownModules))
	for name := range canvas.KnownModules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sizeList(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%dx%d", s, s)
	}
	return strings.Join(parts, ", ")
}
