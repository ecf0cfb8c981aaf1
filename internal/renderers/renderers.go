// Package renderers registers the available drawing backends with
// canvas.DefaultRegistry. Importing it is what makes drawing possible:
// a binary built without it reports canvas.ErrRendererUnavailable.
package renderers

import (
	"fmt"

	"github.com/jo-hoe/goicons/internal/canvas"
)

func errTooFewPoints(n int) error {
	return fmt.Errorf("polygon needs at least 3 points, got %d", n)
}

func init() {
	if err := canvas.DefaultRegistry.Register(RasterxName, NewRasterxCanvas); err != nil {
		panic(fmt.Sprintf("failed to register %s renderer: %v", RasterxName, err))
	}
	if err := canvas.DefaultRegistry.Register(GGName, NewGGCanvas); err != nil {
		panic(fmt.Sprintf("failed to register %s renderer: %v", GGName, err))
	}
}
