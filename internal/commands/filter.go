package commands

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

// DefaultFilter is the resampling filter used when none is configured.
// Catmull-Rom is the sharpest of the x/image kernels and closest to a
// Lanczos downscale at icon sizes.
const DefaultFilter = "catmullrom"

var filters = map[string]draw.Interpolator{
	"catmullrom":     draw.CatmullRom,
	"bilinear":       draw.BiLinear,
	"approxbilinear": draw.ApproxBiLinear,
	"nearest":        draw.NearestNeighbor,
}

// ParseFilter resolves a filter name to an x/image interpolator
func ParseFilter(name string) (draw.Interpolator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultFilter
	}
	interp, ok := filters[key]
	if !ok {
		return nil, fmt.Errorf("unknown resampling filter %q (supported: %s)", name, strings.Join(FilterNames(), ", "))
	}
	return interp, nil
}

// FilterNames lists the supported filter names in sorted order
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
