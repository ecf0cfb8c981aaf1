package canvas

import (
	"errors"
	"fmt"
	"sort"
)

// ErrRendererUnavailable reports that the requested drawing backend is not
// compiled into the running binary.
var ErrRendererUnavailable = errors.New("drawing renderer unavailable")

// Factory creates a transparent canvas of size×size pixels
type Factory func(size int) (Canvas, error)

// Registry maps renderer names to canvas factories
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty renderer registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a renderer factory under the given name
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("renderer name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("renderer factory cannot be nil")
	}
	if r.IsRegistered(name) {
		return fmt.Errorf("renderer %s is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// New creates a canvas from the named renderer. An unknown name yields an
// error wrapping ErrRendererUnavailable.
func (r *Registry) New(name string, size int) (Canvas, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrRendererUnavailable, name, r.Names())
	}
	if size <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %d", size)
	}

	c, err := factory(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s canvas: %w", name, err)
	}
	return c, nil
}

// IsRegistered reports whether a renderer with the given name is registered
func (r *Registry) IsRegistered(name string) bool {
	_, exists := r.factories[name]
	return exists
}

// Names returns the registered renderer names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is filled by the renderers package on import
var DefaultRegistry = NewRegistry()

// KnownModules lists the module that provides each renderer, whether or not
// it is compiled in, so install hints can name it.
var KnownModules = map[string]string{
	"rasterx": "github.com/srwiley/rasterx",
	"gg":      "github.com/gogpu/gg",
}
