// Package registry provides a global registry for renderer factories.
// Renderers register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/platformer/internal/core"
)

// Options is passed to a renderer factory.
type Options struct {
	// Out receives the rendered output.
	Out io.Writer

	// Tiles is the original floor size.
	Tiles int

	// Cancel stops the running session. Interactive renderers call it when
	// the user quits; others may ignore it.
	Cancel context.CancelFunc
}

// RendererInfo contains metadata about a registered renderer.
type RendererInfo struct {
	Name  string
	Title string
}

// Factory creates a renderer. Renderers that hold resources should also
// implement io.Closer; callers close them after the session returns.
type Factory func(opts Options) (core.Renderer, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a renderer factory to the registry.
// Typically called from an init() function.
// Panics if a renderer with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: renderer %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns information about all registered renderers, sorted by name.
func List() []RendererInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RendererInfo, 0, len(factories))
	for name := range factories {
		result = append(result, RendererInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a renderer by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (core.Renderer, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown renderer %q", name)
	}

	return f(opts)
}

// Exists checks if a renderer with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
