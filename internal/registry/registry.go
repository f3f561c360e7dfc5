// Package registry provides a global registry for world factories.
// Built-in worlds register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raycast/internal/world"
)

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID   string
	Name string
}

// Factory builds a fresh Level instance. Each call returns an independent
// grid so one session's edits never leak into another.
type Factory func() (*world.Level, error)

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a world factory to the registry.
// Typically called from a package's init() function.
// Panics if a world with the same ID is already registered.
func Register(id, name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", id))
	}

	factories[id] = f
	names[id] = name
}

// List returns information about all registered worlds, sorted by ID.
func List() []WorldInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WorldInfo, 0, len(factories))
	for id := range factories {
		result = append(result, WorldInfo{
			ID:   id,
			Name: names[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a fresh copy of the world by its ID.
// Returns an error if the world ID is not registered.
func Create(id string) (*world.Level, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown world %q", id)
	}

	return f()
}

// Exists checks if a world with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
