// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Options are handed to a frontend when it starts.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Out     io.Writer // Where batch frontends print their result
}

// Frontend drives a game: it owns the clock, collects input and provides
// the renderer. The game itself contains pure logic.
type Frontend interface {
	// ID returns a unique identifier for this frontend (e.g., "tui", "window").
	// Used for CLI flags.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits, the run ends or ctx is cancelled.
	// Failing to acquire the rendering surface is returned as an error.
	Run(ctx context.Context, opts Options) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// Returns an error if the frontend ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
