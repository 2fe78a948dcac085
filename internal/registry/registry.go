// Package registry holds the factories of the games the platform can run.
// Games register themselves in init(), so the CLI and the TUI never import a
// game package directly for construction.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/destroyer/internal/core"
)

// Game is what the platform drives once per tick.
type Game interface {
	// ID returns a unique identifier, e.g. "destroyer".
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset (re)creates the simulation for the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step consumes the input gathered since the previous tick and advances
	// the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current state without advancing the simulation.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a registered game.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
