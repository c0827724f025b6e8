// Package registry maps game IDs to factories. A game package registers
// itself from init(); the CLI lists and creates games by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/heart-quest/internal/config"
	"github.com/vovakirdan/heart-quest/internal/core"
)

// Game is a playable game. Implementations hold pure simulation state;
// presenters own input, timing and output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "hearts").
	// Used for CLI flags and log fields.
	ID() string

	// Title returns a human-readable name for window titles and logs.
	Title() string

	// WorldSize returns the playfield dimensions in world units.
	// Presenters map this area onto their pixels or cells.
	WorldSize() (w, h float64)

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides the tick rate, RNG seed and clock.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Left, Up, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state onto the canvas.
	// The canvas is pre-cleared and sized by the presenter; Render must not
	// change simulation state.
	Render(dst *core.Canvas)

	// State returns the current game state (score, game over, won).
	State() core.GameState
}

// Themeable is implemented by games that draw with the display palette.
type Themeable interface {
	SetPalette(config.Palette)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	titles[id] = f().Title()
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}
