// Package registry maps game IDs to factories so the platform layer can
// build a game without importing its package directly. Games register
// themselves from init().
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

// Game is the contract between a game and the platform.
// Implementations hold pure logic; input mapping, timing and terminal output
// belong to the platform.
type Game interface {
	// ID returns the identifier used by the CLI and the score table.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new run. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score and end-of-run flags.
	State() core.GameState
}

// ErrRunNotFinished is returned by Summary while the run is still in progress.
var ErrRunNotFinished = errors.New("run not finished")

// RunSummary describes a finished run for the run history.
type RunSummary struct {
	RunID     uuid.UUID
	LevelID   string
	Score     int
	Ticks     uint64
	Destroyed int    // creatures destroyed
	Outcome   string // "won" or "lost"
}

// Summarizer is implemented by games that keep a run history.
type Summarizer interface {
	Summary() (RunSummary, error)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
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

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
