// Package registry keeps the set of playable games. Games register a
// factory from init(), so front ends can list and start them by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/dasher-arcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games hold pure simulation logic; front ends map input, keep time and draw.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// scores database ("axe", "dasher").
	ID() string

	// Title is the display name ("Dapper Dasher").
	Title() string

	// Reset starts a new playthrough, reloading tuning as needed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by in.Dt seconds.
	Step(in core.InputFrame) core.StepResult

	// Scene describes the current frame in world units.
	Scene() *core.DrawList

	// Render draws the frame, plus a terminal HUD, into a character screen.
	Render(dst *core.Screen)

	// State reports score, pause and outcome.
	State() core.GameState
}

// Describer is implemented by games that can explain their controls.
type Describer interface {
	Help() string
}

// GameInfo describes a registered game without creating it.
type GameInfo struct {
	ID    string
	Title string
	Help  string // One-line controls summary, may be empty
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Help = d.Help()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
