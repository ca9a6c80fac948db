// Package registry provides a global registry for ruleset factories.
// Rulesets register themselves in init() functions, allowing the platform
// to discover and apply them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Ruleset is a named bundle of policy and match-limit overrides.
// Rulesets contain pure configuration with no platform dependencies.
type Ruleset interface {
	// ID returns a unique identifier (e.g., "classic", "tournament").
	// Used for CLI commands and stored replays.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Summary is a one-line description shown in menus and listings.
	Summary() string

	// Apply returns base with the ruleset's overrides applied.
	Apply(base pong.Settings) pong.Settings
}

// RulesetInfo contains metadata about a registered ruleset.
type RulesetInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory is a function that creates a new instance of a ruleset.
type Factory func() Ruleset

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]RulesetInfo)
	mu        sync.RWMutex
)

// Register adds a ruleset factory to the registry.
// Typically called from an init() function.
// Panics if a ruleset with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: ruleset %q already registered", id))
	}

	factories[id] = f

	r := f()
	infos[id] = RulesetInfo{ID: id, Title: r.Title(), Summary: r.Summary()}
}

// List returns information about all registered rulesets, sorted by ID.
func List() []RulesetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RulesetInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a ruleset by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Ruleset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown ruleset %q", id)
	}

	return f(), nil
}

// Exists checks if a ruleset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
