package puzzle

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered puzzles.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]Puzzle
	byName  map[string]Puzzle
	aliases map[string]string // alias -> canonical ID
}

// NewRegistry creates an empty puzzle registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]Puzzle),
		byName:  make(map[string]Puzzle),
		aliases: make(map[string]string),
	}
}

// Register adds a puzzle to the registry.
// If a puzzle with the same ID already exists, it is replaced.
func (r *Registry) Register(p Puzzle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID()] = p
	r.byName[p.Name()] = p
}

// RegisterAlias maps an alias to a canonical puzzle ID (e.g., "seeds" -> "2023-05").
func (r *Registry) RegisterAlias(alias, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = id
}

// Get retrieves a puzzle by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Puzzle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.byID[key]; ok {
		return p, true
	}
	if p, ok := r.byName[key]; ok {
		return p, true
	}
	return nil, false
}

// Resolve returns the canonical ID and puzzle for a given key.
// The key can be a puzzle ID in any form ParseID accepts, a name, or an alias.
// Returns (id, puzzle, found).
func (r *Registry) Resolve(key string) (string, Puzzle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.byID[key]; ok {
		return p.ID(), p, true
	}
	if p, ok := r.byName[key]; ok {
		return p.ID(), p, true
	}
	if targetID, ok := r.aliases[key]; ok {
		if p, ok := r.byID[targetID]; ok {
			return p.ID(), p, true
		}
	}
	if year, day, err := ParseID(key); err == nil {
		if p, ok := r.byID[FormatID(year, day)]; ok {
			return p.ID(), p, true
		}
	}
	return "", nil, false
}

// Puzzles returns all registered puzzles sorted by ID.
func (r *Registry) Puzzles() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Puzzle, 0, len(r.byID))
	for _, p := range r.byID {
		result = append(result, p)
	}

	slices.SortFunc(result, func(a, b Puzzle) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered puzzle IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in solvers.
// Solvers register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for solver registration
var DefaultRegistry = NewRegistry()
