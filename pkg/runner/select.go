package runner

import (
	"cmp"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// ErrUnknownPuzzle is returned when a requested key matches no puzzle.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// Select resolves the requested puzzle keys against the registry.
// With no keys, every puzzle enabled in opts.Config is selected. Named
// puzzles run even when disabled in configuration. The result is
// deduplicated and ordered by ID.
func Select(registry *puzzle.Registry, opts Options) ([]puzzle.Puzzle, error) {
	if len(opts.Puzzles) == 0 {
		var selected []puzzle.Puzzle
		for _, p := range registry.Puzzles() {
			if opts.Config.PuzzleEnabled(p.ID()) {
				selected = append(selected, p)
			}
		}
		return selected, nil
	}

	seen := make(map[string]puzzle.Puzzle)
	var unknown []error

	for _, key := range opts.Puzzles {
		key = strings.TrimSpace(key)

		if isPattern(key) {
			matched := matchPattern(registry, key)
			if len(matched) == 0 {
				unknown = append(unknown, fmt.Errorf("%w: no puzzle matches %q", ErrUnknownPuzzle, key))
			}
			for _, p := range matched {
				seen[p.ID()] = p
			}
			continue
		}

		id, p, ok := registry.Resolve(key)
		if !ok {
			unknown = append(unknown, fmt.Errorf("%w: %q", ErrUnknownPuzzle, key))
			continue
		}
		seen[id] = p
	}

	if len(unknown) > 0 {
		return nil, errors.Join(unknown...)
	}

	selected := make([]puzzle.Puzzle, 0, len(seen))
	for _, p := range seen {
		selected = append(selected, p)
	}
	slices.SortFunc(selected, func(a, b puzzle.Puzzle) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return selected, nil
}

func isPattern(key string) bool {
	return strings.ContainsAny(key, "*?[")
}

// matchPattern returns puzzles whose ID or name matches a glob such as
// "2023-*" or "*-conundrum". Malformed patterns match nothing.
func matchPattern(registry *puzzle.Registry, pattern string) []puzzle.Puzzle {
	var out []puzzle.Puzzle
	for _, p := range registry.Puzzles() {
		if matchGlob(p.ID(), pattern) || matchGlob(p.Name(), pattern) {
			out = append(out, p)
		}
	}
	return out
}

func matchGlob(s, pattern string) bool {
	matched, err := filepath.Match(pattern, s)
	return err == nil && matched
}
