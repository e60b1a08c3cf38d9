package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/goaoc/pkg/fsutil"
	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// ErrInvalidPattern is returned for input patterns with unknown placeholders.
var ErrInvalidPattern = errors.New("invalid input pattern")

// placeholderRe matches {name} placeholders in an input pattern.
//
//nolint:gochecknoglobals // Compiled once.
var placeholderRe = regexp.MustCompile(`\{[^{}]*\}`)

// knownPlaceholders lists the placeholders ExpandPattern substitutes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownPlaceholders = []string{"{year}", "{day}", "{day1}", "{id}", "{name}"}

// ValidatePattern checks that pattern is non-empty and uses only known
// placeholders.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: pattern is empty", ErrInvalidPattern)
	}
	for _, ph := range placeholderRe.FindAllString(pattern, -1) {
		if !slices.Contains(knownPlaceholders, ph) {
			return fmt.Errorf("%w: unknown placeholder %s in %q", ErrInvalidPattern, ph, pattern)
		}
	}
	return nil
}

// ExpandPattern substitutes puzzle metadata into an input pattern:
// {year}, {day} (zero-padded), {day1} (unpadded), {id} and {name}.
func ExpandPattern(pattern string, p puzzle.Puzzle) (string, error) {
	if err := ValidatePattern(pattern); err != nil {
		return "", err
	}
	r := strings.NewReplacer(
		"{year}", strconv.Itoa(p.Year()),
		"{day}", fmt.Sprintf("%02d", p.Day()),
		"{day1}", strconv.Itoa(p.Day()),
		"{id}", p.ID(),
		"{name}", p.Name(),
	)
	return r.Replace(pattern), nil
}

// ResolveInput returns the input path for a puzzle. An explicit entry in
// opts.Inputs wins over the per-puzzle config override, which wins over
// InputPattern under InputDir. Relative paths are resolved against the
// working directory; "-" is returned unchanged.
func ResolveInput(p puzzle.Puzzle, opts Options) (string, error) {
	path, ok := opts.Inputs[p.ID()]
	if !ok {
		path, ok = opts.Config.PuzzleInput(p.ID())
	}
	if !ok {
		name, err := ExpandPattern(opts.effectiveInputPattern(), p)
		if err != nil {
			return "", err
		}
		path = filepath.Join(opts.effectiveInputDir(), filepath.FromSlash(name))
	}

	if path == fsutil.StdinPath || filepath.IsAbs(path) {
		return path, nil
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(workDir, path), nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}
