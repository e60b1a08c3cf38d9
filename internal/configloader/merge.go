package configloader

import (
	"maps"

	"github.com/yaklabco/goaoc/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Puzzles: merged per puzzle and per field
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.InputDir != "" {
		result.InputDir = override.InputDir
	}
	if override.InputPattern != "" {
		result.InputPattern = override.InputPattern
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// false is the zero value, so only an explicit true propagates.
	if override.SkipMissing {
		result.SkipMissing = true
	}

	result.Puzzles = mergePuzzles(base.Puzzles, override.Puzzles)

	return &result
}

// mergePuzzles merges per-puzzle configuration; override's set fields win.
func mergePuzzles(base, override map[string]config.PuzzleConfig) map[string]config.PuzzleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.PuzzleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		result[key] = mergePuzzle(result[key], val)
	}

	return result
}

// mergePuzzle overlays the set fields of override onto base.
func mergePuzzle(base, override config.PuzzleConfig) config.PuzzleConfig {
	if override.Enabled != nil {
		base.Enabled = override.Enabled
	}
	if override.Input != nil {
		base.Input = override.Input
	}
	return base
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
