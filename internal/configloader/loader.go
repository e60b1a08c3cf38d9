// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/yaklabco/goaoc/pkg/config"
	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables, including .env files.
	IgnoreEnv bool

	// IgnoreDotEnv skips loading the working directory's .env file.
	IgnoreDotEnv bool

	// Registry resolves puzzle keys. Defaults to puzzle.DefaultRegistry.
	Registry *puzzle.Registry

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOAOC_*), then .env in the working directory
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.goaoc.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/goaoc/config.yaml)
//  6. System config (/etc/goaoc/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	registry := opts.Registry
	if registry == nil {
		registry = puzzle.DefaultRegistry
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		// Users may key puzzles by name or alias. Each layer is stored under
		// canonical IDs before merging so precedence applies per puzzle.
		normalizePuzzleKeys(fileCfg, registry, result)
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if !opts.IgnoreDotEnv {
			if err := LoadDotEnv(paths.DotEnv); err != nil {
				return nil, err
			}
		}
		envCfg := &config.Config{}
		if err := LoadFromEnv(envCfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		normalizePuzzleKeys(envCfg, registry, result)
		cfg = merge(cfg, envCfg)
	}

	if opts.CLIConfig != nil {
		cliCfg := opts.CLIConfig.Clone()
		normalizePuzzleKeys(cliCfg, registry, result)
		cfg = merge(cfg, cliCfg)
	}

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// normalizePuzzleKeys converts puzzle names and aliases in one layer to
// canonical IDs. Entries that resolve to the same puzzle are merged field by
// field; on a conflict the entry keyed by the ID wins, then the
// lexically later key. Each such collision is recorded as a warning.
func normalizePuzzleKeys(cfg *config.Config, registry *puzzle.Registry, result *LoadResult) {
	if len(cfg.Puzzles) == 0 {
		return
	}

	type entry struct {
		key string
		id  string
	}

	entries := make([]entry, 0, len(cfg.Puzzles))
	for key := range cfg.Puzzles {
		id, _, found := registry.Resolve(key)
		if !found {
			// Unknown puzzle: validation warns about it.
			id = key
		}
		entries = append(entries, entry{key: key, id: id})
	}

	// Later entries override earlier ones, so canonical keys go last.
	slices.SortFunc(entries, func(a, b entry) int {
		if aID, bID := a.key == a.id, b.key == b.id; aID != bID {
			if aID {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.key, b.key)
	})

	normalized := make(map[string]config.PuzzleConfig, len(cfg.Puzzles))
	seenKeys := make(map[string]string) // canonical ID -> first key
	for _, e := range entries {
		if firstKey, exists := seenKeys[e.id]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate puzzle configuration: %q and %q both refer to %s; merging, %q wins on conflicts",
					firstKey, e.key, e.id, e.key))
		} else {
			seenKeys[e.id] = e.key
		}
		normalized[e.id] = mergePuzzle(normalized[e.id], cfg.Puzzles[e.key])
	}

	cfg.Puzzles = normalized
}
