package configloader

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/yaklabco/goaoc/pkg/config"
)

// envPrefix is the prefix for all goaoc environment variables.
const envPrefix = "GOAOC"

// EnvConfig holds environment-based configuration.
// Field names map to GOAOC_-prefixed variables with words split by
// underscores (InputDir reads GOAOC_INPUT_DIR). Empty values leave the
// loaded configuration unchanged.
type EnvConfig struct {
	// InputDir overrides input_dir.
	// Env: GOAOC_INPUT_DIR
	InputDir string `split_words:"true"`

	// InputPattern overrides input_pattern.
	// Env: GOAOC_INPUT_PATTERN
	InputPattern string `split_words:"true"`

	// LogLevel overrides log_level.
	// Env: GOAOC_LOG_LEVEL
	LogLevel string `split_words:"true"`

	// Format sets the output format.
	// Env: GOAOC_FORMAT
	Format string

	// Jobs sets the number of parallel workers (0 = auto).
	// Env: GOAOC_JOBS
	Jobs int

	// SkipMissing skips puzzles without an input file.
	// Env: GOAOC_SKIP_MISSING
	SkipMissing bool `split_words:"true"`

	// Disable is a comma-separated list of puzzle keys to disable.
	// Env: GOAOC_DISABLE
	Disable []string
}

// ReadEnv reads GOAOC_* variables from the process environment.
func ReadEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return EnvConfig{}, fmt.Errorf("read %s_* environment: %w", envPrefix, err)
	}
	return env, nil
}

// Apply overlays the set environment values onto cfg.
func (e EnvConfig) Apply(cfg *config.Config) {
	if cfg == nil {
		return
	}

	if e.InputDir != "" {
		cfg.InputDir = e.InputDir
	}
	if e.InputPattern != "" {
		cfg.InputPattern = e.InputPattern
	}
	if e.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(e.LogLevel)
	}
	if e.Format != "" {
		cfg.Format = config.OutputFormat(strings.ToLower(e.Format))
	}
	if e.Jobs != 0 {
		cfg.Jobs = e.Jobs
	}
	if e.SkipMissing {
		cfg.SkipMissing = true
	}

	if len(e.Disable) > 0 && cfg.Puzzles == nil {
		cfg.Puzzles = make(map[string]config.PuzzleConfig)
	}
	for _, key := range e.Disable {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		disabled := false
		pc := cfg.Puzzles[key]
		pc.Enabled = &disabled
		cfg.Puzzles[key] = pc
	}
}

// LoadFromEnv applies GOAOC_* environment overrides to the configuration.
func LoadFromEnv(cfg *config.Config) error {
	env, err := ReadEnv()
	if err != nil {
		return err
	}
	env.Apply(cfg)
	return nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set in the environment are not overridden. An empty
// path is a no-op.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOAOC_INPUT_DIR":     "Directory holding puzzle inputs",
		"GOAOC_INPUT_PATTERN": "Input file pattern under the input directory",
		"GOAOC_LOG_LEVEL":     "Log level: debug, info, warn, or error",
		"GOAOC_FORMAT":        "Output format: text, table, json, or summary",
		"GOAOC_JOBS":          "Number of parallel workers (0 = auto)",
		"GOAOC_SKIP_MISSING":  "Skip puzzles without input: true or false",
		"GOAOC_DISABLE":       "Comma-separated puzzle IDs or names to disable",
	}
}
