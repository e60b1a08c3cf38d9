// Package config defines core configuration types for goaoc.
// These types are pure data structures with no dependency on how they are loaded.
package config

// OutputFormat specifies how solve results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// Default values applied by NewConfig.
const (
	DefaultInputDir     = "inputs"
	DefaultInputPattern = "{year}/day{day}.txt"
	DefaultLogLevel     = "info"
)

// PuzzleConfig holds per-puzzle configuration.
type PuzzleConfig struct {
	// Enabled controls whether the puzzle runs when no puzzles are named.
	// Nil means enabled.
	Enabled *bool `mapstructure:"enabled" yaml:"enabled,omitempty"`

	// Input overrides the input path for this puzzle. Relative paths are
	// resolved against the working directory.
	Input *string `mapstructure:"input" yaml:"input,omitempty"`
}

// IsEnabled reports whether the puzzle is enabled.
func (pc PuzzleConfig) IsEnabled() bool {
	return pc.Enabled == nil || *pc.Enabled
}

// Config is the root configuration structure for goaoc.
type Config struct {
	// InputDir is the directory puzzle inputs are read from.
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`

	// InputPattern names an input file relative to InputDir. It may use the
	// placeholders {year}, {day}, {day1}, {id} and {name}.
	InputPattern string `mapstructure:"input_pattern" yaml:"input_pattern"`

	// LogLevel is the default log level: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// Puzzles contains per-puzzle configuration keyed by puzzle ID.
	Puzzles map[string]PuzzleConfig `mapstructure:"puzzles" yaml:"puzzles"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// SkipMissing reports puzzles without an input file as skipped instead
	// of failed.
	SkipMissing bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		InputDir:     DefaultInputDir,
		InputPattern: DefaultInputPattern,
		LogLevel:     DefaultLogLevel,
		Puzzles:      make(map[string]PuzzleConfig),
		Format:       FormatText,
		Jobs:         0, // 0 means use GOMAXPROCS
	}
}

// PuzzleEnabled reports whether the puzzle with the given ID is enabled.
func (c *Config) PuzzleEnabled(id string) bool {
	if c == nil {
		return true
	}
	return c.Puzzles[id].IsEnabled()
}

// PuzzleInput returns the configured input override for a puzzle, if any.
func (c *Config) PuzzleInput(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	pc, ok := c.Puzzles[id]
	if !ok || pc.Input == nil {
		return "", false
	}
	return *pc.Input, true
}
