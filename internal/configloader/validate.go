package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goaoc/internal/logging"
	"github.com/yaklabco/goaoc/pkg/config"
	"github.com/yaklabco/goaoc/pkg/puzzle"
	"github.com/yaklabco/goaoc/pkg/runner"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "puzzles.2023-05.input").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown puzzles).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
// Puzzle keys are checked against registry; a nil registry skips that check.
func Validate(cfg *config.Config, registry *puzzle.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: %s", cfg.Format, formatList()),
		})
	}

	if cfg.LogLevel != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "log_level",
				Value:   cfg.LogLevel,
				Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
			})
		}
	}

	if err := runner.ValidatePattern(cfg.InputPattern); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "input_pattern",
			Value:   cfg.InputPattern,
			Message: err.Error(),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validatePuzzles(cfg, registry, result)

	return result
}

// validatePuzzles checks per-puzzle configuration.
func validatePuzzles(cfg *config.Config, registry *puzzle.Registry, result *ValidationResult) {
	for key, pc := range cfg.Puzzles {
		if registry != nil {
			if _, _, ok := registry.Resolve(key); !ok {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   "puzzles." + key,
					Value:   key,
					Message: fmt.Sprintf("unknown puzzle %q; it will be ignored", key),
				})
			}
		}

		if pc.Input != nil && strings.TrimSpace(*pc.Input) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "puzzles." + key + ".input",
				Value:   *pc.Input,
				Message: "input must not be empty",
			})
		}
	}
}

func formatList() string {
	formats := config.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
