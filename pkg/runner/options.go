// Package runner solves selected puzzles concurrently and collects the outcomes.
package runner

import (
	"io"

	"github.com/yaklabco/goaoc/pkg/config"
)

// Options controls a solve run.
type Options struct {
	// Puzzles are the requested puzzle keys: IDs, names, aliases or glob
	// patterns over IDs and names. Empty means every enabled puzzle.
	Puzzles []string

	// WorkingDir is the base directory used to resolve relative input paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// InputDir is the directory inputs are read from.
	// Defaults to config.DefaultInputDir.
	InputDir string

	// InputPattern names an input file under InputDir.
	// Defaults to config.DefaultInputPattern.
	InputPattern string

	// Inputs maps canonical puzzle IDs to explicit input paths. "-" reads
	// from Stdin. These take precedence over per-puzzle config overrides.
	Inputs map[string]string

	// SkipMissing reports puzzles whose input file does not exist as
	// skipped instead of errored.
	SkipMissing bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Stdin supplies input for puzzles whose input path is "-".
	Stdin io.Reader

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// OptionsFromConfig returns Options populated from a resolved configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		InputDir:     cfg.InputDir,
		InputPattern: cfg.InputPattern,
		SkipMissing:  cfg.SkipMissing,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}
}

func (o Options) effectiveInputDir() string {
	if o.InputDir == "" {
		return config.DefaultInputDir
	}
	return o.InputDir
}

func (o Options) effectiveInputPattern() string {
	if o.InputPattern == "" {
		return config.DefaultInputPattern
	}
	return o.InputPattern
}
