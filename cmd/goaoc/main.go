// Package main is the entry point for the goaoc CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/goaoc/internal/cli"
	"github.com/yaklabco/goaoc/internal/logging"

	// Import solutions package to register built-in solvers via init().
	_ "github.com/yaklabco/goaoc/pkg/puzzle/solutions"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Failed puzzles are already reported; the error only sets the exit code.
		if !errors.Is(err, cli.ErrPuzzlesFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
