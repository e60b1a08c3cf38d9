package cli

import (
	"errors"

	"github.com/yaklabco/goaoc/pkg/runner"
)

// Exit codes for goaoc.
const (
	// ExitSuccess indicates every selected puzzle was solved or skipped.
	ExitSuccess = 0

	// ExitPuzzleFailure indicates at least one puzzle failed to solve.
	ExitPuzzleFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrPuzzlesFailed is returned when a run completes with failed puzzles.
// The failures themselves have already been reported.
var ErrPuzzlesFailed = errors.New("one or more puzzles failed")

// ExitError attaches a process exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// withExitCode wraps err with code. A nil err stays nil.
func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitPuzzleFailure
	}
	return ExitSuccess
}

// ExitCodeFromError maps an error returned by the root command to an exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitPuzzleFailure
}
