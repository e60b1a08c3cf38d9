package runner

import (
	"time"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// Outcome is the result of solving one puzzle.
type Outcome struct {
	// ID is the canonical puzzle ID.
	ID string

	// Name is the puzzle's short name.
	Name string

	// Title is the published puzzle title.
	Title string

	// InputPath is the input the puzzle was solved from, or "-" for stdin.
	InputPath string

	// InputHash is the hex SHA-256 of the input. Empty when nothing was read.
	InputHash string

	// Answer holds both parts. It is zero unless the puzzle was solved.
	Answer puzzle.Answer

	// Duration is the time spent in the solver.
	Duration time.Duration

	// Skipped is set when the input was missing and SkipMissing was on.
	Skipped bool

	// Error is set if the puzzle could not be solved.
	Error error
}

// Solved reports whether the outcome carries an answer.
func (o Outcome) Solved() bool {
	return !o.Skipped && o.Error == nil
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Selected is the number of puzzles selected to run.
	Selected int

	// Solved is the number of puzzles that produced an answer.
	Solved int

	// Skipped is the number of puzzles skipped for a missing input.
	Skipped int

	// Errored is the number of puzzles that failed.
	Errored int

	// Total is the summed solver time.
	Total time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Outcomes are ordered by puzzle ID.
	Outcomes []Outcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any puzzle errored.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Errored > 0
}

// accumulate updates the result with a puzzle outcome.
func (r *Result) accumulate(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	r.Stats.Total += outcome.Duration

	switch {
	case outcome.Error != nil:
		r.Stats.Errored++
	case outcome.Skipped:
		r.Stats.Skipped++
	default:
		r.Stats.Solved++
	}
}
