package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/goaoc/pkg/runner"
)

// JSON status values.
const (
	statusSolved  = "solved"
	statusSkipped = "skipped"
	statusError   = "error"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string       `json:"version"`
	Puzzles []JSONPuzzle `json:"puzzles"`
	Summary JSONSummary  `json:"summary"`
}

// JSONPuzzle represents a single puzzle's outcome.
// Answers are only present for solved puzzles, so a zero answer is still
// distinguishable from a missing one.
type JSONPuzzle struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	Input       string  `json:"input,omitempty"`
	InputSHA256 string  `json:"input_sha256,omitempty"`
	PartOne     *uint64 `json:"part_one,omitempty"`
	PartTwo     *uint64 `json:"part_two,omitempty"`
	DurationNS  int64   `json:"duration_ns"`
	Error       string  `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Selected   int   `json:"selected"`
	Solved     int   `json:"solved"`
	Skipped    int   `json:"skipped"`
	Errored    int   `json:"errored"`
	DurationNS int64 `json:"duration_ns"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := BuildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Errored, nil
}

// BuildJSONOutput converts a run result to its JSON document.
func BuildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Puzzles: make([]JSONPuzzle, 0),
	}

	if result == nil {
		return output
	}

	output.Puzzles = make([]JSONPuzzle, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		entry := JSONPuzzle{
			ID:          outcome.ID,
			Name:        outcome.Name,
			Title:       outcome.Title,
			Input:       outcome.InputPath,
			InputSHA256: outcome.InputHash,
			DurationNS:  outcome.Duration.Nanoseconds(),
		}

		switch {
		case outcome.Error != nil:
			entry.Status = statusError
			entry.Error = outcome.Error.Error()
		case outcome.Skipped:
			entry.Status = statusSkipped
		default:
			entry.Status = statusSolved
			partOne, partTwo := outcome.Answer.PartOne, outcome.Answer.PartTwo
			entry.PartOne = &partOne
			entry.PartTwo = &partTwo
		}

		output.Puzzles = append(output.Puzzles, entry)
	}

	output.Summary = JSONSummary{
		Selected:   result.Stats.Selected,
		Solved:     result.Stats.Solved,
		Skipped:    result.Stats.Skipped,
		Errored:    result.Stats.Errored,
		DurationNS: result.Stats.Total.Nanoseconds(),
	}

	return output
}
