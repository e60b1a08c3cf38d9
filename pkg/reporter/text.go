package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/goaoc/internal/ui/pretty"
	"github.com/yaklabco/goaoc/pkg/runner"
)

// TextReporter formats results as styled terminal output, one block per puzzle.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Outcomes) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No puzzles to solve."))
		}
		return 0, nil
	}

	for _, outcome := range result.Outcomes {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("report: %w", err)
		}
		r.writeOutcome(outcome)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failedCount(result), nil
}

// writeOutcome writes the header line and answers or error for one puzzle.
func (r *TextReporter) writeOutcome(outcome runner.Outcome) {
	header := r.styles.PuzzleID.Render(outcome.ID) + " " + r.styles.Title.Render(outcome.Title)
	if outcome.Solved() && r.opts.ShowTimings {
		header += r.styles.Duration.Render(" (" + pretty.FormatDuration(outcome.Duration) + ")")
	}
	fmt.Fprintln(r.bw, header)

	switch {
	case outcome.Error != nil:
		fmt.Fprintf(r.bw, "  %s\n", r.styles.Error.Render("error: "+outcome.Error.Error()))
	case outcome.Skipped:
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Warning.Render("skipped:"),
			r.styles.Path.Render("no input at "+outcome.InputPath))
	default:
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Label.Render("part one:"),
			r.styles.Answer.Render(strconv.FormatUint(outcome.Answer.PartOne, 10)))
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Label.Render("part two:"),
			r.styles.Answer.Render(strconv.FormatUint(outcome.Answer.PartTwo, 10)))
	}
}
