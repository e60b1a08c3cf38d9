package reporter

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yaklabco/goaoc/internal/ui/pretty"
	"github.com/yaklabco/goaoc/pkg/runner"
)

// Table layout constants for summary output.
const (
	tableWidth   = 54
	yearColWidth = 6
	numColWidth  = 8
	timeColWidth = 12
)

// padRight pads a string to the given width in runes with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// padLeft pads a string to the given width in runes with spaces on the left.
// Durations carry a multi-byte "µ", so byte length would misalign columns.
func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// yearStats aggregates the outcomes of one event year.
type yearStats struct {
	year    string
	solved  int
	skipped int
	failed  int
	total   time.Duration
}

// aggregateByYear groups outcomes by the year prefix of their ID, in year order.
func aggregateByYear(outcomes []runner.Outcome) []yearStats {
	byYear := make(map[string]*yearStats)
	for _, outcome := range outcomes {
		year, _, _ := strings.Cut(outcome.ID, "-")
		stats, ok := byYear[year]
		if !ok {
			stats = &yearStats{year: year}
			byYear[year] = stats
		}

		stats.total += outcome.Duration
		switch {
		case outcome.Error != nil:
			stats.failed++
		case outcome.Skipped:
			stats.skipped++
		default:
			stats.solved++
		}
	}

	result := make([]yearStats, 0, len(byYear))
	for _, stats := range byYear {
		result = append(result, *stats)
	}
	slices.SortFunc(result, func(a, b yearStats) int {
		return strings.Compare(a.year, b.year)
	})
	return result
}

// SummaryReporter formats results as per-year totals without answers.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Outcomes) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No puzzles to solve."))
		return 0, nil
	}

	r.renderYearTable(aggregateByYear(result.Outcomes))
	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return failedCount(result), nil
}

func (r *SummaryReporter) renderYearTable(years []yearStats) {
	fmt.Fprintln(r.bw, r.styles.Bold.Render("Years Summary"))
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Pad first, then style.
	fmt.Fprintf(r.bw, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Year", yearColWidth)),
		r.styles.TableHeader.Render(padLeft("Solved", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Skipped", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Failed", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Time", timeColWidth)),
	)
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, year := range years {
		paddedYear := padRight(year.year, yearColWidth)
		var styledYear string
		switch {
		case year.failed > 0:
			styledYear = r.styles.TableErrorRow.Render(paddedYear)
		case year.skipped > 0:
			styledYear = r.styles.TableSkipRow.Render(paddedYear)
		default:
			styledYear = paddedYear
		}

		fmt.Fprintf(r.bw, "%s %s %s %s %s\n",
			styledYear,
			padLeft(strconv.Itoa(year.solved), numColWidth),
			padLeft(strconv.Itoa(year.skipped), numColWidth),
			padLeft(strconv.Itoa(year.failed), numColWidth),
			padLeft(pretty.FormatDuration(year.total), timeColWidth),
		)
	}
}
