package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/goaoc/pkg/runner"
)

const summaryDividerWidth = 40

// FormatDuration renders a solver duration with a precision that suits its
// magnitude, e.g. "850µs", "12.4ms" or "1.27s".
func FormatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0s"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(100 * time.Microsecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

// plural returns word with an "s" suffix unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 puzzles solved, 1 skipped, 1 failed in 12.4ms".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.Selected == 0 {
		return s.Dim.Render("No puzzles selected") + "\n"
	}

	parts := []string{
		s.Success.Render(fmt.Sprintf("%d %s solved", stats.Solved, plural(stats.Solved, "puzzle"))),
	}
	if stats.Skipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.Skipped)))
	}
	if stats.Errored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.Errored)))
	}

	return strings.Join(parts, ", ") + s.Dim.Render(" in "+FormatDuration(stats.Total)) + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Puzzles selected:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.Selected)) + "\n")
	builder.WriteString("  Solved:            " +
		s.Success.Render(strconv.Itoa(stats.Solved)) + "\n")

	if stats.Skipped > 0 {
		builder.WriteString("  Skipped:           " +
			s.Warning.Render(strconv.Itoa(stats.Skipped)) + "\n")
	}
	if stats.Errored > 0 {
		builder.WriteString("  Failed:            " +
			s.Failure.Render(strconv.Itoa(stats.Errored)) + "\n")
	}

	builder.WriteString("  Solver time:       " +
		s.SummaryValue.Render(FormatDuration(stats.Total)) + "\n")

	builder.WriteString("\n")

	switch {
	case stats.Errored > 0:
		builder.WriteString(s.Failure.Render("Run failed"))
	case stats.Skipped > 0:
		builder.WriteString(s.Warning.Render("Run completed with skipped puzzles"))
	default:
		builder.WriteString(s.Success.Render("All puzzles solved"))
	}
	builder.WriteString("\n")

	return builder.String()
}
