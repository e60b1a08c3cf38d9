package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/goaoc/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // PUZZLE, TITLE, PART ONE, PART TWO, TIME
	minIDWidth       = 7
	minTitleWidth    = 12
	minAnswerWidth   = 8
	minTimeWidth     = 6
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	noAnswer         = "-"
)

// RowStatus classifies a table row.
type RowStatus int

// Row statuses.
const (
	RowSolved RowStatus = iota
	RowSkipped
	RowFailed
)

// TableRow represents a single row in the answer table.
type TableRow struct {
	ID       string
	Title    string
	PartOne  string
	PartTwo  string
	Duration string
	Status   RowStatus
	Detail   string
}

// OutcomeToTableRow converts a puzzle outcome to a table row.
func OutcomeToTableRow(outcome runner.Outcome) TableRow {
	row := TableRow{
		ID:       outcome.ID,
		Title:    outcome.Title,
		PartOne:  noAnswer,
		PartTwo:  noAnswer,
		Duration: noAnswer,
	}

	switch {
	case outcome.Error != nil:
		row.Status = RowFailed
		row.Detail = outcome.Error.Error()
	case outcome.Skipped:
		row.Status = RowSkipped
		row.Detail = "no input: " + outcome.InputPath
	default:
		row.Status = RowSolved
		row.PartOne = strconv.FormatUint(outcome.Answer.PartOne, 10)
		row.PartTwo = strconv.FormatUint(outcome.Answer.PartTwo, 10)
		row.Duration = FormatDuration(outcome.Duration)
	}

	return row
}

// TableFormatter formats puzzle outcomes as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type columnWidths struct {
	id      int
	title   int
	partOne int
	partTwo int
	time    int
}

// FormatTable formats runner results as a styled table. Rows for failed and
// skipped puzzles are followed by their details below the table.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Outcomes) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		rows = append(rows, OutcomeToTableRow(outcome))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, row := range rows {
		// A light separator marks each change of event year.
		if i > 0 && yearOf(row.ID) != yearOf(rows[i-1].ID) {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	if details := t.formatDetails(rows); details != "" {
		builder.WriteString(details)
	}

	if t.hasUnsolved(rows) {
		builder.WriteString(t.formatLegend())
		builder.WriteString("\n")
	}

	return builder.String()
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		id:      minIDWidth,
		title:   minTitleWidth,
		partOne: minAnswerWidth,
		partTwo: minAnswerWidth,
		time:    minTimeWidth,
	}

	for _, row := range rows {
		widths.id = max(widths.id, len(row.ID))
		widths.title = max(widths.title, len(row.Title))
		widths.partOne = max(widths.partOne, len(row.PartOne))
		widths.partTwo = max(widths.partTwo, len(row.PartTwo))
		widths.time = max(widths.time, len(row.Duration))
	}

	// Only the title shrinks; answers are never truncated.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.title = max(minTitleWidth, widths.title-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.id + widths.title + widths.partOne + widths.partTwo + widths.time +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s ",
		widths.id, "PUZZLE",
		widths.title, "TITLE",
		widths.partOne, "PART ONE",
		widths.partTwo, "PART TWO",
		widths.time, "TIME",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

// formatRow formats a single table row with status-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s ",
		widths.id, row.ID,
		widths.title, truncateString(row.Title, widths.title),
		widths.partOne, row.PartOne,
		widths.partTwo, row.PartTwo,
		widths.time, row.Duration,
	)
	return t.getRowStyle(row.Status).Render(content)
}

// formatDetails lists why puzzles were skipped or failed.
func (t *TableFormatter) formatDetails(rows []TableRow) string {
	var builder strings.Builder
	for _, row := range rows {
		if row.Status == RowSolved {
			continue
		}
		builder.WriteString(" ")
		builder.WriteString(t.styles.PuzzleID.Render(row.ID))
		builder.WriteString(": ")
		builder.WriteString(t.getRowStyle(row.Status).Render(row.Detail))
		builder.WriteString("\n")
	}
	return builder.String()
}

func (t *TableFormatter) hasUnsolved(rows []TableRow) bool {
	for _, row := range rows {
		if row.Status != RowSolved {
			return true
		}
	}
	return false
}

// getRowStyle returns the appropriate style for a row status.
func (t *TableFormatter) getRowStyle(status RowStatus) lipgloss.Style {
	switch status {
	case RowFailed:
		return t.styles.TableErrorRow
	case RowSkipped:
		return t.styles.TableSkipRow
	default:
		return lipgloss.NewStyle()
	}
}

// formatLegend formats the legend explaining row colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(fmt.Sprintf(" Legend: %s = no answer", noAnswer))
	}

	failedSample := t.styles.TableErrorRow.Render(" failed ")
	skippedSample := t.styles.TableSkipRow.Render(" skipped ")

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s  %s", failedSample, skippedSample),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d %s", stats.Selected, plural(stats.Selected, "puzzle"))}

	if stats.Solved > 0 {
		parts = append(parts, t.styles.Success.Render(fmt.Sprintf("%d solved", stats.Solved)))
	}
	if stats.Skipped > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d skipped", stats.Skipped)))
	}
	if stats.Errored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", stats.Errored)))
	}
	parts = append(parts, t.styles.Dim.Render(FormatDuration(stats.Total)))

	return " " + strings.Join(parts, " | ")
}

// yearOf returns the year prefix of a canonical puzzle ID.
func yearOf(id string) string {
	year, _, _ := strings.Cut(id, "-")
	return year
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
