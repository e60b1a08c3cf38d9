package pretty_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/internal/ui/pretty"
	"github.com/yaklabco/goaoc/pkg/puzzle"
	"github.com/yaklabco/goaoc/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Outcomes: []runner.Outcome{
			{
				ID:       "2022-01",
				Title:    "Calorie Counting",
				Answer:   puzzle.Answer{PartOne: 24000, PartTwo: 45000},
				Duration: 40 * time.Microsecond,
			},
			{
				ID:       "2023-05",
				Title:    "If You Give A Seed A Fertilizer",
				Answer:   puzzle.Answer{PartOne: 35, PartTwo: 46},
				Duration: 90 * time.Microsecond,
			},
			{ID: "2023-06", Title: "Wait For It", InputPath: "inputs/2023/day06.txt", Skipped: true},
			{ID: "2023-07", Title: "Broken", Error: errors.New("line 2: malformed puzzle input")},
		},
		Stats: runner.Stats{Selected: 4, Solved: 2, Skipped: 1, Errored: 1, Total: 130 * time.Microsecond},
	}
}

func TestOutcomeToTableRow(t *testing.T) {
	result := sampleResult()

	solved := pretty.OutcomeToTableRow(result.Outcomes[1])
	assert.Equal(t, pretty.RowSolved, solved.Status)
	assert.Equal(t, "35", solved.PartOne)
	assert.Equal(t, "46", solved.PartTwo)
	assert.Equal(t, "90µs", solved.Duration)

	skipped := pretty.OutcomeToTableRow(result.Outcomes[2])
	assert.Equal(t, pretty.RowSkipped, skipped.Status)
	assert.Equal(t, "-", skipped.PartOne)
	assert.Equal(t, "no input: inputs/2023/day06.txt", skipped.Detail)

	failed := pretty.OutcomeToTableRow(result.Outcomes[3])
	assert.Equal(t, pretty.RowFailed, failed.Status)
	assert.Contains(t, failed.Detail, "malformed")
}

func TestFormatTable(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)

	out := formatter.FormatTable(sampleResult())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)

	assert.Contains(t, lines[0], "PUZZLE")
	assert.Contains(t, lines[0], "PART ONE")
	assert.Contains(t, out, "24000")
	assert.Contains(t, out, "45000")
	assert.Contains(t, out, "If You Give A Seed A Fertilizer")
	assert.Contains(t, out, " 2023-07: line 2: malformed puzzle input")
	assert.Contains(t, out, "Legend")

	// The 2022 and 2023 rows are divided by a light separator.
	assert.Contains(t, out, "\n-----")
}

func TestFormatTable_TruncatesTitle(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 50)

	out := formatter.FormatTable(sampleResult())
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "24000", "answers are never truncated")
}

func TestFormatTable_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 80)

	assert.Empty(t, formatter.FormatTable(nil))
	assert.Empty(t, formatter.FormatTable(&runner.Result{}))
}

func TestFormatTableSummary(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 80)

	got := formatter.FormatTableSummary(sampleResult().Stats)
	assert.Equal(t, " 4 puzzles | 2 solved | 1 skipped | 1 failed | 130µs", got)
}
