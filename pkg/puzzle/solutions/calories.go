package solutions

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// CalorieCounting solves 2022-01: each blank-line separated group lists the
// calories carried by one elf.
type CalorieCounting struct {
	puzzle.BasePuzzle
}

// NewCalorieCounting creates the 2022-01 solver.
func NewCalorieCounting() *CalorieCounting {
	return &CalorieCounting{
		BasePuzzle: puzzle.NewBasePuzzle(2022, 1, "calorie-counting", "Calorie Counting", []string{"grouping", "sorting"}),
	}
}

// Solve returns the largest group total and the sum of the three largest.
func (s *CalorieCounting) Solve(_ context.Context, input string) (puzzle.Answer, error) {
	totals, err := groupTotals(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(totals) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	slices.SortFunc(totals, func(a, b uint64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	var topThree uint64
	for _, t := range totals[:min(3, len(totals))] {
		topThree += t
	}

	return puzzle.Answer{PartOne: totals[0], PartTwo: topThree}, nil
}

func groupTotals(input string) ([]uint64, error) {
	var (
		totals  []uint64
		current uint64
		open    bool
	)

	for i, line := range lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				totals = append(totals, current)
			}
			current, open = 0, false
			continue
		}

		n, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, malformed(i+1, "calorie count %q is not a number", line)
		}
		current += n
		open = true
	}
	if open {
		totals = append(totals, current)
	}

	return totals, nil
}
