package solutions

import (
	"context"
	"strings"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// spelledDigits maps each spelled digit to its value; index is the value.
//
//nolint:gochecknoglobals // Read-only lookup table
var spelledDigits = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Trebuchet solves 2023-01: every line hides a two-digit calibration value
// made of its first and last digit.
type Trebuchet struct {
	puzzle.BasePuzzle
}

// NewTrebuchet creates the 2023-01 solver.
func NewTrebuchet() *Trebuchet {
	return &Trebuchet{
		BasePuzzle: puzzle.NewBasePuzzle(2023, 1, "trebuchet", "Trebuchet?!", []string{"strings"}),
	}
}

// Solve sums calibration values, first counting only numeric digits and then
// also spelled ones. Lines without any digit contribute zero.
func (s *Trebuchet) Solve(_ context.Context, input string) (puzzle.Answer, error) {
	all := lines(input)
	if len(all) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	var answer puzzle.Answer
	for _, line := range all {
		answer.PartOne += calibration(line, false)
		answer.PartTwo += calibration(line, true)
	}
	return answer, nil
}

func calibration(line string, spelled bool) uint64 {
	first, last := -1, -1
	for i := range len(line) {
		d := digitAt(line, i, spelled)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return uint64(first*10 + last)
}

// digitAt returns the digit starting at byte i, or -1. Spelled "zero" is not
// a digit in calibration values.
func digitAt(line string, i int, spelled bool) int {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !spelled {
		return -1
	}
	for value, word := range spelledDigits[1:] {
		if strings.HasPrefix(line[i:], word) {
			return value + 1
		}
	}
	return -1
}
