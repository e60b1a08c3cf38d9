package solutions

import (
	"context"
	"errors"
	"strings"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// maxCardMatches bounds matches so that 2^(m-1) fits in a uint64.
const maxCardMatches = 65

// Scratchcards solves 2023-04: each card lists winning numbers and the
// numbers you have, separated by '|'.
type Scratchcards struct {
	puzzle.BasePuzzle
}

// NewScratchcards creates the 2023-04 solver.
func NewScratchcards() *Scratchcards {
	return &Scratchcards{
		BasePuzzle: puzzle.NewBasePuzzle(2023, 4, "scratchcards", "Scratchcards", []string{"sets", "dynamic-programming"}),
	}
}

// Solve returns the total points, where a card with m matches is worth
// 2^(m-1), and the number of cards held once every card has won copies of
// the m cards that follow it.
func (s *Scratchcards) Solve(_ context.Context, input string) (puzzle.Answer, error) {
	var matches []int
	for i, line := range lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := cardMatches(line)
		if err != nil {
			return puzzle.Answer{}, malformed(i+1, "%v", err)
		}
		if m >= maxCardMatches {
			return puzzle.Answer{}, malformed(i+1, "%d matches overflow the card score", m)
		}
		matches = append(matches, m)
	}
	if len(matches) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	var answer puzzle.Answer
	copies := make([]uint64, len(matches))
	for i := range copies {
		copies[i] = 1
	}

	for i, m := range matches {
		if m > 0 {
			answer.PartOne += 1 << (m - 1)
		}
		// Copies never run past the last card.
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		answer.PartTwo += copies[i]
	}

	return answer, nil
}

func cardMatches(line string) (int, error) {
	_, body, ok := strings.Cut(line, ":")
	if !ok {
		return 0, errors.New("missing ':' after card header")
	}
	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return 0, errors.New("missing '|' between winning numbers and numbers you have")
	}

	winning, err := numbers(winText)
	if err != nil {
		return 0, err
	}
	have, err := numbers(haveText)
	if err != nil {
		return 0, err
	}

	set := make(map[uint64]struct{}, len(winning))
	for _, n := range winning {
		set[n] = struct{}{}
	}

	count := 0
	for _, n := range have {
		if _, ok := set[n]; ok {
			count++
		}
	}
	return count, nil
}
