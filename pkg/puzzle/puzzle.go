// Package puzzle provides the solver interface and registry for goaoc.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors shared by solvers.
var (
	// ErrInvalidID is returned when a puzzle identifier cannot be parsed.
	ErrInvalidID = errors.New("invalid puzzle id")

	// ErrMalformedInput is wrapped by solvers when the input does not follow
	// the puzzle's format.
	ErrMalformedInput = errors.New("malformed puzzle input")

	// ErrEmptyInput is returned when the input holds nothing to solve.
	ErrEmptyInput = errors.New("empty puzzle input")
)

// First and last valid puzzle coordinates.
const (
	firstYear = 2015
	lastDay   = 25
)

// Answer holds the numeric results of both parts of a puzzle.
type Answer struct {
	PartOne uint64
	PartTwo uint64
}

// Puzzle defines the interface every solver implements.
type Puzzle interface {
	// ID returns the canonical identifier, e.g. "2023-05".
	ID() string

	// Name returns the short kebab-case name, e.g. "seed-fertilizer".
	Name() string

	// Title returns the puzzle title as published.
	Title() string

	// Year returns the event year.
	Year() int

	// Day returns the day of the event, 1 to 25.
	Day() int

	// Tags returns categorization tags (e.g. ["parsing", "intervals"]).
	Tags() []string

	// Solve computes both parts from the full puzzle input.
	//
	// Solvers must:
	//   - Treat malformed input as an error; never return a partial answer.
	//   - Be pure: the same input always produces the same answer.
	//   - Respect context cancellation for long computations.
	Solve(ctx context.Context, input string) (Answer, error)
}

// FormatID returns the canonical identifier for a year and day.
func FormatID(year, day int) string {
	return fmt.Sprintf("%04d-%02d", year, day)
}

// ParseID parses identifiers such as "2023-05", "2023-5", "2023/5" and
// "2023/day_5".
func ParseID(s string) (int, int, error) {
	s = strings.TrimSpace(s)

	sep := strings.IndexAny(s, "-/")
	if sep < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	year, err := strconv.Atoi(s[:sep])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: year is not a number", ErrInvalidID, s)
	}

	dayPart := strings.TrimPrefix(strings.ToLower(s[sep+1:]), "day")
	dayPart = strings.TrimLeft(dayPart, "_-")
	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: day is not a number", ErrInvalidID, s)
	}

	if year < firstYear {
		return 0, 0, fmt.Errorf("%w: %q: year must be %d or later", ErrInvalidID, s, firstYear)
	}
	if day < 1 || day > lastDay {
		return 0, 0, fmt.Errorf("%w: %q: day must be between 1 and %d", ErrInvalidID, s, lastDay)
	}

	return year, day, nil
}
