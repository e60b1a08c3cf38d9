package solutions

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// maxRaceTime keeps hold*(time-hold) within a uint64.
const maxRaceTime = 1 << 32

// race is one boat race: its duration and the record distance.
type race struct {
	time, record uint64
}

// wins counts whole-millisecond hold times that beat the record.
//
// Distance hold*(time-hold) is symmetric around time/2 and increases up to
// it, so the count follows from the smallest winning hold.
func (r race) wins() uint64 {
	half := r.time / 2
	distance := func(hold uint64) uint64 { return hold * (r.time - hold) }
	if distance(half) <= r.record {
		return 0
	}
	lowest := uint64(sort.Search(int(half)+1, func(h int) bool {
		return distance(uint64(h)) > r.record
	}))
	return r.time - 2*lowest + 1
}

// WaitForIt solves 2023-06: holding the button for h milliseconds of a t
// millisecond race moves the boat h*(t-h) millimeters.
type WaitForIt struct {
	puzzle.BasePuzzle
}

// NewWaitForIt creates the 2023-06 solver.
func NewWaitForIt() *WaitForIt {
	return &WaitForIt{
		BasePuzzle: puzzle.NewBasePuzzle(2023, 6, "wait-for-it", "Wait For It", []string{"math", "binary-search"}),
	}
}

// Solve multiplies the number of ways to win each race, then counts the ways
// to win the single race formed by ignoring the spaces between numbers.
func (s *WaitForIt) Solve(_ context.Context, input string) (puzzle.Answer, error) {
	all := lines(input)
	if len(all) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}
	if len(all) != 2 {
		return puzzle.Answer{}, malformed(1, "expected a Time line and a Distance line, got %d lines", len(all))
	}

	timeText, err := labeled(all[0], "Time")
	if err != nil {
		return puzzle.Answer{}, malformed(1, "%v", err)
	}
	distText, err := labeled(all[1], "Distance")
	if err != nil {
		return puzzle.Answer{}, malformed(2, "%v", err)
	}

	times, err := numbers(timeText)
	if err != nil {
		return puzzle.Answer{}, malformed(1, "%v", err)
	}
	records, err := numbers(distText)
	if err != nil {
		return puzzle.Answer{}, malformed(2, "%v", err)
	}
	if len(times) != len(records) {
		return puzzle.Answer{}, malformed(2, "%d records for %d races", len(records), len(times))
	}
	if len(times) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	answer := puzzle.Answer{PartOne: 1}
	for i := range times {
		r := race{time: times[i], record: records[i]}
		if r.time > maxRaceTime {
			return puzzle.Answer{}, malformed(1, "race time %d exceeds %d", r.time, uint64(maxRaceTime))
		}
		answer.PartOne *= r.wins()
	}

	joined, err := joinedRace(timeText, distText)
	if err != nil {
		return puzzle.Answer{}, err
	}
	answer.PartTwo = joined.wins()

	return answer, nil
}

// labeled strips a "Label:" prefix.
func labeled(line, label string) (string, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok || strings.TrimSpace(head) != label {
		return "", fmt.Errorf("line must start with %q", label+":")
	}
	return rest, nil
}

func joinedRace(timeText, distText string) (race, error) {
	t, err := strconv.ParseUint(strings.Join(strings.Fields(timeText), ""), 10, 64)
	if err != nil {
		return race{}, fmt.Errorf("%w: joined race time: %w", puzzle.ErrMalformedInput, err)
	}
	d, err := strconv.ParseUint(strings.Join(strings.Fields(distText), ""), 10, 64)
	if err != nil {
		return race{}, fmt.Errorf("%w: joined race distance: %w", puzzle.ErrMalformedInput, err)
	}
	if t > maxRaceTime {
		return race{}, fmt.Errorf("%w: joined race time %d exceeds %d", puzzle.ErrMalformedInput, t, uint64(maxRaceTime))
	}
	return race{time: t, record: d}, nil
}
