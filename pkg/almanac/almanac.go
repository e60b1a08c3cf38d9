// Package almanac resolves seed values through a chain of piecewise-linear
// remapping tables.
//
// Single values are looked up rule by rule. Seed ranges are propagated as
// intervals: each table splits a range at rule boundaries, translates the
// covered pieces and passes gaps through unchanged, so the cost depends on
// the number of rules and never on the number of values in a range.
package almanac

import (
	"errors"
	"fmt"
)

// ErrNoSeeds is returned when the lowest location of an empty seed set is
// requested.
var ErrNoSeeds = errors.New("no seeds to resolve")

// Mode selects how the seed line is read.
type Mode int

const (
	// PointMode treats every seed number as an individual value.
	PointMode Mode = iota

	// RangeMode reads seed numbers in (start, length) pairs.
	RangeMode
)

func (m Mode) String() string {
	switch m {
	case PointMode:
		return "point"
	case RangeMode:
		return "range"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Almanac is a parsed puzzle input.
type Almanac struct {
	Seeds    []uint64
	Pipeline *Pipeline
}

// SeedRanges reads Seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seed numbers cannot form (start, length) pairs", ErrMalformedInput, len(a.Seeds))
	}

	ranges := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := NewRange(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: seed pair %d: %w", ErrMalformedInput, i/2+1, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Lowest returns the lowest destination reachable from the seeds read in
// the given mode.
func (a *Almanac) Lowest(mode Mode) (uint64, error) {
	switch mode {
	case PointMode:
		return LowestPoint(a.Pipeline, a.Seeds)
	case RangeMode:
		ranges, err := a.SeedRanges()
		if err != nil {
			return 0, err
		}
		return LowestRange(a.Pipeline, ranges)
	default:
		return 0, fmt.Errorf("unknown mode %v", mode)
	}
}

// LowestPoint returns the minimum of p.ConvertValue over seeds.
func LowestPoint(p *Pipeline, seeds []uint64) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}

	lowest := p.ConvertValue(seeds[0])
	for _, seed := range seeds[1:] {
		lowest = min(lowest, p.ConvertValue(seed))
	}
	return lowest, nil
}

// LowestRange returns the smallest start among the ranges the seed ranges
// map to. Every value of an output range is reachable and its start is its
// smallest member.
func LowestRange(p *Pipeline, seeds []Range) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}

	out := p.ConvertRanges(seeds)
	if len(out) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := out[0].Start
	for _, r := range out[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}
