package almanac

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrEmptyRange is returned when a range or rule has zero length.
	ErrEmptyRange = errors.New("range length must be positive")

	// ErrRangeOverflow is returned when start+length does not fit in a uint64.
	ErrRangeOverflow = errors.New("range end overflows uint64")
)

// Range is the half-open interval [Start, Start+Length).
type Range struct {
	Start  uint64
	Length uint64
}

// NewRange returns a validated Range.
func NewRange(start, length uint64) (Range, error) {
	if length == 0 {
		return Range{}, fmt.Errorf("%w: start %d", ErrEmptyRange, start)
	}
	if start > math.MaxUint64-length {
		return Range{}, fmt.Errorf("%w: start %d length %d", ErrRangeOverflow, start, length)
	}
	return Range{Start: start, Length: length}, nil
}

// End returns the exclusive upper bound.
func (r Range) End() uint64 {
	return r.Start + r.Length
}

// Contains reports whether v lies in r.
func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v < r.End()
}

// Overlaps reports whether r and o share at least one value.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End() && o.Start < r.End()
}

// Intersect returns the common part of r and o. The boolean is false when
// they do not overlap.
func (r Range) Intersect(o Range) (Range, bool) {
	if !r.Overlaps(o) {
		return Range{}, false
	}
	start := max(r.Start, o.Start)
	end := min(r.End(), o.End())
	return Range{Start: start, Length: end - start}, true
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}

// Merge sorts ranges by start and coalesces overlapping or adjacent ones.
// The input slice is not modified.
func Merge(ranges []Range) []Range {
	if len(ranges) < 2 {
		return slices.Clone(ranges)
	}

	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.Start, b.Start)
	})

	merged := make([]Range, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= current.End() {
			if end := next.End(); end > current.End() {
				current.Length = end - current.Start
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
