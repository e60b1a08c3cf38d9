package almanac

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
)

// Rule translates the source interval [Source, Source+Length) onto
// [Destination, Destination+Length).
type Rule struct {
	Source      uint64
	Destination uint64
	Length      uint64
}

// Validate checks that the rule is non-empty and that neither of its
// intervals overflows.
func (r Rule) Validate() error {
	if r.Length == 0 {
		return fmt.Errorf("%w: rule at source %d", ErrEmptyRange, r.Source)
	}
	if r.Source > math.MaxUint64-r.Length {
		return fmt.Errorf("%w: source %d length %d", ErrRangeOverflow, r.Source, r.Length)
	}
	if r.Destination > math.MaxUint64-r.Length {
		return fmt.Errorf("%w: destination %d length %d", ErrRangeOverflow, r.Destination, r.Length)
	}
	return nil
}

// End returns the exclusive end of the source interval.
func (r Rule) End() uint64 {
	return r.Source + r.Length
}

// SourceRange returns the interval the rule covers.
func (r Rule) SourceRange() Range {
	return Range{Start: r.Source, Length: r.Length}
}

// Covers reports whether v falls inside the source interval.
func (r Rule) Covers(v uint64) bool {
	return r.Source <= v && v < r.End()
}

// Apply translates v. The caller must ensure Covers(v).
func (r Rule) Apply(v uint64) uint64 {
	return r.Destination + (v - r.Source)
}

// restrict returns the part of r whose source is piece.
func (r Rule) restrict(piece Range) Rule {
	return Rule{
		Source:      piece.Start,
		Destination: r.Apply(piece.Start),
		Length:      piece.Length,
	}
}

// Segment pairs a piece of an input range with the range it maps to.
type Segment struct {
	Source Range
	Output Range
	Mapped bool // false for identity gaps
}

// Table is one named stage of the almanac, mapping the From domain onto
// the To domain. A Table is immutable once built.
type Table struct {
	From string
	To   string

	// sorted by Source, pairwise disjoint
	rules []Rule
}

// NewTable validates rules and builds a lookup table.
//
// Rules are expected not to overlap in source space. When they do, the
// rule declared first wins: later rules keep only the parts of their
// source interval no earlier rule covers.
func NewTable(from, to string, rules []Rule) (*Table, error) {
	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("%s-to-%s rule %d: %w", from, to, i+1, err)
		}
	}

	return &Table{
		From:  from,
		To:    to,
		rules: resolveOverlaps(rules),
	}, nil
}

// Name returns the table header name, e.g. "seed-to-soil".
func (t *Table) Name() string {
	return t.From + "-to-" + t.To
}

// Rules returns a copy of the normalized rules in source order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// LookupValue translates v, or returns it unchanged when no rule covers it.
func (t *Table) LookupValue(v uint64) uint64 {
	i := sort.Search(len(t.rules), func(i int) bool { return t.rules[i].End() > v })
	if i < len(t.rules) && t.rules[i].Covers(v) {
		return t.rules[i].Apply(v)
	}
	return v
}

// LookupRange translates every value of r and returns the resulting ranges
// in source order. Their lengths always sum to r.Length.
func (t *Table) LookupRange(r Range) []Range {
	out := make([]Range, 0, 1)
	walk(t.rules, r,
		func(gap Range) { out = append(out, gap) },
		func(rule Rule, piece Range) {
			out = append(out, Range{Start: rule.Apply(piece.Start), Length: piece.Length})
		},
	)
	return out
}

// Segments is LookupRange with the source side of each piece kept.
func (t *Table) Segments(r Range) []Segment {
	var segments []Segment
	walk(t.rules, r,
		func(gap Range) {
			segments = append(segments, Segment{Source: gap, Output: gap})
		},
		func(rule Rule, piece Range) {
			segments = append(segments, Segment{
				Source: piece,
				Output: Range{Start: rule.Apply(piece.Start), Length: piece.Length},
				Mapped: true,
			})
		},
	)
	return segments
}

// walk visits r in source order over sorted, disjoint rules. gap receives
// stretches no rule covers; hit receives stretches covered by rule.
func walk(rules []Rule, r Range, gap func(Range), hit func(rule Rule, piece Range)) {
	cursor, end := r.Start, r.End()

	i := sort.Search(len(rules), func(i int) bool { return rules[i].End() > cursor })
	for ; i < len(rules) && cursor < end; i++ {
		rule := rules[i]
		if rule.Source >= end {
			break
		}
		if rule.Source > cursor {
			gap(Range{Start: cursor, Length: rule.Source - cursor})
			cursor = rule.Source
		}
		stop := min(end, rule.End())
		hit(rule, Range{Start: cursor, Length: stop - cursor})
		cursor = stop
	}

	if cursor < end {
		gap(Range{Start: cursor, Length: end - cursor})
	}
}

// resolveOverlaps returns rules sorted by source with overlaps removed in
// favour of the earliest declared rule.
func resolveOverlaps(rules []Rule) []Rule {
	accepted := make([]Rule, 0, len(rules))

	for _, rule := range rules {
		var pieces []Range
		walk(accepted, rule.SourceRange(),
			func(gap Range) { pieces = append(pieces, gap) },
			func(Rule, Range) {},
		)

		for _, piece := range pieces {
			part := rule.restrict(piece)
			idx, _ := slices.BinarySearchFunc(accepted, part, func(a, b Rule) int {
				return cmp.Compare(a.Source, b.Source)
			})
			accepted = slices.Insert(accepted, idx, part)
		}
	}

	return accepted
}
