package puzzle

import "context"

// BasePuzzle provides the metadata half of the Puzzle interface.
// Embed this in solvers and implement Solve.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BasePuzzle struct {
	year  int
	day   int
	name  string
	title string
	tags  []string
}

// NewBasePuzzle creates a BasePuzzle with the given properties.
func NewBasePuzzle(year, day int, name, title string, tags []string) BasePuzzle {
	return BasePuzzle{
		year:  year,
		day:   day,
		name:  name,
		title: title,
		tags:  tags,
	}
}

// ID returns the canonical identifier.
func (p *BasePuzzle) ID() string {
	return FormatID(p.year, p.day)
}

// Name returns the short name.
func (p *BasePuzzle) Name() string {
	return p.name
}

// Title returns the published title.
func (p *BasePuzzle) Title() string {
	return p.title
}

// Year returns the event year.
func (p *BasePuzzle) Year() int {
	return p.year
}

// Day returns the event day.
func (p *BasePuzzle) Day() int {
	return p.day
}

// Tags returns categorization tags.
func (p *BasePuzzle) Tags() []string {
	return p.tags
}

// Solve must be overridden by concrete solvers.
// The default implementation returns a zero answer.
func (p *BasePuzzle) Solve(_ context.Context, _ string) (Answer, error) {
	return Answer{}, nil
}
