package almanac

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoStages is returned when a pipeline is built without tables.
	ErrNoStages = errors.New("pipeline has no stages")

	// ErrBrokenChain is returned when a table's source domain does not
	// match the previous table's destination domain.
	ErrBrokenChain = errors.New("table domains do not chain")
)

// Step is one hop of a traced value.
type Step struct {
	Domain string
	Value  uint64
}

// Pipeline applies tables in declaration order.
type Pipeline struct {
	stages []*Table
}

// NewPipeline chains stages. Each stage's To must equal the next stage's From.
func NewPipeline(stages ...*Table) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	for i := 1; i < len(stages); i++ {
		prev, next := stages[i-1], stages[i]
		if prev.To != next.From {
			return nil, fmt.Errorf("%w: %s is followed by %s", ErrBrokenChain, prev.Name(), next.Name())
		}
	}
	return &Pipeline{stages: slices.Clone(stages)}, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stages returns the tables in order.
func (p *Pipeline) Stages() []*Table {
	return slices.Clone(p.stages)
}

// Source is the domain of the first stage.
func (p *Pipeline) Source() string {
	return p.stages[0].From
}

// Destination is the domain of the last stage.
func (p *Pipeline) Destination() string {
	return p.stages[len(p.stages)-1].To
}

// ConvertValue pushes v through every stage.
func (p *Pipeline) ConvertValue(v uint64) uint64 {
	for _, stage := range p.stages {
		v = stage.LookupValue(v)
	}
	return v
}

// ConvertRanges pushes a set of ranges through every stage. The working set
// is re-merged after each stage, so its size depends on rule boundaries and
// never on how many values the ranges hold.
func (p *Pipeline) ConvertRanges(ranges []Range) []Range {
	current := Merge(ranges)
	for _, stage := range p.stages {
		next := make([]Range, 0, len(current))
		for _, r := range current {
			next = append(next, stage.LookupRange(r)...)
		}
		current = Merge(next)
	}
	return current
}

// Trace records v in every domain it passes through, starting with the
// pipeline source.
func (p *Pipeline) Trace(v uint64) []Step {
	steps := make([]Step, 0, len(p.stages)+1)
	steps = append(steps, Step{Domain: p.Source(), Value: v})
	for _, stage := range p.stages {
		v = stage.LookupValue(v)
		steps = append(steps, Step{Domain: stage.To, Value: v})
	}
	return steps
}
