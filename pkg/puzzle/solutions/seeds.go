package solutions

import (
	"context"
	"fmt"

	"github.com/yaklabco/goaoc/internal/logging"
	"github.com/yaklabco/goaoc/pkg/almanac"
	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// SeedFertilizer solves 2023-05: seeds are resolved to locations through the
// almanac's chain of translation tables.
type SeedFertilizer struct {
	puzzle.BasePuzzle
}

// NewSeedFertilizer creates the 2023-05 solver.
func NewSeedFertilizer() *SeedFertilizer {
	return &SeedFertilizer{
		BasePuzzle: puzzle.NewBasePuzzle(2023, 5, "seed-fertilizer", "If You Give A Seed A Fertilizer", []string{"intervals", "parsing"}),
	}
}

// Solve returns the lowest location for the individual seeds, and for the
// seed line read as (start, length) ranges.
func (s *SeedFertilizer) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	logger := logging.FromContext(ctx)

	a, err := almanac.Parse(input)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}

	logger.Debug("Parsed almanac",
		logging.FieldSeeds, len(a.Seeds),
		logging.FieldStages, a.Pipeline.Len(),
		logging.FieldSource, a.Pipeline.Source(),
		logging.FieldDestination, a.Pipeline.Destination(),
	)

	var answer puzzle.Answer
	for _, mode := range []almanac.Mode{almanac.PointMode, almanac.RangeMode} {
		if err := ctx.Err(); err != nil {
			return puzzle.Answer{}, err
		}

		lowest, err := a.Lowest(mode)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("%s mode: %w", mode, err)
		}
		logger.Debug("Resolved lowest location", logging.FieldMode, mode, logging.FieldValue, lowest)

		if mode == almanac.PointMode {
			answer.PartOne = lowest
		} else {
			answer.PartTwo = lowest
		}
	}

	return answer, nil
}
