package almanac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/almanac"
)

func TestAlmanac_LowestExample(t *testing.T) {
	t.Parallel()

	a, err := almanac.Parse(exampleAlmanac)
	require.NoError(t, err)

	points, err := a.Lowest(almanac.PointMode)
	require.NoError(t, err)
	assert.Equal(t, uint64(35), points)

	ranges, err := a.Lowest(almanac.RangeMode)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), ranges)
}

func TestAlmanac_SeedRanges(t *testing.T) {
	t.Parallel()

	a, err := almanac.Parse(exampleAlmanac)
	require.NoError(t, err)

	ranges, err := a.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, []almanac.Range{{Start: 79, Length: 14}, {Start: 55, Length: 13}}, ranges)
}

func TestAlmanac_RangeModeMatchesExpandedPoints(t *testing.T) {
	t.Parallel()

	a, err := almanac.Parse(exampleAlmanac)
	require.NoError(t, err)

	ranges, err := a.SeedRanges()
	require.NoError(t, err)

	var expanded []uint64
	for _, r := range ranges {
		for v := r.Start; v < r.End(); v++ {
			expanded = append(expanded, v)
		}
	}

	want, err := almanac.LowestPoint(a.Pipeline, expanded)
	require.NoError(t, err)

	got, err := almanac.LowestRange(a.Pipeline, ranges)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAlmanac_SeedRangeErrors(t *testing.T) {
	t.Parallel()

	odd, err := almanac.Parse("seeds: 1 2 3\n\na-to-b map:\n1 2 3\n")
	require.NoError(t, err)
	_, err = odd.Lowest(almanac.RangeMode)
	require.ErrorIs(t, err, almanac.ErrMalformedInput)

	zero, err := almanac.Parse("seeds: 1 0\n\na-to-b map:\n1 2 3\n")
	require.NoError(t, err)
	_, err = zero.SeedRanges()
	require.ErrorIs(t, err, almanac.ErrMalformedInput)
	require.ErrorIs(t, err, almanac.ErrEmptyRange)
}

func TestAlmanac_NoSeeds(t *testing.T) {
	t.Parallel()

	a, err := almanac.Parse("seeds:\n\na-to-b map:\n1 2 3\n")
	require.NoError(t, err)

	_, err = a.Lowest(almanac.PointMode)
	require.ErrorIs(t, err, almanac.ErrNoSeeds)

	_, err = a.Lowest(almanac.RangeMode)
	require.ErrorIs(t, err, almanac.ErrNoSeeds)

	_, err = almanac.LowestRange(a.Pipeline, []almanac.Range{{Start: 4, Length: 0}})
	require.ErrorIs(t, err, almanac.ErrNoSeeds)
}

func TestAlmanac_LargeRangesAreNotEnumerated(t *testing.T) {
	t.Parallel()

	// Ranges of several billion values resolve instantly only when the
	// pipeline works on intervals.
	input := `seeds: 1000000000 4000000000 10 5

seed-to-soil map:
0 1000000000 4000000000

soil-to-location map:
7 0 3
`
	a, err := almanac.Parse(input)
	require.NoError(t, err)

	lowest, err := a.Lowest(almanac.RangeMode)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), lowest)
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "point", almanac.PointMode.String())
	assert.Equal(t, "range", almanac.RangeMode.String())
	assert.Equal(t, "Mode(7)", almanac.Mode(7).String())
}
