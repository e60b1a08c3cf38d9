package almanac_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/almanac"
)

func TestNewPipeline(t *testing.T) {
	t.Parallel()

	ab, err := almanac.NewTable("a", "b", nil)
	require.NoError(t, err)
	bc, err := almanac.NewTable("b", "c", nil)
	require.NoError(t, err)

	p, err := almanac.NewPipeline(ab, bc)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "a", p.Source())
	assert.Equal(t, "c", p.Destination())

	_, err = almanac.NewPipeline(bc, ab)
	require.ErrorIs(t, err, almanac.ErrBrokenChain)

	_, err = almanac.NewPipeline()
	require.ErrorIs(t, err, almanac.ErrNoStages)
}

func TestPipeline_ConvertValue(t *testing.T) {
	t.Parallel()

	a, err := almanac.Parse(exampleAlmanac)
	require.NoError(t, err)

	want := map[uint64]uint64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, location := range want {
		assert.Equal(t, location, a.Pipeline.ConvertValue(seed), "seed %d", seed)
	}
}

func TestPipeline_Trace(t *testing.T) {
	t.Parallel()

	a, err := almanac.Parse(exampleAlmanac)
	require.NoError(t, err)

	steps := a.Pipeline.Trace(79)
	require.Len(t, steps, 8)
	assert.Equal(t, almanac.Step{Domain: "seed", Value: 79}, steps[0])
	assert.Equal(t, almanac.Step{Domain: "soil", Value: 81}, steps[1])
	assert.Equal(t, almanac.Step{Domain: "location", Value: 82}, steps[7])
}

func TestPipeline_ConvertRangesKeepsStageOrder(t *testing.T) {
	t.Parallel()

	// Swapping two stages that chain the same domains changes the result,
	// so declared order must be honoured.
	double, err := almanac.NewTable("x", "x", []almanac.Rule{{Source: 0, Destination: 10, Length: 5}})
	require.NoError(t, err)
	shift, err := almanac.NewTable("x", "x", []almanac.Rule{{Source: 10, Destination: 0, Length: 5}})
	require.NoError(t, err)

	forward, err := almanac.NewPipeline(double, shift)
	require.NoError(t, err)
	backward, err := almanac.NewPipeline(shift, double)
	require.NoError(t, err)

	seed := []almanac.Range{{Start: 0, Length: 5}}
	assert.Equal(t, []almanac.Range{{Start: 0, Length: 5}}, forward.ConvertRanges(seed))
	assert.Equal(t, []almanac.Range{{Start: 10, Length: 5}}, backward.ConvertRanges(seed))
}

func TestPipeline_PointRangeEquivalence(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(23, 42))

	for iter := range 100 {
		stages := make([]*almanac.Table, 0, 4)
		domains := []string{"a", "b", "c", "d", "e"}
		for i := range 4 {
			stages = append(stages, randomTable(t, rng, domains[i], domains[i+1]))
		}
		p, err := almanac.NewPipeline(stages...)
		require.NoError(t, err)

		seed := almanac.Range{Start: rng.Uint64N(200), Length: 1 + rng.Uint64N(60)}

		want := p.ConvertValue(seed.Start)
		for v := seed.Start; v < seed.End(); v++ {
			want = min(want, p.ConvertValue(v))
		}

		got, err := almanac.LowestRange(p, []almanac.Range{seed})
		require.NoError(t, err)
		require.Equal(t, want, got, "iteration %d, seed %v", iter, seed)
	}
}

func TestPipeline_ConvertRangesReachesExactlyThePointImages(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 9))

	for range 30 {
		first := randomTable(t, rng, "a", "b")
		second := randomTable(t, rng, "b", "c")
		p, err := almanac.NewPipeline(first, second)
		require.NoError(t, err)

		seed := almanac.Range{Start: rng.Uint64N(150), Length: 1 + rng.Uint64N(50)}

		images := make(map[uint64]bool)
		for v := seed.Start; v < seed.End(); v++ {
			images[p.ConvertValue(v)] = true
		}

		reached := make(map[uint64]bool)
		for _, r := range p.ConvertRanges([]almanac.Range{seed}) {
			for v := r.Start; v < r.End(); v++ {
				reached[v] = true
			}
		}

		assert.Equal(t, images, reached)
	}
}
