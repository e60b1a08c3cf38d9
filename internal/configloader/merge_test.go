package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/config"
)

func ptr[T any](v T) *T { return &v }

func TestMerge_Scalars(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{InputPattern: "{id}.txt", Jobs: 4}

	got := merge(base, override)
	assert.Equal(t, config.DefaultInputDir, got.InputDir)
	assert.Equal(t, "{id}.txt", got.InputPattern)
	assert.Equal(t, 4, got.Jobs)
	assert.Equal(t, config.DefaultInputPattern, base.InputPattern, "base is not mutated")
}

func TestMerge_NilSides(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(nil, cfg))
	assert.Same(t, cfg, merge(cfg, nil))
}

func TestMerge_PuzzlesPerField(t *testing.T) {
	t.Parallel()

	base := &config.Config{Puzzles: map[string]config.PuzzleConfig{
		"2023-05": {Enabled: ptr(false), Input: ptr("a.txt")},
		"2022-01": {Input: ptr("calories.txt")},
	}}
	override := &config.Config{Puzzles: map[string]config.PuzzleConfig{
		"2023-05": {Enabled: ptr(true)},
		"2023-06": {Enabled: ptr(false)},
	}}

	got := merge(base, override)
	require.Len(t, got.Puzzles, 3)

	seeds := got.Puzzles["2023-05"]
	require.NotNil(t, seeds.Enabled)
	assert.True(t, *seeds.Enabled)
	require.NotNil(t, seeds.Input)
	assert.Equal(t, "a.txt", *seeds.Input, "unset override fields keep base values")

	assert.Equal(t, "calories.txt", *got.Puzzles["2022-01"].Input)
	assert.False(t, *got.Puzzles["2023-06"].Enabled)
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	got := MergeAll(
		config.NewConfig(),
		&config.Config{InputDir: "first", LogLevel: "warn"},
		&config.Config{InputDir: "second", SkipMissing: true},
	)
	assert.Equal(t, "second", got.InputDir)
	assert.Equal(t, "warn", got.LogLevel)
	assert.True(t, got.SkipMissing)
}
