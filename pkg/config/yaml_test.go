package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
		assert.Nil(t, clone.Puzzles)
	})

	t.Run("deep copies Puzzles map", func(t *testing.T) {
		enabled := true
		input := "seeds.txt"
		original := &config.Config{
			Puzzles: map[string]config.PuzzleConfig{
				"2023-05": {Enabled: &enabled, Input: &input},
			},
		}

		clone := original.Clone()
		require.Contains(t, clone.Puzzles, "2023-05")
		assert.True(t, *clone.Puzzles["2023-05"].Enabled)
		assert.Equal(t, "seeds.txt", *clone.Puzzles["2023-05"].Input)

		*clone.Puzzles["2023-05"].Enabled = false
		*clone.Puzzles["2023-05"].Input = "other.txt"
		clone.Puzzles["2023-06"] = config.PuzzleConfig{}

		assert.True(t, *original.Puzzles["2023-05"].Enabled)
		assert.Equal(t, "seeds.txt", *original.Puzzles["2023-05"].Input)
		assert.NotContains(t, original.Puzzles, "2023-06")
	})

	t.Run("copies CLI-only fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Format = config.FormatJSON
		original.Jobs = 4
		original.SkipMissing = true

		clone := original.Clone()
		assert.Equal(t, config.FormatJSON, clone.Format)
		assert.Equal(t, 4, clone.Jobs)
		assert.True(t, clone.SkipMissing)
		assert.Equal(t, original.InputPattern, clone.InputPattern)
	})
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	disabled := false
	input := "custom/day5.txt"

	original := config.NewConfig()
	original.InputDir = "puzzles"
	original.Puzzles["2023-05"] = config.PuzzleConfig{Input: &input}
	original.Puzzles["2022-01"] = config.PuzzleConfig{Enabled: &disabled}
	original.Jobs = 8

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "input_dir: puzzles")
	assert.NotContains(t, string(data), "jobs")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "puzzles", parsed.InputDir)
	assert.Equal(t, config.DefaultInputPattern, parsed.InputPattern)
	assert.Equal(t, "custom/day5.txt", *parsed.Puzzles["2023-05"].Input)
	assert.False(t, *parsed.Puzzles["2022-01"].Enabled)
	assert.Zero(t, parsed.Jobs, "CLI-only fields are not persisted")
}

func TestFromYAML(t *testing.T) {
	t.Run("initializes Puzzles", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("log_level: debug\n"))
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.NotNil(t, cfg.Puzzles)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("puzzles: [unclosed\n"))
		require.ErrorContains(t, err, "parse yaml")
	})
}

func TestToYAMLWithHeader(t *testing.T) {
	data, err := config.NewConfig().ToYAMLWithHeader("# goaoc configuration")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# goaoc configuration\n\n"))

	var nilCfg *config.Config
	data, err = nilCfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}
