package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goaoc/pkg/config"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		want   bool
	}{
		{config.FormatText, true},
		{config.FormatTable, true},
		{config.FormatJSON, true},
		{config.FormatSummary, true},
		{config.OutputFormat("sarif"), false},
		{config.OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestFormats(t *testing.T) {
	for _, f := range config.Formats() {
		assert.True(t, f.IsValid(), f.String())
	}
}

func TestPuzzleConfig(t *testing.T) {
	disabled := false
	input := "custom/seeds.txt"

	cfg := config.NewConfig()
	cfg.Puzzles["2023-05"] = config.PuzzleConfig{Input: &input}
	cfg.Puzzles["2023-06"] = config.PuzzleConfig{Enabled: &disabled}

	assert.True(t, cfg.PuzzleEnabled("2023-05"))
	assert.False(t, cfg.PuzzleEnabled("2023-06"))
	assert.True(t, cfg.PuzzleEnabled("2022-01"))

	got, ok := cfg.PuzzleInput("2023-05")
	assert.True(t, ok)
	assert.Equal(t, input, got)

	_, ok = cfg.PuzzleInput("2023-06")
	assert.False(t, ok)

	var nilCfg *config.Config
	assert.True(t, nilCfg.PuzzleEnabled("2023-05"))
	_, ok = nilCfg.PuzzleInput("2023-05")
	assert.False(t, ok)
}
