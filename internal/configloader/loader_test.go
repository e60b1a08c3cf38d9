package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/config"
	"github.com/yaklabco/goaoc/pkg/puzzle"
)

type stubPuzzle struct {
	puzzle.BasePuzzle
}

func testRegistry() *puzzle.Registry {
	registry := puzzle.NewRegistry()
	registry.Register(&stubPuzzle{BasePuzzle: puzzle.NewBasePuzzle(2022, 1, "calorie-counting", "Calorie Counting", nil)})
	registry.Register(&stubPuzzle{BasePuzzle: puzzle.NewBasePuzzle(2023, 5, "seed-fertilizer", "Seeds", nil)})
	registry.RegisterAlias("seeds", "2023-05")
	return registry
}

// isolated returns options that only see files under dir.
func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		Registry:           testRegistry(),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.DefaultInputDir, result.Config.InputDir)
	assert.Equal(t, config.DefaultInputPattern, result.Config.InputPattern)
	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.Empty(t, result.LoadedFrom)
	assert.Empty(t, result.Warnings)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), `
input_dir: puzzles
puzzles:
  seed-fertilizer:
    input: custom/seeds.txt
  2022-01:
    enabled: false
`)

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "puzzles", cfg.InputDir)
	assert.Equal(t, config.DefaultInputPattern, cfg.InputPattern, "unset fields keep defaults")
	assert.Equal(t, []string{filepath.Join(dir, ".goaoc.yml")}, result.LoadedFrom)

	input, ok := cfg.PuzzleInput("2023-05")
	require.True(t, ok, "puzzle names are normalized to IDs")
	assert.Equal(t, "custom/seeds.txt", input)
	assert.False(t, cfg.PuzzleEnabled("2022-01"))
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yaml"), "input_dir: shared\n")
	nested := filepath.Join(dir, "2023", "day05")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolated(nested))
	require.NoError(t, err)
	assert.Equal(t, "shared", result.Config.InputDir)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), "input_dir: project\nlog_level: warn\n")
	explicit := filepath.Join(dir, "ci.yml")
	writeFile(t, explicit, "input_dir: explicit\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "explicit", result.Config.InputDir)
	assert.Equal(t, "warn", result.Config.LogLevel, "explicit config layers over project config")
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), "input_dir: project\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		InputDir:    "cli",
		Format:      config.FormatJSON,
		Jobs:        2,
		SkipMissing: true,
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "cli", result.Config.InputDir)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, 2, result.Config.Jobs)
	assert.True(t, result.Config.SkipMissing)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"log level", "log_level: verbose\n", "log_level"},
		{"placeholder", "input_pattern: \"{month}.txt\"\n", "input_pattern"},
		{"empty input", "puzzles:\n  2023-05:\n    input: \"\"\n", "puzzles.2023-05.input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, ".goaoc.yml"), tt.content)

			_, err := Load(context.Background(), isolated(dir))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), "puzzles: [\n")

	_, err := Load(context.Background(), isolated(dir))
	require.ErrorContains(t, err, "load project config")
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	opts := isolated(t.TempDir())
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Load(context.Background(), opts)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad_WarnsUnknownPuzzle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), "puzzles:\n  2019-25:\n    enabled: false\n")

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown puzzle "2019-25"`)
}

func TestLoad_WarnsDuplicatePuzzles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), `
puzzles:
  seeds:
    enabled: false
  2023-05:
    enabled: false
`)

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "duplicate puzzle configuration")
	assert.Len(t, result.Config.Puzzles, 1)
	assert.False(t, result.Config.PuzzleEnabled("2023-05"))
}

func TestLoad_MergesPuzzleKeysForSamePuzzle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	explicit := filepath.Join(dir, "explicit.yml")
	writeFile(t, explicit, `
puzzles:
  2023-05:
    input: mine.txt
  seed-fertilizer:
    enabled: false
    input: theirs.txt
`)

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	// Map iteration order must not decide which fields survive.
	for range 50 {
		result, err := Load(context.Background(), opts)
		require.NoError(t, err)
		require.Len(t, result.Config.Puzzles, 1)

		input, ok := result.Config.PuzzleInput("2023-05")
		require.True(t, ok)
		assert.Equal(t, "mine.txt", input, "the entry keyed by ID wins conflicts")
		assert.False(t, result.Config.PuzzleEnabled("2023-05"), "fields set only under the name are kept")
		require.Len(t, result.Warnings, 1)
	}
}

func TestLoad_PuzzleKeysAcrossLayers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), `
puzzles:
  seeds:
    enabled: false
    input: project.txt
`)
	explicit := filepath.Join(dir, "explicit.yml")
	writeFile(t, explicit, `
puzzles:
  2023-05:
    enabled: true
`)

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Config.Puzzles, 1)

	assert.True(t, result.Config.PuzzleEnabled("2023-05"), "explicit config overrides project config")
	input, ok := result.Config.PuzzleInput("2023-05")
	require.True(t, ok)
	assert.Equal(t, "project.txt", input)
}

// Environment tests mutate process state and cannot run in parallel.

func TestLoad_EnvDisableByNameKeepsConfiguredInput(t *testing.T) {
	t.Setenv("GOAOC_DISABLE", "seed-fertilizer")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), `
puzzles:
  2023-05:
    input: mine.txt
`)

	opts := isolated(dir)
	opts.IgnoreEnv = false
	opts.IgnoreDotEnv = true

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Config.Puzzles, 1)

	assert.False(t, result.Config.PuzzleEnabled("2023-05"))
	input, ok := result.Config.PuzzleInput("2023-05")
	require.True(t, ok)
	assert.Equal(t, "mine.txt", input)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GOAOC_INPUT_DIR", "from-env")
	t.Setenv("GOAOC_FORMAT", "JSON")
	t.Setenv("GOAOC_JOBS", "3")
	t.Setenv("GOAOC_SKIP_MISSING", "true")
	t.Setenv("GOAOC_DISABLE", "seeds, calorie-counting")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".goaoc.yml"), "input_dir: project\n")

	opts := isolated(dir)
	opts.IgnoreEnv = false
	opts.IgnoreDotEnv = true

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "from-env", cfg.InputDir, "environment overrides config files")
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 3, cfg.Jobs)
	assert.True(t, cfg.SkipMissing)
	assert.False(t, cfg.PuzzleEnabled("2023-05"))
	assert.False(t, cfg.PuzzleEnabled("2022-01"))
}

func TestLoad_EnvInvalid(t *testing.T) {
	t.Setenv("GOAOC_JOBS", "many")

	opts := isolated(t.TempDir())
	opts.IgnoreEnv = false
	opts.IgnoreDotEnv = true

	_, err := Load(context.Background(), opts)
	require.ErrorContains(t, err, "GOAOC_JOBS")
}

func TestLoad_DotEnv(t *testing.T) {
	// Register cleanup for variables the .env file will set.
	t.Setenv("GOAOC_INPUT_PATTERN", "")
	require.NoError(t, os.Unsetenv("GOAOC_INPUT_PATTERN"))
	t.Setenv("GOAOC_LOG_LEVEL", "error")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "GOAOC_INPUT_PATTERN={id}.txt\nGOAOC_LOG_LEVEL=debug\n")

	opts := isolated(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), result.Paths.DotEnv)
	assert.Equal(t, "{id}.txt", result.Config.InputPattern)
	assert.Equal(t, "error", result.Config.LogLevel, ".env does not override the environment")
}
