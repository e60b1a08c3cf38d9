package almanac_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/almanac"
)

func TestParse_Example(t *testing.T) {
	t.Parallel()

	a, err := almanac.Parse(exampleAlmanac)
	require.NoError(t, err)

	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Equal(t, 7, a.Pipeline.Len())
	assert.Equal(t, "seed", a.Pipeline.Source())
	assert.Equal(t, "location", a.Pipeline.Destination())

	first := a.Pipeline.Stages()[0]
	assert.Equal(t, "seed", first.From)
	assert.Equal(t, "soil", first.To)
	assert.Equal(t, []almanac.Rule{
		{Source: 50, Destination: 52, Length: 48},
		{Source: 98, Destination: 50, Length: 2},
	}, first.Rules())
}

func TestParse_ToleratesLayoutVariations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "crlf line endings", input: strings.ReplaceAll(exampleAlmanac, "\n", "\r\n")},
		{name: "leading blank lines", input: "\n\n" + exampleAlmanac},
		{name: "no trailing newline", input: strings.TrimRight(exampleAlmanac, "\n")},
		{name: "extra blank lines between maps", input: strings.ReplaceAll(exampleAlmanac, "\n\n", "\n\n\n")},
		{name: "header right after rules", input: strings.ReplaceAll(exampleAlmanac, "48\n\nsoil", "48\nsoil")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := almanac.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 7, a.Pipeline.Len())

			lowest, err := a.Lowest(almanac.PointMode)
			require.NoError(t, err)
			assert.Equal(t, uint64(35), lowest)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
		wantErr  error
	}{
		{name: "empty input", input: "", wantLine: 0},
		{name: "missing seed line", input: "seed-to-soil map:\n1 2 3\n", wantLine: 1},
		{name: "non-numeric seed", input: "seeds: 1 x\n", wantLine: 1},
		{name: "negative seed", input: "seeds: -1\n", wantLine: 1},
		{name: "no maps", input: "seeds: 1 2\n", wantLine: 1},
		{name: "numbers outside block", input: "seeds: 1\n1 2 3\n", wantLine: 2},
		{name: "bad header", input: "seeds: 1\n\nseed-soil map:\n1 2 3\n", wantLine: 3},
		{name: "header with spaces", input: "seeds: 1\n\nseed-to-my soil map:\n1 2 3\n", wantLine: 3},
		{name: "rule with two numbers", input: "seeds: 1\n\na-to-b map:\n1 2\n", wantLine: 4},
		{name: "rule with four numbers", input: "seeds: 1\n\na-to-b map:\n1 2 3 4\n", wantLine: 4},
		{name: "rule with text", input: "seeds: 1\n\na-to-b map:\n1 2 z\n", wantLine: 4},
		{name: "empty block", input: "seeds: 1\n\na-to-b map:\n\nb-to-c map:\n1 2 3\n", wantLine: 3},
		{name: "empty last block", input: "seeds: 1\n\na-to-b map:\n1 2 3\n\nb-to-c map:\n", wantLine: 6},
		{
			name:     "zero length rule",
			input:    "seeds: 1\n\na-to-b map:\n1 2 0\n",
			wantLine: 3,
			wantErr:  almanac.ErrEmptyRange,
		},
		{
			name:     "broken chain",
			input:    "seeds: 1\n\na-to-b map:\n1 2 3\n\nc-to-d map:\n1 2 3\n",
			wantLine: 6,
			wantErr:  almanac.ErrBrokenChain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := almanac.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, a)
			require.ErrorIs(t, err, almanac.ErrMalformedInput)

			var parseErr *almanac.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.wantLine, parseErr.Line)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseError_Message(t *testing.T) {
	t.Parallel()

	_, err := almanac.Parse("seeds: 1\n\na-to-b map:\n1 2 z\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), `"z"`)
}
