package config

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full adds a commented entry for every puzzle in Puzzles.
	Full bool

	// Puzzles lists the solvers to document in a full template.
	Puzzles []PuzzleInfo
}

// PuzzleInfo contains puzzle metadata for template generation.
type PuzzleInfo struct {
	ID    string
	Name  string
	Title string
	Tags  []string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	fmt.Fprintf(&buf, `

# Directory holding puzzle inputs
input_dir: %s

# Input file name under input_dir. Placeholders:
#   {year} {day} (zero-padded) {day1} (unpadded) {id} {name}
input_pattern: %q

# Log level: debug, info, warn, or error
log_level: %s
`, DefaultInputDir, DefaultInputPattern, DefaultLogLevel)

	if !opts.Full || len(opts.Puzzles) == 0 {
		buf.WriteString(`
# Per-puzzle settings, keyed by ID or name
# puzzles:
#   2023-05:
#     input: inputs/seeds.txt
#   2022-01:
#     enabled: false
`)
		return buf.Bytes()
	}

	puzzles := slices.Clone(opts.Puzzles)
	slices.SortFunc(puzzles, func(a, b PuzzleInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	buf.WriteString("\n# Per-puzzle settings, keyed by ID or name\npuzzles:\n")
	for _, p := range puzzles {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", p.Name, p.Title)
		if len(p.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(p.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", p.ID)
		buf.WriteString("    enabled: true\n")
		buf.WriteString("    # input: path/to/input.txt\n")
	}

	return buf.Bytes()
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# goaoc configuration
# See: https://github.com/yaklabco/goaoc`
}
