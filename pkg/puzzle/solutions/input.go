package solutions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// lines splits input into lines, dropping carriage returns and any trailing
// blank lines.
func lines(input string) []string {
	out := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return out
}

// malformed reports a format error on a 1-based line.
func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", line, puzzle.ErrMalformedInput, fmt.Sprintf(format, args...))
}

// numbers parses whitespace-separated unsigned integers.
func numbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}
