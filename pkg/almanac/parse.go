package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInput is wrapped by every parse failure.
var ErrMalformedInput = errors.New("malformed almanac")

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	domainSep    = "-to-"
	maxLineBytes = 1 << 20
)

// ParseError reports the 1-based line a parse failure was detected on.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap exposes ErrMalformedInput and the underlying cause, if any.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedInput, e.Err}
	}
	return []error{ErrMalformedInput}
}

// block is a table being collected.
type block struct {
	line  int
	from  string
	to    string
	rules []Rule
}

// Parse reads the seed line and every map block of an almanac.
//
// Blocks normally end at a blank line; a new header also closes the
// current block.
func Parse(input string) (*Almanac, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	var (
		lineNo  int
		seeds   []uint64
		seen    bool
		current *block
		tables  []*Table
	)

	closeBlock := func() error {
		if current == nil {
			return nil
		}
		defer func() { current = nil }()

		if len(current.rules) == 0 {
			return &ParseError{Line: current.line, Msg: fmt.Sprintf("map %s-to-%s has no rules", current.from, current.to)}
		}
		if n := len(tables); n > 0 && tables[n-1].To != current.from {
			return &ParseError{
				Line: current.line,
				Msg:  fmt.Sprintf("map %s-to-%s does not follow %s", current.from, current.to, tables[n-1].Name()),
				Err:  ErrBrokenChain,
			}
		}
		table, err := NewTable(current.from, current.to, current.rules)
		if err != nil {
			return &ParseError{Line: current.line, Msg: "invalid map", Err: err}
		}
		tables = append(tables, table)
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimSuffix(scanner.Text(), "\r"))

		switch {
		case line == "":
			if err := closeBlock(); err != nil {
				return nil, err
			}

		case !seen:
			values, err := parseSeeds(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "invalid seed line", Err: err}
			}
			seeds, seen = values, true

		case strings.HasSuffix(line, headerSuffix):
			if err := closeBlock(); err != nil {
				return nil, err
			}
			from, to, err := parseHeader(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "invalid map header", Err: err}
			}
			current = &block{line: lineNo, from: from, to: to}

		case current == nil:
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unexpected %q outside of a map block", line)}

		default:
			rule, err := parseRule(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "invalid rule", Err: err}
			}
			current.rules = append(current.rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Msg: "read input", Err: err}
	}
	if err := closeBlock(); err != nil {
		return nil, err
	}

	if !seen {
		return nil, &ParseError{Line: lineNo, Msg: "missing seed line"}
	}
	if len(tables) == 0 {
		return nil, &ParseError{Line: lineNo, Msg: "no maps found"}
	}

	pipeline, err := NewPipeline(tables...)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Msg: "invalid pipeline", Err: err}
	}

	return &Almanac{Seeds: seeds, Pipeline: pipeline}, nil
}

func parseSeeds(line string) ([]uint64, error) {
	rest, ok := strings.CutPrefix(line, seedsPrefix)
	if !ok {
		return nil, fmt.Errorf("expected %q prefix", seedsPrefix)
	}
	return parseNumbers(rest)
}

func parseHeader(line string) (string, string, error) {
	name := strings.TrimSpace(strings.TrimSuffix(line, headerSuffix))
	from, to, ok := strings.Cut(name, domainSep)
	if !ok || from == "" || to == "" || strings.ContainsAny(name, " \t") {
		return "", "", fmt.Errorf("expected <from>-to-<to>, got %q", name)
	}
	return from, to, nil
}

func parseRule(line string) (Rule, error) {
	values, err := parseNumbers(line)
	if err != nil {
		return Rule{}, err
	}
	if len(values) != 3 {
		return Rule{}, fmt.Errorf("expected 3 numbers (destination source length), got %d", len(values))
	}
	return Rule{Destination: values[0], Source: values[1], Length: values[2]}, nil
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	values := make([]uint64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an unsigned integer", field)
		}
		values = append(values, v)
	}
	return values, nil
}
