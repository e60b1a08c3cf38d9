package solutions

import (
	"context"
	"strconv"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// partNumber is a horizontal run of digits on the schematic.
type partNumber struct {
	row        int
	start, end int // byte columns, end exclusive
	value      uint64
}

type cell struct {
	row, col int
}

// GearRatios solves 2023-03: numbers adjacent to a symbol, including
// diagonally, are part numbers. A '*' touching exactly two of them is a gear.
type GearRatios struct {
	puzzle.BasePuzzle
}

// NewGearRatios creates the 2023-03 solver.
func NewGearRatios() *GearRatios {
	return &GearRatios{
		BasePuzzle: puzzle.NewBasePuzzle(2023, 3, "gear-ratios", "Gear Ratios", []string{"grid"}),
	}
}

// Solve sums all part numbers and all gear ratios.
func (s *GearRatios) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	grid := lines(input)
	if len(grid) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	numbers, err := scanPartNumbers(grid)
	if err != nil {
		return puzzle.Answer{}, err
	}

	var answer puzzle.Answer
	gears := make(map[cell][]uint64)

	for _, n := range numbers {
		if err := ctx.Err(); err != nil {
			return puzzle.Answer{}, err
		}

		isPart := false
		for row := n.row - 1; row <= n.row+1; row++ {
			if row < 0 || row >= len(grid) {
				continue
			}
			for col := n.start - 1; col <= n.end; col++ {
				if col < 0 || col >= len(grid[row]) || !isSymbol(grid[row][col]) {
					continue
				}
				isPart = true
				if grid[row][col] == '*' {
					at := cell{row: row, col: col}
					gears[at] = append(gears[at], n.value)
				}
			}
		}
		if isPart {
			answer.PartOne += n.value
		}
	}

	for _, adjacent := range gears {
		if len(adjacent) == 2 {
			answer.PartTwo += adjacent[0] * adjacent[1]
		}
	}

	return answer, nil
}

func scanPartNumbers(grid []string) ([]partNumber, error) {
	var out []partNumber
	for row, line := range grid {
		for col := 0; col < len(line); {
			if !isDigit(line[col]) {
				col++
				continue
			}
			start := col
			for col < len(line) && isDigit(line[col]) {
				col++
			}
			value, err := strconv.ParseUint(line[start:col], 10, 64)
			if err != nil {
				return nil, malformed(row+1, "number at column %d: %v", start+1, err)
			}
			out = append(out, partNumber{row: row, start: start, end: col, value: value})
		}
	}
	return out, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && c != ' ' && c != '\t' && !isDigit(c)
}
