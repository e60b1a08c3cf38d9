package solutions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// cubeSet counts cubes by color.
type cubeSet struct {
	red, green, blue uint64
}

func (c cubeSet) fits(bag cubeSet) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubeSet) power() uint64 {
	return c.red * c.green * c.blue
}

// CubeConundrum solves 2023-02: each game reveals handfuls of colored cubes
// drawn from a bag.
type CubeConundrum struct {
	puzzle.BasePuzzle

	bag cubeSet
}

// NewCubeConundrum creates the 2023-02 solver for a bag of 12 red, 13 green
// and 14 blue cubes.
func NewCubeConundrum() *CubeConundrum {
	return &CubeConundrum{
		BasePuzzle: puzzle.NewBasePuzzle(2023, 2, "cube-conundrum", "Cube Conundrum", []string{"parsing"}),
		bag:        cubeSet{red: 12, green: 13, blue: 14},
	}
}

// Solve sums the IDs of games possible with the bag, and the power of the
// minimum cube set of every game.
func (s *CubeConundrum) Solve(_ context.Context, input string) (puzzle.Answer, error) {
	var (
		answer puzzle.Answer
		games  int
	)

	for i, line := range lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, needed, err := parseGame(line)
		if err != nil {
			return puzzle.Answer{}, malformed(i+1, "%v", err)
		}
		games++

		if needed.fits(s.bag) {
			answer.PartOne += id
		}
		answer.PartTwo += needed.power()
	}

	if games == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}
	return answer, nil
}

// parseGame reads "Game N: 3 blue, 4 red; 1 red" and returns the game ID and
// the fewest cubes of each color that make every draw possible.
func parseGame(line string) (uint64, cubeSet, error) {
	head, draws, ok := strings.Cut(line, ":")
	if !ok {
		return 0, cubeSet{}, errors.New("missing ':' after game header")
	}

	label, idText, ok := strings.Cut(strings.TrimSpace(head), " ")
	if !ok || label != "Game" {
		return 0, cubeSet{}, errors.New("game header must look like \"Game N\"")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return 0, cubeSet{}, fmt.Errorf("game id %q is not a number", idText)
	}

	var needed cubeSet
	for draw := range strings.SplitSeq(draws, ";") {
		for cube := range strings.SplitSeq(draw, ",") {
			fields := strings.Fields(cube)
			if len(fields) != 2 {
				return 0, cubeSet{}, fmt.Errorf("cube count %q must be \"N color\"", strings.TrimSpace(cube))
			}
			n, err := strconv.ParseUint(fields[0], 10, 64)
			if err != nil {
				return 0, cubeSet{}, fmt.Errorf("cube count %q is not a number", fields[0])
			}
			switch fields[1] {
			case "red":
				needed.red = max(needed.red, n)
			case "green":
				needed.green = max(needed.green, n)
			case "blue":
				needed.blue = max(needed.blue, n)
			default:
				return 0, cubeSet{}, fmt.Errorf("unknown cube color %q", fields[1])
			}
		}
	}

	return id, needed, nil
}
