package puzzle

import (
	"context"
	"strconv"

	"github.com/katalvlaran/adventpath/grid"
	"github.com/katalvlaran/adventpath/memspace"
	"github.com/katalvlaran/adventpath/racetrack"
	"github.com/katalvlaran/adventpath/reindeer"
)

// Puzzle constants for the 2024 inputs.
const (
	memorySize    = 71
	memoryFallen  = 1024
	shortCheat    = 2
	longCheat     = 20
	cheatMinSaved = 100
)

func init() {
	MustRegister(Day{Year: 2024, Number: 16, Title: "Reindeer Maze", Solve: solveReindeerMaze})
	MustRegister(Day{Year: 2024, Number: 18, Title: "RAM Run", Solve: solveRAMRun})
	MustRegister(Day{Year: 2024, Number: 20, Title: "Race Condition", Solve: solveRaceCondition})
}

func solveReindeerMaze(ctx context.Context, input string) (Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	cost, err := reindeer.ShortestCost(g)
	if err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	res, err := reindeer.Solve(g)
	if err != nil {
		return Answer{}, err
	}

	return Answer{
		Part1:   strconv.FormatInt(cost, 10),
		Part2:   strconv.Itoa(res.TileCount()),
		Drawing: res.Render(),
	}, nil
}

func solveRAMRun(ctx context.Context, input string) (Answer, error) {
	pts, err := memspace.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	space, err := memspace.New(memorySize, memorySize, pts)
	if err != nil {
		return Answer{}, err
	}
	steps, err := space.ShortestPath(min(memoryFallen, space.Bytes()))
	if err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	blocker, err := space.FirstBlocking()
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part1: strconv.Itoa(steps), Part2: blocker.String()}, nil
}

func solveRaceCondition(ctx context.Context, input string) (Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return Answer{}, err
	}
	track, err := racetrack.New(g)
	if err != nil {
		return Answer{}, err
	}
	short := track.CountCheats(shortCheat, cheatMinSaved)
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	long := track.CountCheats(longCheat, cheatMinSaved)

	return Answer{Part1: strconv.Itoa(short), Part2: strconv.Itoa(long)}, nil
}
