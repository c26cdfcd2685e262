package puzzle_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventpath/puzzle"
)

const maze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

func noop(context.Context, string) (puzzle.Answer, error) { return puzzle.Answer{}, nil }

func TestRegistry_BuiltinDays(t *testing.T) {
	days := puzzle.All()
	require.GreaterOrEqual(t, len(days), 3)

	var names []string
	for _, d := range days {
		names = append(names, d.Name())
	}
	assert.Subset(t, names, []string{"2024/day16", "2024/day18", "2024/day20"})

	for i := 1; i < len(days); i++ {
		prev, cur := days[i-1], days[i]
		assert.True(t, prev.Year < cur.Year || (prev.Year == cur.Year && prev.Number < cur.Number))
	}
}

func TestRegister_Errors(t *testing.T) {
	err := puzzle.Register(puzzle.Day{Year: 2024, Number: 16, Solve: noop})
	assert.ErrorIs(t, err, puzzle.ErrDuplicateDay)

	cases := []puzzle.Day{
		{Year: 0, Number: 1, Solve: noop},
		{Year: 2023, Number: 0, Solve: noop},
		{Year: 2023, Number: 26, Solve: noop},
		{Year: 2023, Number: 3},
	}
	for _, d := range cases {
		assert.ErrorIs(t, puzzle.Register(d), puzzle.ErrInvalidDay)
	}
	assert.Panics(t, func() { puzzle.MustRegister(puzzle.Day{}) })
}

func TestLookup_Unknown(t *testing.T) {
	_, err := puzzle.Lookup(1999, 1)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("in", "2024", "day07.txt"), puzzle.InputPath("in", 2024, 7))
}

func TestRun_ReindeerMaze(t *testing.T) {
	dir := t.TempDir()
	path := puzzle.InputPath(dir, 2024, 16)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(maze), 0o644))

	d, err := puzzle.Lookup(2024, 16)
	require.NoError(t, err)
	ans, err := puzzle.Run(context.Background(), d, dir)
	require.NoError(t, err)

	assert.Equal(t, "7036", ans.Part1)
	assert.Equal(t, "45", ans.Part2)
	assert.Contains(t, ans.Drawing, "S")
}

func TestRun_MissingInput(t *testing.T) {
	d, err := puzzle.Lookup(2024, 16)
	require.NoError(t, err)
	_, err = puzzle.Run(context.Background(), d, t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_Cancelled(t *testing.T) {
	d, err := puzzle.Lookup(2024, 16)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Solve(ctx, maze)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_BadInput(t *testing.T) {
	for _, n := range []int{16, 20} {
		d, err := puzzle.Lookup(2024, n)
		require.NoError(t, err)
		_, err = d.Solve(context.Background(), "")
		assert.Error(t, err, d.Name())
	}
	d, err := puzzle.Lookup(2024, 18)
	require.NoError(t, err)
	_, err = d.Solve(context.Background(), "nonsense")
	assert.Error(t, err)
}
