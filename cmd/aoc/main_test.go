package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventpath/puzzle"
)

const maze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()

	return out.String(), err
}

func writeInput(t *testing.T, dir string, year, day int, text string) {
	t.Helper()
	path := puzzle.InputPath(dir, year, day)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func TestRun_InputFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(file, []byte(maze), 0o644))

	out, err := execute(t, "run", "16", "--input", file)
	require.NoError(t, err)
	assert.Equal(t, "Part 1 Answer: 11048\nPart 2 Answer: 64\n", out)
}

func TestRun_InputDirAndDraw(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2024, 16, "#######\n#S...E#\n#######\n")

	out, err := execute(t, "run", "day16", "--input-dir", dir, "--draw")
	require.NoError(t, err)
	assert.Equal(t, "#######\n#SOOOE#\n#######\nPart 1 Answer: 4\nPart 2 Answer: 5\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "sixteen")
	assert.Error(t, err)

	_, err = execute(t, "run", "3")
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, err = execute(t, "run", "16", "--input-dir", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2024/day16\tReindeer Maze\n")
	assert.Contains(t, out, "2024/day20\tRace Condition\n")
}

// TestAll_ReportsEachDay checks that a missing input fails only its own day.
func TestAll_ReportsEachDay(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2024, 16, maze)

	out, err := execute(t, "all", "--input-dir", dir)
	assert.Error(t, err)
	assert.Contains(t, out, "== 2024/day16: Reindeer Maze\nPart 1 Answer: 11048\nPart 2 Answer: 64\n")
	assert.Contains(t, out, "== 2024/day18: RAM Run\n")
}

func TestAll_UnknownYear(t *testing.T) {
	_, err := execute(t, "all", "--year", "1999")
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}
