package reindeer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventpath/grid"
)

// firstMaze is the smaller puzzle sample: cost 7036, 45 optimal tiles.
const firstMaze = `###############
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

// secondMaze is the larger puzzle sample: cost 11048, 64 optimal tiles.
const secondMaze = `#################
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

// elbowMaze is a 15×15 grid with one forced left turn: eight cells east
// (S included, corner included), then six more cells north ending on E.
const elbowMaze = `###############
###############
###############
###############
###############
###############
###############
########E######
########.######
########.######
########.######
########.######
########.######
#S.......######
###############
`

// mustParse parses text or fails the test.
func mustParse(tb testing.TB, text string) *grid.Grid {
	tb.Helper()
	g, err := grid.Parse(text)
	require.NoError(tb, err)

	return g
}
