package racetrack

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/adventpath/grid"
)

// Sentinel errors for track construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("racetrack: grid is nil")
	// ErrBranchingTrack indicates a cell with more than one way forward.
	ErrBranchingTrack = errors.New("racetrack: track branches")
	// ErrBrokenTrack indicates the lane dead-ends before reaching 'E'.
	ErrBrokenTrack = errors.New("racetrack: track does not reach the end")
)

// Track is the ordered sequence of cells from start to end.
type Track struct {
	g     *grid.Grid
	order []int   // rank → cell offset
	rank  []int32 // cell offset → rank, -1 off the track
}

// New walks the lane from g.Start to g.End.
func New(g *grid.Grid) (*Track, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Start < 0 {
		return nil, grid.ErrNoStart
	}
	if g.End < 0 {
		return nil, grid.ErrNoEnd
	}

	t := &Track{
		g:    g,
		rank: make([]int32, g.Len()),
	}
	for i := range t.rank {
		t.rank[i] = -1
	}

	cur := g.Start
	for {
		t.rank[cur] = int32(len(t.order))
		t.order = append(t.order, cur)
		if cur == g.End {
			break
		}

		next := -1
		for _, d := range grid.Directions {
			j, ok := g.Step(cur, d)
			if !ok || !g.Passable(j) || t.rank[j] >= 0 {
				continue
			}
			if next >= 0 {
				x, y := g.Coordinate(cur)
				return nil, fmt.Errorf("%w: at (%d,%d)", ErrBranchingTrack, x, y)
			}
			next = j
		}
		if next < 0 {
			x, y := g.Coordinate(cur)
			return nil, fmt.Errorf("%w: dead end at (%d,%d)", ErrBrokenTrack, x, y)
		}
		cur = next
	}

	return t, nil
}

// Len returns the race time without cheating, in picoseconds.
func (t *Track) Len() int { return len(t.order) - 1 }

// Cell returns the cell offset at the given rank.
func (t *Track) Cell(rank int) int { return t.order[rank] }

// Rank returns the rank of cell i, or -1 if i is not on the track.
func (t *Track) Rank(i int) int { return int(t.rank[i]) }

// Cheats returns a histogram mapping time saved to the number of distinct
// cheats (start rank, end rank) of length at most maxJump that save at
// least minSave picoseconds.
func (t *Track) Cheats(maxJump, minSave int) map[int]int {
	saved := make(map[int]int)
	t.eachCheat(maxJump, minSave, func(s int) { saved[s]++ })

	return saved
}

// CountCheats returns the number of cheats Cheats would report.
func (t *Track) CountCheats(maxJump, minSave int) int {
	n := 0
	t.eachCheat(maxJump, minSave, func(int) { n++ })

	return n
}

// jump is one cheat offset; length is its Manhattan distance in rank units.
type jump struct {
	dx, dy int
	length int32
}

// diamond lists every offset within Manhattan distance maxJump, the origin excluded.
func diamond(maxJump int) []jump {
	var out []jump
	for dy := -maxJump; dy <= maxJump; dy++ {
		span := maxJump - abs(dy)
		for dx := -span; dx <= span; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, jump{dx: dx, dy: dy, length: abs(int32(dx)) + abs(int32(dy))})
		}
	}

	return out
}

// eachCheat calls fn with the saving of every cheat worth at least minSave.
// Complexity: O(N·J) where J is the diamond size.
func (t *Track) eachCheat(maxJump, minSave int, fn func(saved int)) {
	if minSave < 1 {
		// Zero-gain jumps are just walking the track.
		minSave = 1
	}
	jumps := diamond(maxJump)
	for _, cell := range t.order {
		x, y := t.g.Coordinate(cell)
		from := t.rank[cell]
		for _, j := range jumps {
			nx, ny := x+j.dx, y+j.dy
			if !t.g.InBounds(nx, ny) {
				continue
			}
			to := t.rank[t.g.Index(nx, ny)]
			if to <= from {
				continue
			}
			if s := int(to - from - j.length); s >= minSave {
				fn(s)
			}
		}
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
