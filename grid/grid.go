package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from puzzle text, one row per line.
// Blank lines are skipped and a trailing '\r' on each line is dropped.
//
// Returns ErrEmptyGrid if no rows remain, ErrNonRectangular if any row
// length differs, and (unless WithoutMarkers is given) ErrNoStart,
// ErrNoEnd or ErrDuplicateMarker when the markers are not unique.
//
// Complexity: O(W×H) time and memory.
func Parse(text string, opts ...Option) (*Grid, error) {
	// 1) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Keep non-blank rows only.
	rows := make([]string, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	// 3) The first row fixes the width; every cell is tagged as it is copied.
	h, w := len(rows), len(rows[0])
	g := &Grid{
		Width:  w,
		Height: h,
		Start:  -1,
		End:    -1,
		cells:  make([]Kind, w*h),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			i := g.Index(x, y)
			k := kindOf(row[x])
			g.cells[i] = k
			switch k {
			case Start:
				if g.Start >= 0 && cfg.RequireMarkers {
					return nil, fmt.Errorf("%w: second 'S' at (%d,%d)", ErrDuplicateMarker, x, y)
				}
				g.Start = i
			case End:
				if g.End >= 0 && cfg.RequireMarkers {
					return nil, fmt.Errorf("%w: second 'E' at (%d,%d)", ErrDuplicateMarker, x, y)
				}
				g.End = i
			}
		}
	}

	// 4) Both markers must be present unless the caller opted out.
	if cfg.RequireMarkers {
		if g.Start < 0 {
			return nil, ErrNoStart
		}
		if g.End < 0 {
			return nil, ErrNoEnd
		}
	}

	return g, nil
}

// New returns a width×height grid of Open cells with no markers.
// It panics if either dimension is not positive.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(ErrEmptyGrid.Error())
	}
	return &Grid{
		Width:  width,
		Height: height,
		Start:  -1,
		End:    -1,
		cells:  make([]Kind, width*height),
	}
}

// Len returns the number of cells, W×H.
func (g *Grid) Len() int { return len(g.cells) }

// Index maps (x,y) to a row-major offset: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major offset back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Kind returns the kind of cell i.
func (g *Grid) Kind(i int) Kind { return g.cells[i] }

// Passable reports whether cell i can be entered.
func (g *Grid) Passable(i int) bool { return g.cells[i].Passable() }

// SetWall turns cell i into a wall.
func (g *Grid) SetWall(i int) { g.cells[i] = Wall }

// Step returns the offset of the neighbour of cell i in direction d.
// Complexity: O(1).
// ok is false when that neighbour lies outside the grid; it says nothing
// about whether the neighbour is passable.
func (g *Grid) Step(i int, d Direction) (j int, ok bool) {
	x, y := g.Coordinate(i)
	dx, dy := d.Offset()
	nx, ny := x+dx, y+dy
	if !g.InBounds(nx, ny) {
		return -1, false
	}
	return g.Index(nx, ny), true
}

// Render draws the grid using the input alphabet. Open cells for which
// mark returns true are drawn as 'O'; markers and walls are never overdrawn.
// A nil mark draws the plain grid.
// Complexity: O(W×H).
func (g *Grid) Render(mark func(i int) bool) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.Index(x, y)
			k := g.cells[i]
			if k == Open && mark != nil && mark(i) {
				sb.WriteByte('O')
				continue
			}
			sb.WriteByte(k.Byte())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
