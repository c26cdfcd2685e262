package memspace

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/adventpath/grid"
)

// Sentinel errors for memory-space searches.
var (
	// ErrBadCoordinate indicates an input line that is not "x,y".
	ErrBadCoordinate = errors.New("memspace: malformed coordinate")
	// ErrOutOfBounds indicates a byte that falls outside the region.
	ErrOutOfBounds = errors.New("memspace: coordinate outside region")
	// ErrFallenRange indicates a byte count beyond the number of known bytes.
	ErrFallenRange = errors.New("memspace: fallen byte count out of range")
	// ErrNoPath indicates the exit cannot be reached.
	ErrNoPath = errors.New("memspace: exit unreachable")
	// ErrNeverBlocked indicates the exit stays reachable after every byte falls.
	ErrNeverBlocked = errors.New("memspace: exit never blocked")
)

// Point is a byte position.
type Point struct {
	X, Y int
}

// String formats p as "x,y", the puzzle's answer format.
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Parse reads one "x,y" pair per non-blank line, in falling order.
func Parse(text string) ([]Point, error) {
	var pts []Point
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, n+1, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, n+1, line)
		}
		pts = append(pts, Point{X: x, Y: y})
	}

	return pts, nil
}

// Space is a memory region with a known sequence of falling bytes.
type Space struct {
	Width, Height int
	bytes         []Point
}

// New validates that every byte lands inside a width×height region.
func New(width, height int, bytes []Point) (*Space, error) {
	if width <= 0 || height <= 0 {
		return nil, grid.ErrEmptyGrid
	}
	for i, p := range bytes {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return nil, fmt.Errorf("%w: byte %d at %s", ErrOutOfBounds, i, p)
		}
	}

	return &Space{Width: width, Height: height, bytes: bytes}, nil
}

// Bytes returns the number of known falling bytes.
func (s *Space) Bytes() int { return len(s.bytes) }

// Corrupted returns the region after the first fallen bytes, as a grid
// whose walls are the corrupted cells.
func (s *Space) Corrupted(fallen int) (*grid.Grid, error) {
	if fallen < 0 || fallen > len(s.bytes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFallenRange, fallen, len(s.bytes))
	}
	g := grid.New(s.Width, s.Height)
	for _, p := range s.bytes[:fallen] {
		g.SetWall(g.Index(p.X, p.Y))
	}

	return g, nil
}

// ShortestPath returns the minimum number of steps from the top-left to
// the bottom-right corner after the first fallen bytes have landed.
func (s *Space) ShortestPath(fallen int) (int, error) {
	g, err := s.Corrupted(fallen)
	if err != nil {
		return 0, err
	}
	steps := walk(g, 0, g.Len()-1)
	if steps < 0 {
		return 0, ErrNoPath
	}

	return steps, nil
}

// FirstBlocking returns the first byte after which the exit is unreachable.
func (s *Space) FirstBlocking() (Point, error) {
	if _, err := s.ShortestPath(len(s.bytes)); err == nil {
		return Point{}, ErrNeverBlocked
	}
	// n ≥ 1: with nothing fallen the corners are always connected.
	n := sort.Search(len(s.bytes)+1, func(n int) bool {
		_, err := s.ShortestPath(n)
		return errors.Is(err, ErrNoPath)
	})

	return s.bytes[n-1], nil
}

// walk is a breadth-first search returning the step count from src to dst,
// or -1 when dst is unreachable or either endpoint is corrupted.
func walk(g *grid.Grid, src, dst int) int {
	if !g.Passable(src) || !g.Passable(dst) {
		return -1
	}
	depth := make([]int, g.Len())
	for i := range depth {
		depth[i] = -1
	}
	depth[src] = 0
	queue := make([]int, 0, g.Len())
	queue = append(queue, src)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return depth[u]
		}
		for _, d := range grid.Directions {
			v, ok := g.Step(u, d)
			if !ok || !g.Passable(v) || depth[v] >= 0 {
				continue
			}
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}

	return -1
}
