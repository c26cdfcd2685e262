package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input text has no non-blank rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNoStart indicates the 'S' marker is absent.
	ErrNoStart = errors.New("grid: start marker not found")
	// ErrNoEnd indicates the 'E' marker is absent.
	ErrNoEnd = errors.New("grid: end marker not found")
	// ErrDuplicateMarker indicates 'S' or 'E' appears more than once.
	ErrDuplicateMarker = errors.New("grid: marker appears more than once")
	// ErrBadDirection indicates a heading name that ParseDirection does not know.
	ErrBadDirection = errors.New("grid: unknown direction")
)

// Kind is the explicit discriminant of a cell.
type Kind uint8

const (
	// Open is a walkable floor cell.
	Open Kind = iota
	// Wall blocks movement.
	Wall
	// Start is the walkable cell marked 'S'.
	Start
	// End is the walkable cell marked 'E'.
	End
)

// Passable reports whether a cell of this kind can be entered.
func (k Kind) Passable() bool { return k != Wall }

// Byte returns the input character for k.
func (k Kind) Byte() byte {
	switch k {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '.'
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// kindOf maps one input byte to its Kind.
func kindOf(b byte) Kind {
	switch b {
	case '#':
		return Wall
	case 'S':
		return Start
	case 'E':
		return End
	default:
		return Open
	}
}

// Direction is one of the four orthogonal headings, numbered clockwise.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// NumDirections is the number of headings; states are keyed cell*NumDirections + dir.
const NumDirections = 4

// Directions lists every heading in clockwise order starting at North.
var Directions = [NumDirections]Direction{North, East, South, West}

// offsets holds (dx, dy) per heading; y grows downwards.
var offsets = [NumDirections][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the (dx, dy) step for d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d%NumDirections]
	return o[0], o[1]
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) % NumDirections }

// IsTurnFrom reports whether d is a 90° turn away from other.
func (d Direction) IsTurnFrom(other Direction) bool {
	return d != other && d != other.Reverse()
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection accepts a heading name ("east") or its initial ("E"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Options holds parser settings.
type Options struct {
	// RequireMarkers rejects grids without exactly one 'S' and one 'E'.
	RequireMarkers bool
}

// Option configures Parse.
type Option func(*Options)

// WithoutMarkers disables the start/end marker check.
func WithoutMarkers() Option {
	return func(o *Options) {
		o.RequireMarkers = false
	}
}

// DefaultOptions returns Options with RequireMarkers enabled.
func DefaultOptions() Options {
	return Options{RequireMarkers: true}
}

// Grid is a W×H cell array; cells[y*Width+x] holds the Kind at (x, y).
// Parse output is never modified; only grids from New are mutated, via SetWall.
// Start and End are cell offsets, or -1 when the marker is absent.
type Grid struct {
	Width, Height int
	Start, End    int
	cells         []Kind
}
