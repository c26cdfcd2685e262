package reindeer

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/adventpath/grid"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("reindeer: grid is nil")

	// ErrNoPath indicates that no sequence of moves connects start to end
	// (within MaxCost, if one was set).
	ErrNoPath = errors.New("reindeer: no path from start to end")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reindeer: invalid option supplied")
)

// Default move costs.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// Options configures a search.
//
// Facing   – heading of the reindeer on the start cell.
// StepCost – cost of one move in the current heading; must be > 0.
// TurnCost – extra cost per 90° of rotation before a move; must be ≥ 0.
// MaxCost  – states whose cost would exceed this are never queued.
type Options struct {
	Facing   grid.Direction
	StepCost int64
	TurnCost int64
	MaxCost  int64

	// first invalid option, surfaced as ErrOptionViolation
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithFacing sets the initial heading.
func WithFacing(d grid.Direction) Option {
	return func(o *Options) {
		if d >= grid.NumDirections {
			o.fail("facing %d out of range", d)
			return
		}
		o.Facing = d
	}
}

// WithStepCost sets the cost of a straight move.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.fail("step cost must be positive, got %d", c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the extra cost of each 90° rotation.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail("turn cost must be non-negative, got %d", c)
			return
		}
		o.TurnCost = c
	}
}

// WithMaxCost caps the cost of explored states.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail("max cost must be non-negative, got %d", c)
			return
		}
		o.MaxCost = c
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// maxRepresentable is the largest cost a state may carry; math.MaxInt64
// itself marks unreached states.
const maxRepresentable = math.MaxInt64 - 1

// validate checks option combinations that no single Option can see:
// the dearest move, a reversal, must fit in an int64 cost.
func (o *Options) validate() {
	if o.StepCost > maxRepresentable || o.TurnCost > (maxRepresentable-o.StepCost)/2 {
		o.fail("step cost %d with turn cost %d overflows a reversal", o.StepCost, o.TurnCost)
	}
	if o.MaxCost > maxRepresentable {
		o.MaxCost = maxRepresentable
	}
}

// DefaultOptions returns the puzzle rules: facing east, step 1, turn 1000, no cap.
func DefaultOptions() Options {
	return Options{
		Facing:   grid.East,
		StepCost: DefaultStepCost,
		TurnCost: DefaultTurnCost,
		MaxCost:  math.MaxInt64,
	}
}

// edgeCost is the price of moving one cell in heading to while facing from.
func (o Options) edgeCost(from, to grid.Direction) int64 {
	switch {
	case to == from:
		return o.StepCost
	case to == from.Reverse():
		return o.StepCost + 2*o.TurnCost
	default:
		return o.StepCost + o.TurnCost
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Cost is the minimum cost to reach the end cell in any heading.
	Cost int64
	// Tiles lists, in ascending order, every cell offset lying on at least
	// one minimum-cost path, start and end included.
	Tiles []int
	// Expanded counts settled states.
	Expanded int

	g      *grid.Grid
	onPath []bool
}

// TileCount returns the number of distinct cells on optimal paths.
func (r *Result) TileCount() int { return len(r.Tiles) }

// Contains reports whether cell i lies on some optimal path.
func (r *Result) Contains(i int) bool {
	return i >= 0 && i < len(r.onPath) && r.onPath[i]
}

// Render draws the maze with optimal tiles marked 'O'.
func (r *Result) Render() string {
	return r.g.Render(r.Contains)
}
