package reindeer

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/adventpath/grid"
)

// unreached marks a state whose cost is not yet known.
const unreached = math.MaxInt64

// ShortestCost returns the minimum cost of moving from the start cell to
// the end cell, arriving in any heading. The search stops as soon as the
// first end state is settled.
//
// Returns ErrNilGrid, ErrOptionViolation, grid.ErrNoStart/grid.ErrNoEnd for
// unmarked grids, or ErrNoPath when the end is unreachable.
func ShortestCost(g *grid.Grid, opts ...Option) (int64, error) {
	r, err := newRunner(g, opts, false)
	if err != nil {
		return 0, err
	}
	best := r.process()
	if best == unreached {
		return 0, ErrNoPath
	}

	return best, nil
}

// Solve computes the minimum cost together with every tile that lies on at
// least one minimum-cost path. Equal-cost arrivals at a state are all kept
// as predecessors; the search ends once the cheapest queued state costs more
// than the best end cost.
//
// Errors are the same as for ShortestCost.
func Solve(g *grid.Grid, opts ...Option) (*Result, error) {
	r, err := newRunner(g, opts, true)
	if err != nil {
		return nil, err
	}
	best := r.process()
	if best == unreached {
		return nil, ErrNoPath
	}

	res := &Result{
		Cost:     best,
		Expanded: r.expanded,
		g:        g,
	}
	res.onPath, res.Tiles = r.collectTiles(best)

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid
	options Options
	dist    []int64   // state → best known cost
	settled []bool    // state → cost is final
	preds   [][]int32 // state → equal-cost predecessor states; nil unless collecting tiles
	pq      statePQ
	// expanded counts settled states
	expanded int
}

// newRunner validates inputs, allocates per-state tables and seeds the
// heap with the start state.
//
// Validation order:
//  1. options, each alone and then in combination (ErrOptionViolation);
//  2. g non-nil (ErrNilGrid);
//  3. start and end markers present (grid.ErrNoStart, grid.ErrNoEnd).
//
// Complexity: O(W×H) time and memory.
func newRunner(g *grid.Grid, opts []Option, collect bool) (*runner, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err == nil {
		cfg.validate()
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Start < 0 {
		return nil, grid.ErrNoStart
	}
	if g.End < 0 {
		return nil, grid.ErrNoEnd
	}

	// 3) Four states per cell; every cost starts unreached.
	n := g.Len() * grid.NumDirections
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		settled: make([]bool, n),
		pq:      make(statePQ, 0, g.Len()),
	}
	if collect {
		r.preds = make([][]int32, n)
	}
	for i := range r.dist {
		r.dist[i] = unreached
	}

	// 4) The start state costs nothing.
	s := stateOf(g.Start, cfg.Facing)
	r.dist[s] = 0
	heap.Push(&r.pq, stateItem{state: s, cost: 0})

	return r, nil
}

// process runs the best-first loop and returns the cheapest end cost, or
// unreached if no end state was settled.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every reachable state settled).
//   - ShortestCost: the first end state is settled.
//   - Solve: the cheapest queued state costs more than the best end.
//
// Complexity: O(S log S), S = number of states.
func (r *runner) process() int64 {
	best := int64(unreached)
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state; skip entries left behind by later improvements.
		item := heap.Pop(&r.pq).(stateItem)
		if r.settled[item.state] {
			continue
		}

		// 2) Every remaining state costs more than the best end: no further optimal path.
		if item.cost > best {
			break
		}

		// 3) The cost of this state is now final.
		r.settled[item.state] = true
		r.expanded++

		// 4) End states are recorded, never expanded.
		cell, _ := splitState(item.state)
		if cell == r.g.End {
			if best == unreached {
				best = item.cost
			}
			if r.preds == nil {
				break
			}
			continue
		}

		// 5) Otherwise push its neighbours.
		r.relax(item)
	}

	return best
}

// relax pushes every neighbour state reachable from item.
// MaxCost never exceeds maxRepresentable, so the cap check below also
// keeps the addition from overflowing.
func (r *runner) relax(item stateItem) {
	cell, facing := splitState(item.state)
	for _, d := range grid.Directions {
		// 1) Only in-bounds, passable neighbours are edges.
		next, ok := r.g.Step(cell, d)
		if !ok || !r.g.Passable(next) {
			continue
		}

		// 2) Price the move; drop it if it would pass the cap.
		edge := r.options.edgeCost(facing, d)
		if item.cost > r.options.MaxCost-edge {
			continue
		}
		cost := item.cost + edge

		// 3) Strictly better replaces the predecessors, equal adds one.
		s := stateOf(next, d)
		switch {
		case cost < r.dist[s]:
			r.dist[s] = cost
			if r.preds != nil {
				r.preds[s] = append(r.preds[s][:0], int32(item.state))
			}
			heap.Push(&r.pq, stateItem{state: s, cost: cost})
		case cost == r.dist[s] && r.preds != nil:
			// Another optimal way in; s is already queued at this cost.
			r.preds[s] = append(r.preds[s], int32(item.state))
		}
	}
}

// collectTiles walks predecessor links back from every end state settled at
// cost best and marks the cells visited on the way.
//
// Complexity: O(S + P), P = number of predecessor links.
func (r *runner) collectTiles(best int64) ([]bool, []int) {
	onPath := make([]bool, r.g.Len())
	seen := make([]bool, len(r.dist))

	// 1) Seed with every heading in which the end was reached at cost best.
	var stack []int32
	for _, d := range grid.Directions {
		s := stateOf(r.g.End, d)
		if r.dist[s] == best {
			seen[s] = true
			stack = append(stack, int32(s))
		}
	}
	// 2) Depth-first over predecessor links; each state is pushed once.
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell, _ := splitState(int(s))
		onPath[cell] = true
		for _, p := range r.preds[s] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	// 3) Offsets in ascending order.
	tiles := make([]int, 0, 64)
	for i, ok := range onPath {
		if ok {
			tiles = append(tiles, i)
		}
	}

	return onPath, tiles
}

func stateOf(cell int, d grid.Direction) int {
	return cell*grid.NumDirections + int(d)
}

func splitState(s int) (cell int, d grid.Direction) {
	return s / grid.NumDirections, grid.Direction(s % grid.NumDirections)
}

// stateItem is a queued state and the cost at which it was reached.
type stateItem struct {
	state int
	cost  int64
}

// statePQ is a min-heap of stateItem ordered by cost. Ties are broken arbitrarily.
type statePQ []stateItem

func (pq statePQ) Len() int           { return len(pq) }
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq statePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(stateItem)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
