// Package reindeer solves turn-penalized shortest paths through a grid maze.
//
// A reindeer starts on the 'S' cell facing a given heading (east by default)
// and must reach 'E'. Moving forward costs StepCost; moving after a 90° turn
// costs StepCost+TurnCost; moving after a full reversal costs
// StepCost+2*TurnCost. With the defaults that is 1, 1001 and 2001.
//
// The heading is folded into the search state, so the graph searched is
// (cell, direction) with four states per cell, addressed as
// cell*grid.NumDirections + direction in flat slices. Edges are implicit:
// every passable orthogonal neighbour is reachable from every state.
//
// Two entry points share one runner:
//
//   - ShortestCost stops as soon as any end state is settled.
//   - Solve keeps every equal-cost predecessor of each state and runs until
//     the frontier minimum exceeds the best end cost; walking those
//     predecessor lists backwards from the optimal end states yields the
//     set of tiles lying on at least one minimum-cost path.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4×W×H states; each state is expanded at most once.
//   - Space: O(S) for costs and settled flags, plus O(S) predecessor links in Solve.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved states are pushed again and stale heap
//     entries are skipped when popped.
//   - A state is only touched by an arrival whose cost is ≤ its best known
//     cost; equal-cost arrivals add a predecessor without re-queueing, which
//     bounds revisits.
//
// Errors:
//
//   - ErrNilGrid, ErrNoPath, ErrOptionViolation, and grid.ErrNoStart /
//     grid.ErrNoEnd for grids built without markers.
package reindeer
