// Package grid turns puzzle text into a flat, row-major grid of typed cells.
//
// What:
//
//   - Grid stores one Kind per cell in a single slice indexed by y*Width + x.
//   - Parse reads '#' as Wall, 'S' as Start, 'E' as End and anything else as Open.
//   - Direction models the four orthogonal headings with Offset, Reverse and IsTurnFrom.
//   - Render draws the grid back to text, optionally overlaying a set of marked cells.
//
// Why:
//
//   - Maze solvers: every search package in this module (reindeer, racetrack,
//     memspace) addresses cells by integer offset, so neighbour lookups are
//     arithmetic instead of string-keyed map probes.
//   - Debugging: Render reproduces the input with a path drawn on top.
//
// Complexity:
//
//   - Parse:  O(W×H) time and memory.
//   - Step, Index, Coordinate, InBounds: O(1).
//   - Render: O(W×H).
//
// Options:
//
//   - WithoutMarkers(): accept grids that contain no 'S'/'E' markers.
//
// Errors:
//
//   - ErrEmptyGrid: input has no non-blank rows.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart / ErrNoEnd: the start or end marker is missing.
//   - ErrDuplicateMarker: a marker appears more than once.
package grid
