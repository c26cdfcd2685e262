// Package adventpath collects grid-puzzle solvers for Advent of Code style
// challenges, each in its own package, plus a small runner.
//
// What is inside:
//
//   - grid/      — parse character grids into a flat row-major cell array
//   - reindeer/  — turn-penalized maze search over (cell, heading) states:
//     minimum cost and every tile on a minimum-cost path
//   - racetrack/ — single-lane track ordering and shortcut ("cheat") counting
//   - memspace/  — breadth-first routes through a region filling with bytes
//   - puzzle/    — registry of solved days and input loading
//   - config/    — .env / environment settings for the runner
//   - cmd/aoc    — command-line runner printing "Part 1 Answer" and "Part 2 Answer"
//
// Quick ASCII example (reindeer, facing east on S):
//
//	#######
//	#...#E#     cost 1006: four steps east, one turn north (1000),
//	#.#.#.#     then two more steps; 7 tiles on the optimal path.
//	#S....#
//	#######
//
//	go run ./cmd/aoc run 16 --input maze.txt
package adventpath
