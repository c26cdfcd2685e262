// Package racetrack counts shortcuts ("cheats") on a single-lane race track.
//
// The track is a grid with exactly one path from 'S' to 'E' and no forks.
// New walks it once and stores the cells in race order; a cell's rank in
// that sequence is its time from the start. A cheat lets a racer leave the
// track at rank i and rejoin at rank j > i after moving d cells in a
// straight Manhattan line, walls ignored, with d ≤ maxJump. It saves
// (j - i) - d picoseconds.
//
// Complexity:
//
//   - New:    O(W×H).
//   - Cheats: O(L×J²), L = track length, J = maxJump.
package racetrack
