// Package memspace finds routes across a square memory region while bytes
// fall into it and corrupt cells one at a time.
//
// The region is a Width×Height grid; the walker starts at (0,0) and exits
// at (Width-1, Height-1). After the first n bytes have fallen, ShortestPath
// runs a breadth-first search over the remaining cells. FirstBlocking
// binary-searches n for the first byte that cuts the exit off.
//
// Complexity:
//
//   - ShortestPath:  O(W×H).
//   - FirstBlocking: O(W×H × log B), B = number of bytes.
package memspace
