// Package puzzle keeps the registry of solved days and loads their inputs.
//
// Every day registers a Day value from an init function. A Day's Solve
// receives the raw puzzle text and returns both answers as strings, since
// some puzzles answer with coordinates rather than numbers.
//
// Inputs live under <dir>/<year>/dayNN.txt.
package puzzle
