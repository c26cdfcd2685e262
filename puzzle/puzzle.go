package puzzle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Sentinel errors for the registry.
var (
	// ErrUnknownDay indicates no Day is registered for a (year, number).
	ErrUnknownDay = errors.New("puzzle: day not registered")
	// ErrDuplicateDay indicates a second registration for the same (year, number).
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrInvalidDay indicates a Day without a year, number in 1..25, or Solve func.
	ErrInvalidDay = errors.New("puzzle: invalid day")
)

// Answer holds both parts of a day's solution.
type Answer struct {
	Part1, Part2 string
	// Drawing is an optional rendering of the solution, empty when the day has none.
	Drawing string
}

// SolveFunc computes an Answer from raw puzzle text.
type SolveFunc func(ctx context.Context, input string) (Answer, error)

// Day is one registered puzzle.
type Day struct {
	Year   int
	Number int
	Title  string
	Solve  SolveFunc
}

// Name returns "<year>/day<NN>".
func (d Day) Name() string { return fmt.Sprintf("%d/day%02d", d.Year, d.Number) }

type key struct{ year, number int }

var registry = struct {
	sync.RWMutex
	days map[key]Day
}{days: make(map[key]Day)}

// Register adds d to the registry.
func Register(d Day) error {
	if d.Year <= 0 || d.Number < 1 || d.Number > 25 || d.Solve == nil {
		return fmt.Errorf("%w: %+v", ErrInvalidDay, d)
	}
	registry.Lock()
	defer registry.Unlock()

	k := key{d.Year, d.Number}
	if _, ok := registry.days[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDay, d.Name())
	}
	registry.days[k] = d

	return nil
}

// MustRegister is Register for init functions; it panics on error.
func MustRegister(d Day) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the Day registered for (year, number).
func Lookup(year, number int) (Day, error) {
	registry.RLock()
	defer registry.RUnlock()

	d, ok := registry.days[key{year, number}]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d/day%02d", ErrUnknownDay, year, number)
	}

	return d, nil
}

// All returns every registered Day ordered by year, then number.
func All() []Day {
	registry.RLock()
	days := make([]Day, 0, len(registry.days))
	for _, d := range registry.days {
		days = append(days, d)
	}
	registry.RUnlock()

	sort.Slice(days, func(i, j int) bool {
		if days[i].Year != days[j].Year {
			return days[i].Year < days[j].Year
		}
		return days[i].Number < days[j].Number
	})

	return days
}

// InputPath returns <dir>/<year>/dayNN.txt.
func InputPath(dir string, year, number int) string {
	return filepath.Join(dir, fmt.Sprint(year), fmt.Sprintf("day%02d.txt", number))
}

// ReadInput loads the input file for (year, number) from dir.
func ReadInput(dir string, year, number int) (string, error) {
	b, err := os.ReadFile(InputPath(dir, year, number))
	if err != nil {
		return "", fmt.Errorf("puzzle: reading input for %d/day%02d: %w", year, number, err)
	}

	return string(b), nil
}

// Run reads the input for d from dir and solves it.
func Run(ctx context.Context, d Day, dir string) (Answer, error) {
	input, err := ReadInput(dir, d.Year, d.Number)
	if err != nil {
		return Answer{}, err
	}

	return d.Solve(ctx, input)
}
