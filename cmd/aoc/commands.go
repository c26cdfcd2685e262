package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/adventpath/puzzle"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		inputFile string
		draw      bool
	)
	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve one day and print both answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(args[0]), "day"))
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], err)
			}
			day, err := puzzle.Lookup(opts.year, number)
			if err != nil {
				return err
			}

			var input string
			if inputFile != "" {
				b, err := os.ReadFile(inputFile)
				if err != nil {
					return err
				}
				input = string(b)
			} else {
				input, err = puzzle.ReadInput(opts.inputDir, day.Year, day.Number)
				if err != nil {
					return err
				}
			}

			start := time.Now()
			ans, err := day.Solve(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("%s: %w", day.Name(), err)
			}
			log.Printf("[AOC] [INFO] %s %q solved in %s", day.Name(), day.Title, time.Since(start).Round(time.Microsecond))

			out := cmd.OutOrStdout()
			if draw && ans.Drawing != "" {
				fmt.Fprint(out, ans.Drawing)
			}
			printAnswer(out, ans)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "read puzzle text from this file instead of the input directory")
	cmd.Flags().BoolVar(&draw, "draw", false, "print the solution drawing when the day has one")

	return cmd
}

func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every registered day of the selected year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var days []puzzle.Day
			for _, d := range puzzle.All() {
				if d.Year == opts.year {
					days = append(days, d)
				}
			}
			if len(days) == 0 {
				return fmt.Errorf("%w: no days for %d", puzzle.ErrUnknownDay, opts.year)
			}

			answers, errs := solveAll(cmd.Context(), days, opts.inputDir)

			out := cmd.OutOrStdout()
			failed := 0
			for i, d := range days {
				fmt.Fprintf(out, "== %s: %s\n", d.Name(), d.Title)
				if errs[i] != nil {
					failed++
					log.Printf("[AOC] [ERROR] %s: %v", d.Name(), errs[i])
					continue
				}
				printAnswer(out, answers[i])
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d days failed", failed, len(days))
			}
			return nil
		},
	}
}

// solveAll runs independent days in parallel. A failing day does not stop
// the others; its error is returned at the day's index.
func solveAll(ctx context.Context, days []puzzle.Day, dir string) ([]puzzle.Answer, []error) {
	answers := make([]puzzle.Answer, len(days))
	errs := make([]error, len(days))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, d := range days {
		i, d := i, d
		g.Go(func() error {
			answers[i], errs[i] = puzzle.Run(ctx, d, dir)
			return nil
		})
	}
	_ = g.Wait()

	return answers, errs
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range puzzle.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.Name(), d.Title)
			}
			return nil
		},
	}
}

func printAnswer(w io.Writer, ans puzzle.Answer) {
	fmt.Fprintf(w, "Part 1 Answer: %s\n", ans.Part1)
	fmt.Fprintf(w, "Part 2 Answer: %s\n", ans.Part2)
}
