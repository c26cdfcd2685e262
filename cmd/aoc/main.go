// Command aoc runs registered puzzle solutions and prints their answers.
//
//	aoc run 16 [--year 2024] [--input file] [--draw]
//	aoc all
//	aoc list
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/adventpath/config"
)

// options carries persistent flag values, resolved against config before any command runs.
type options struct {
	inputDir string
	year     int
	envFile  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("[AOC] [ERROR] %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Run Advent of Code puzzle solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if opts.envFile != "" {
				files = append(files, opts.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("input-dir") {
				opts.inputDir = cfg.InputDir
			}
			if !cmd.Flags().Changed("year") {
				opts.year = cfg.Year
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.inputDir, "input-dir", config.DefaultInputDir, "directory holding <year>/dayNN.txt inputs (env "+config.EnvInputDir+")")
	rootCmd.PersistentFlags().IntVar(&opts.year, "year", config.DefaultYear, "event year (env "+config.EnvYear+")")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file to load instead of .env")

	rootCmd.AddCommand(newRunCmd(opts), newAllCmd(opts), newListCmd())

	return rootCmd
}
