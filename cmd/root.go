package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	cpuProfile bool
	prof       interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve Sudoku puzzles and encode solved grids as short strings",
	Long: `A Sudoku toolkit built around two engines: a constraint-propagation
solver and a block codec that maps any solved grid to an integer below 2^76
(about 13 printable characters in base 95) and back.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cpuProfile {
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if prof != nil {
			prof.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "cpuprofile", false, "Write a CPU profile to the current directory")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the first positional argument, or the whole of stdin
// when no argument (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
