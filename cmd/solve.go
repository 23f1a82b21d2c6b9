package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/averykhoo/sudoku-compression/internal/board"
	"github.com/averykhoo/sudoku-compression/internal/solver"
	"github.com/spf13/cobra"
)

var (
	solveStats   bool
	solveTimeout time.Duration
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a partially filled Sudoku puzzle.

The puzzle may be passed as an argument or piped on stdin. Digits 1-9 are
clues; any of '.', '?', '0', '*' marks an unknown cell; every other
character (whitespace, grid lines) is ignored.

Examples:
  sudoku solve "1....7.9. .3..2...8 ..96..5.. ..53..9.. .1..8...2 6....4... 3......1. .41.....7 ..7...3.."
  cat puzzle.txt | sudoku solve`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "Print search statistics")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Abort the search after this long")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	b, err := board.Parse(text)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	solution, stats, err := solver.Solve(ctx, b)
	if err != nil {
		return err
	}

	fmt.Println(solution.Format())
	if solveStats {
		fmt.Printf("assignments: %d\nduration:    %s\n", stats.Assignments, stats.Duration)
	}
	return nil
}
