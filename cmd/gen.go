package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/averykhoo/sudoku-compression/internal/generator"
	"github.com/averykhoo/sudoku-compression/internal/solver"
	"github.com/spf13/cobra"
)

var (
	numPuzzles int
	clueCount  string
	genSeed    int64
	genTimeout time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles with a unique solution.

Examples:
  sudoku gen --clueCount 40
  sudoku gen -n 5 --clueCount 30
  sudoku gen --clueCount 20 --timeout 15s`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&clueCount, "clueCount", "c", fmt.Sprintf("%d", generator.DefaultClueCount), "Number of clues 17-80 or range like 28:32")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

// parseClueCountRange parses a clue count string which can be:
// - A single number: "32"
// - A range: "28:32"
// Returns min, max, and an error
func parseClueCountRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		// Single number
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count: %w", err)
		}
		return val, val, nil
	} else if len(parts) == 2 {
		// Range
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("clue count min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid clue count format: %s (use format like '32' or '28:32')", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	// Parse clue count range
	minClues, maxClues, err := parseClueCountRange(clueCount)
	if err != nil {
		return err
	}

	// Validate clue count range
	if minClues < generator.MinValidClueCount || minClues > generator.MaxValidClueCount {
		return fmt.Errorf("clue count min (%d) must be between %d and %d", minClues, generator.MinValidClueCount, generator.MaxValidClueCount)
	}
	if maxClues < generator.MinValidClueCount || maxClues > generator.MaxValidClueCount {
		return fmt.Errorf("clue count max (%d) must be between %d and %d", maxClues, generator.MinValidClueCount, generator.MaxValidClueCount)
	}

	// Generate puzzles
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < numPuzzles; i++ {
		// Randomly select clue count from range if it's a range
		selectedClueCount := minClues
		if maxClues > minClues {
			selectedClueCount = minClues + rng.Intn(maxClues-minClues+1)
		}

		opts := generator.DefaultOptions(selectedClueCount)
		opts.Timeout = genTimeout
		if genSeed != 0 {
			// Offset the seed per puzzle so -n > 1 doesn't repeat itself.
			opts.Seed = genSeed + int64(i)
		}
		gen := generator.New(opts)

		puzzle, solution, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		fmt.Printf("Puzzle #%d (Clues: %d, Difficulty: %d):\n", i+1, selectedClueCount, solver.Difficulty(puzzle))
		fmt.Println(puzzle.Format())
		fmt.Println("\nSolution:")
		fmt.Println(solution.Format())
		fmt.Println()
	}

	return nil
}
