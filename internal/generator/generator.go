package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/averykhoo/sudoku-compression/internal/board"
	"github.com/averykhoo/sudoku-compression/internal/solver"
)

const (
	MinValidClueCount = 17
	MaxValidClueCount = 80
	DefaultClueCount  = 32
)

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidClueCount = errors.New("clue count must be between 17 and 80")
	ErrDiggingFailed    = errors.New("failed to remove proper number of clues")
)

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultClueCount)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle and its solution, or an error if generation fails.
func (g *Generator) Generate() (puzzle *board.Board, solution *board.Board, err error) {
	if g.options.ClueCount < MinValidClueCount || g.options.ClueCount > MaxValidClueCount {
		return nil, nil, ErrInvalidClueCount
	}

	ctx, cancel := context.WithTimeout(context.Background(), g.options.Timeout)
	defer cancel()

	for {
		if ctx.Err() != nil {
			return nil, nil, ErrGenerationFailed
		}

		// Generate a complete valid board
		solution, err = g.generateSolution(ctx)
		if err != nil {
			continue
		}

		// Remove clues to create the puzzle
		puzzle, err = g.removeCells(ctx, solution)
		if err != nil {
			continue
		}

		return puzzle, solution, nil
	}
}

// generateSolution creates a complete valid Sudoku board. The solver itself
// is deterministic, so randomness comes from seeding the three diagonal
// boxes: they share no row or column, so any three permutations are
// consistent and the solver completes the rest.
func (g *Generator) generateSolution(ctx context.Context) (*board.Board, error) {
	b := board.New()
	g.fillDiagonalBoxes(b)

	solved, _, err := solver.Solve(ctx, b)
	if err != nil {
		return nil, err
	}
	return solved, nil
}

// fillDiagonalBoxes fills boxes 0, 4, and 8 with random permutations.
func (g *Generator) fillDiagonalBoxes(b *board.Board) {
	for _, box := range [3]int{0, 4, 8} {
		cells := board.BoxCells(box)
		for i, digit := range g.rng.Perm(9) {
			b.SetForce(cells[i], digit+1)
		}
	}
}

// removeCells removes clues from a complete board to create a puzzle.
func (g *Generator) removeCells(ctx context.Context, solution *board.Board) (*board.Board, error) {
	puzzle := solution.Clone()

	// Calculate how many cells to remove
	targetClues := g.options.ClueCount
	cellsToRemove := board.CellCount - targetClues

	// Create shuffled list of all positions
	positions := g.rng.Perm(board.CellCount)

	// Remove cells until we reach target clues
	cellsRemoved := 0
	for _, pos := range positions {
		if cellsRemoved >= cellsToRemove {
			break
		}
		if ctx.Err() != nil {
			return nil, ErrGenerationFailed
		}

		// Try removing this cell
		val := puzzle.Get(pos)
		if val == board.EmptyCell {
			continue
		}

		puzzle.Clear(pos)
		cellsRemoved++

		// Verify the puzzle still has a unique solution
		if g.options.EnsureUnique {
			if !g.hasUniqueSolution(ctx, puzzle) {
				// Restore the cell
				puzzle.SetForce(pos, val)
				cellsRemoved--
			}
		}
	}

	if cellsRemoved == cellsToRemove {
		return puzzle, nil
	}
	return puzzle, ErrDiggingFailed
}

// hasUniqueSolution checks if the puzzle has exactly one solution.
func (g *Generator) hasUniqueSolution(ctx context.Context, puzzle *board.Board) bool {
	count, _, err := solver.CountSolutions(ctx, puzzle, 2)
	return err == nil && count == 1
}

// GenerateWithClueCount is a convenience function to generate a puzzle with a specific clue count.
func GenerateWithClueCount(clueCount int) (*board.Board, *board.Board, error) {
	gen := New(DefaultOptions(clueCount))
	return gen.Generate()
}
