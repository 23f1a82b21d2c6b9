package solver

import (
	"context"

	"github.com/averykhoo/sudoku-compression/internal/board"
)

// Difficulty returns an integer measure of a board's difficulty: the number
// of tentative assignments the search needed to complete it. Higher means
// the propagation rules resolved less of the puzzle on their own.
// Returns 0 for boards that cannot be solved.
func Difficulty(b *board.Board) int {
	_, stats, err := Solve(context.Background(), b)
	if err != nil {
		return 0
	}
	return stats.Assignments
}
