package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/averykhoo/sudoku-compression/internal/board"
	"github.com/averykhoo/sudoku-compression/internal/csp"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
)

// problem is the Sudoku constraint problem: the 27 all-different groups
// with the combined propagation rule. It is immutable after init.
var problem = newProblem()

func newProblem() *csp.Problem {
	p := &csp.Problem{Rule: Rule{}}
	for cell := range board.CellCount {
		p.Peers[cell] = board.Peers[cell][:]
	}
	return p
}

// Solve completes a partial grid. The clues must not already violate a
// group constraint (ErrInvalidPuzzle otherwise). ErrNoSolution is the
// normal outcome for an unsatisfiable puzzle, not a failure of the solver;
// every clue of the input is preserved in the returned board.
func Solve(ctx context.Context, b *board.Board) (*board.Board, csp.Stats, error) {
	if err := b.Validate(); err != nil {
		return nil, csp.Stats{}, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}

	st, err := initialState(b)
	if err != nil {
		return nil, csp.Stats{}, ErrNoSolution
	}

	res, stats, err := problem.Solve(ctx, st)
	if err != nil {
		return nil, stats, err
	}
	if res == nil {
		return nil, stats, ErrNoSolution
	}
	return toBoard(res), stats, nil
}

// CountSolutions counts the completions of a partial grid, stopping early
// at limit. Use limit 2 to test uniqueness: a return of 1 means the puzzle
// has exactly one solution.
func CountSolutions(ctx context.Context, b *board.Board, limit int) (int, csp.Stats, error) {
	if err := b.Validate(); err != nil {
		return 0, csp.Stats{}, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}

	st, err := initialState(b)
	if err != nil {
		return 0, csp.Stats{}, nil
	}
	return problem.CountSolutions(ctx, st, limit)
}

// initialState builds the search snapshot from the puzzle's clues,
// propagating after each one. csp.ErrContradiction here means the clues
// are mutually consistent but admit no completion.
func initialState(b *board.Board) (*csp.State, error) {
	st := csp.NewState()
	rule := Rule{}
	for pos := range board.CellCount {
		val := b.Get(pos)
		if val == board.EmptyCell {
			continue
		}
		if st.Domains[pos]&csp.DigitMask(val) == 0 {
			return nil, csp.ErrContradiction
		}
		st.Assign(pos, uint8(val))
		if err := rule.Propagate(st, pos, uint8(val)); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func toBoard(st *csp.State) *board.Board {
	b := board.New()
	for pos := range board.CellCount {
		b.SetForce(pos, int(st.Assigned[pos]))
	}
	return b
}
