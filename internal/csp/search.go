package csp

import (
	"context"
	"errors"
	"time"
)

// ErrContradiction is returned by propagation when some domain is emptied,
// meaning the branch cannot lead to a solution.
var ErrContradiction = errors.New("propagation emptied a domain")

// A PropagationRule derives the consequences of a tentative assignment.
// Propagate is handed a freshly cloned snapshot in which cell has just been
// assigned digit; it prunes domains in place until its own fixed point and
// returns ErrContradiction if any domain empties.
type PropagationRule interface {
	Propagate(st *State, cell int, digit uint8) error
}

// Problem couples the hyper-arc structure with a propagation rule.
// Peers lists, for each cell, the other cells sharing at least one group
// with it; the search uses it for the variable-selection tie-break.
type Problem struct {
	Peers [CellCount][]int
	Rule  PropagationRule
}

// Stats reports search effort.
type Stats struct {
	Assignments int
	Duration    time.Duration
}

// Solve runs depth-first backtracking from the initial snapshot and returns
// the first complete assignment found, or nil if the subtree holds none.
// The only error conditions are context cancellation and deadline expiry.
func (p *Problem) Solve(ctx context.Context, initial *State) (*State, Stats, error) {
	start := time.Now()
	se := search{prob: p}
	res, err := se.run(ctx, initial)
	return res, Stats{Assignments: se.assignments, Duration: time.Since(start)}, err
}

// CountSolutions counts complete assignments reachable from the initial
// snapshot, stopping early once limit is reached.
func (p *Problem) CountSolutions(ctx context.Context, initial *State, limit int) (int, Stats, error) {
	start := time.Now()
	se := search{prob: p, limit: limit}
	err := se.count(ctx, initial)
	return se.found, Stats{Assignments: se.assignments, Duration: time.Since(start)}, err
}

type search struct {
	prob        *Problem
	assignments int

	// counting mode
	limit int
	found int
}

func (se *search) run(ctx context.Context, st *State) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if st.Complete() {
		return st, nil
	}

	cell := se.selectCell(st)
	dom := st.Domains[cell]
	for digit := uint8(1); digit <= DigitCount; digit++ {
		if dom&DigitMask(int(digit)) == 0 {
			continue
		}
		next, err := se.tryAssign(st, cell, digit)
		if err != nil {
			continue
		}
		res, err := se.run(ctx, next)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

func (se *search) count(ctx context.Context, st *State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if st.Complete() {
		se.found++
		return nil
	}

	cell := se.selectCell(st)
	dom := st.Domains[cell]
	for digit := uint8(1); digit <= DigitCount; digit++ {
		if se.found >= se.limit {
			return nil
		}
		if dom&DigitMask(int(digit)) == 0 {
			continue
		}
		next, err := se.tryAssign(st, cell, digit)
		if err != nil {
			continue
		}
		if err := se.count(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

// tryAssign clones the snapshot, assigns the digit, and runs propagation.
// ErrContradiction means the branch is dead; the parent snapshot is untouched.
func (se *search) tryAssign(st *State, cell int, digit uint8) (*State, error) {
	se.assignments++
	next := st.Clone()
	next.Assign(cell, digit)
	if err := se.prob.Rule.Propagate(next, cell, digit); err != nil {
		return nil, err
	}
	return next, nil
}

// selectCell picks the unassigned cell with the smallest domain
// (most-constrained variable), breaking ties by the largest number of
// unassigned peers (most-constraining variable). A cell with an empty
// domain is returned immediately so the caller fails fast on this branch.
func (se *search) selectCell(st *State) int {
	best := -1
	bestSize := DigitCount + 1
	bestPeers := -1

	for cell := range CellCount {
		if st.Assigned[cell] != 0 {
			continue
		}
		size := st.DomainSize(cell)
		if size == 0 {
			return cell
		}
		if size > bestSize {
			continue
		}
		if size < bestSize {
			best, bestSize, bestPeers = cell, size, -1
			continue
		}
		if bestPeers < 0 {
			bestPeers = se.unassignedPeers(st, best)
		}
		peers := se.unassignedPeers(st, cell)
		if peers > bestPeers {
			best, bestPeers = cell, peers
		}
	}
	return best
}

func (se *search) unassignedPeers(st *State, cell int) int {
	n := 0
	for _, p := range se.prob.Peers[cell] {
		if st.Assigned[p] == 0 {
			n++
		}
	}
	return n
}
