// Package csp implements a generic backtracking search over immutable
// snapshots of a finite-domain constraint problem. Variables are cells with
// digit domains 1-9 represented as bitmasks; constraints are all-different
// hyper-arcs over fixed groups of cells. Domain inference is pluggable
// through the PropagationRule interface.
package csp

import "math/bits"

const (
	// CellCount is the number of variables in the problem.
	CellCount = 81

	// DigitCount is the size of an unconstrained domain.
	DigitCount = 9

	// FullDomain has the bits of all nine digits set.
	FullDomain = uint16(1)<<DigitCount - 1
)

// DigitMask returns the domain bit for a digit 1-9.
func DigitMask(digit int) uint16 {
	return uint16(1) << (digit - 1)
}

// State is one snapshot along the search path: the domain of every cell plus
// the partial assignment. A snapshot is never mutated once it has been passed
// to a recursive search call; each branch derives its own clone, so no two
// in-flight branches share mutable state and backtracking needs no undo logic.
type State struct {
	// Domains holds the candidate mask of each cell. An assigned cell keeps
	// the singleton mask of its digit.
	Domains [CellCount]uint16

	// Assigned holds the assigned digit per cell, 0 while unassigned.
	Assigned [CellCount]uint8

	// Remaining counts unassigned cells.
	Remaining int
}

// NewState returns a snapshot with every cell unassigned and unconstrained.
func NewState() *State {
	s := &State{Remaining: CellCount}
	for i := range s.Domains {
		s.Domains[i] = FullDomain
	}
	return s
}

// Clone returns an independent copy of the snapshot.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Assign records a digit for a cell and collapses its domain to the
// singleton. The digit must be in the cell's domain.
func (s *State) Assign(cell int, digit uint8) {
	s.Domains[cell] = DigitMask(int(digit))
	s.Assigned[cell] = digit
	s.Remaining--
}

// DomainSize returns the number of digits still possible for a cell.
func (s *State) DomainSize(cell int) int {
	return bits.OnesCount16(s.Domains[cell])
}

// Complete reports whether every cell has been assigned.
func (s *State) Complete() bool {
	return s.Remaining == 0
}
