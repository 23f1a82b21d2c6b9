package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value must be between 1-9")
	ErrDuplicateValue  = errors.New("duplicate value in group")
	ErrBadCellCount    = errors.New("puzzle must contain exactly 81 cells")
)

// IsValid reports whether a board satisfies Sudoku constraints.
// Empty cells are ignored for validation.
func (b *Board) IsValid() bool {
	return b.Validate() == nil
}

// Validate checks every group's all-different constraint, naming the first
// violated group and the duplicated digit. Empty cells are ignored.
func (b *Board) Validate() error {
	for g := range GroupCount {
		var seen uint
		for _, pos := range Groups[g] {
			val := b.cells[pos]
			if val == EmptyCell {
				continue
			}
			mask := uint(1 << (val - 1))
			if seen&mask != 0 {
				return duplicateError(val, g)
			}
			seen |= mask
		}
	}
	return nil
}

// duplicateError reports a repeated digit in the named group.
func duplicateError(val, group int) error {
	return fmt.Errorf("%w: digit %d appears more than once in %s",
		ErrDuplicateValue, val, GroupName(group))
}

// isValidPosition reports whether a given position is in bounds of a Sudoku board.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// validatePosition checks if a position is within board bounds.
func (b *Board) validatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

// isValidValue reports whether a given number is valid on a Sudoku board.
func isValidValue(num int) bool {
	return (num >= 1 && num <= 9) || num == EmptyCell
}

// validateValue checks if a value is valid for Sudoku (1-9).
func (b *Board) validateValue(val int) error {
	if !isValidValue(val) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
