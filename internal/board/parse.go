package board

import (
	"fmt"
	"strings"
)

// placeholders are the characters accepted as "unknown cell" markers.
const placeholders = ".?0*"

// Parse reads a board from text. Digits 1-9 are clues and any of '.', '?',
// '0', '*' marks an unknown cell; every other character (whitespace, grid
// lines, separators) is ignored. The text must contain exactly 81 cell
// tokens in row-major order, and the clues must not already violate a
// row, column, or box all-different constraint.
func Parse(s string) (*Board, error) {
	b := New()
	pos := 0
	for _, ch := range s {
		switch {
		case ch >= '1' && ch <= '9':
			if pos >= CellCount {
				return nil, fmt.Errorf("%w: found more than %d", ErrBadCellCount, CellCount)
			}
			if err := b.Set(pos, int(ch-'0')); err != nil {
				return nil, fmt.Errorf("cell %d: %w", pos, err)
			}
			pos++
		case strings.ContainsRune(placeholders, ch):
			if pos >= CellCount {
				return nil, fmt.Errorf("%w: found more than %d", ErrBadCellCount, CellCount)
			}
			pos++
		}
	}
	if pos != CellCount {
		return nil, fmt.Errorf("%w: found %d", ErrBadCellCount, pos)
	}
	return b, nil
}

// MustParse is a Parse that panics on error, for tests and fixed fixtures.
func MustParse(s string) *Board {
	b, err := Parse(s)
	if err != nil {
		panic("board: " + err.Error())
	}
	return b
}
