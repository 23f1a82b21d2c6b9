package board

import (
	"strings"
)

// Special cell values
const (
	EmptyCell = 0
	CellCount = 81
)

// Bitmask values
const (
	allNine = 511
)

// Board represents a 9x9 Sudoku board.
type Board struct {
	cells [CellCount]int

	// Bitmasks track placed digits in each group (row/col/box).
	// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
	// This allows for O(1) legality checks.
	rowMasks [9]uint
	colMasks [9]uint
	boxMasks [9]uint

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside Set and Clear.
	emptyCount int
}

// New creates an empty Board.
func New() *Board {
	return &Board{emptyCount: CellCount}
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Set attempts to place a value 1-9 at the given position.
// Returns an error if the placement violates Sudoku rules or parameters are invalid.
func (b *Board) Set(pos, val int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	if err := b.validateValue(val); err != nil {
		return err
	}
	if val == EmptyCell {
		return b.Clear(pos)
	}
	if b.cells[pos] != EmptyCell {
		b.Clear(pos)
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	// Check if value already exists in row, column, or box
	if b.rowMasks[row]&mask != 0 {
		return duplicateError(val, row)
	}
	if b.colMasks[col]&mask != 0 {
		return duplicateError(val, 9+col)
	}
	if b.boxMasks[box]&mask != 0 {
		return duplicateError(val, 18+box)
	}

	// Modify the board only once we know it's legal to do so
	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid.
func (b *Board) SetForce(pos, val int) {
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already empty cell.
func (b *Board) Clear(pos int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}

	// Exit early if the cell is already empty, no harm no foul
	val := b.cells[pos]
	if val == EmptyCell {
		return nil
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = EmptyCell
	b.rowMasks[row] &^= mask
	b.colMasks[col] &^= mask
	b.boxMasks[box] &^= mask
	b.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns EmptyCell for invalid positions.
func (b *Board) Get(pos int) int {
	if !isValidPosition(pos) {
		return EmptyCell
	}
	return b.cells[pos]
}

// CandidatesMask returns the bitmask of digits still legal at a position.
// A returned 0 indicates an unsolvable board or an invalid position.
func (b *Board) CandidatesMask(pos int) uint {
	if !isValidPosition(pos) {
		return 0
	}
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	return allNine &^ b.rowMasks[row] &^ b.colMasks[col] &^ b.boxMasks[box]
}

// EmptyCount returns the number of empty cells on the board.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// ClueCount returns the number of filled cells on the board.
func (b *Board) ClueCount() int {
	return CellCount - b.emptyCount
}

// String returns the board as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range b.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := range 9 {
		sb.WriteString("| ")
		for col := range 9 {
			val := b.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// MakePos transforms a row and column into a linear position.
// Returns -1 if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return -1
	}
	return 9*row + col
}
