// Package codec maps a fully solved Sudoku grid to a compact integer and
// back. Processing the nine 3x3 blocks in raster order, each block is
// replaced by its rank within the list of blocks still legal given the
// blocks above and to the left of it; the nine ranks pack into one integer
// with mixed-radix weights. The integer projects onto a printable base-95
// string for transport.
package codec

import "github.com/averykhoo/sudoku-compression/internal/board"

// Block is one 3x3 box of a solved grid, read left-to-right, top-to-bottom.
type Block [9]uint8

// dependencies lists, per block in raster order, which earlier blocks
// constrain it: blocks directly above supply column constraints, blocks
// directly to the left supply row constraints.
//
//	0 1 2
//	3 4 5
//	6 7 8
var dependencies = [9]struct {
	above []int
	left  []int
}{
	{nil, nil},
	{nil, []int{0}},
	{nil, []int{0, 1}},
	{[]int{0}, nil},
	{[]int{1}, []int{3}},
	{[]int{2}, []int{3, 4}},
	{[]int{0, 3}, nil},
	{[]int{1, 4}, []int{6}},
	{[]int{2, 5}, []int{6, 7}},
}

func digitBit(d uint8) uint16 {
	return uint16(1) << (d - 1)
}

// rowMasks returns the digit mask of each of the block's three row-triples.
func (bl Block) rowMasks() [3]uint16 {
	var m [3]uint16
	for i := range 3 {
		m[i] = digitBit(bl[3*i]) | digitBit(bl[3*i+1]) | digitBit(bl[3*i+2])
	}
	return m
}

// colMasks returns the digit mask of each of the block's three column-triples.
func (bl Block) colMasks() [3]uint16 {
	var m [3]uint16
	for j := range 3 {
		m[j] = digitBit(bl[j]) | digitBit(bl[3+j]) | digitBit(bl[6+j])
	}
	return m
}

// split pulls the nine blocks out of a board in raster order.
func split(b *board.Board) [9]Block {
	var blocks [9]Block
	for k := range 9 {
		for i, pos := range board.BoxCells(k) {
			blocks[k][i] = uint8(b.Get(pos))
		}
	}
	return blocks
}

// join is the inverse of split.
func join(blocks [9]Block) *board.Board {
	b := board.New()
	for k := range 9 {
		for i, pos := range board.BoxCells(k) {
			b.SetForce(pos, int(blocks[k][i]))
		}
	}
	return b
}
