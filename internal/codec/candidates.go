package codec

import "sync"

// constraint is the set of digits a block may not reuse, per row-triple and
// per column-triple, accumulated from its dependency blocks.
type constraint struct {
	rows [3]uint16
	cols [3]uint16
}

// constraintFor collates the constraint masks for block k from the blocks
// already fixed in earlier raster positions.
func constraintFor(blocks *[9]Block, k int) constraint {
	var c constraint
	for _, a := range dependencies[k].above {
		cm := blocks[a].colMasks()
		for j := range 3 {
			c.cols[j] |= cm[j]
		}
	}
	for _, l := range dependencies[k].left {
		rm := blocks[l].rowMasks()
		for i := range 3 {
			c.rows[i] |= rm[i]
		}
	}
	return c
}

// Enumeration is deterministic in the constraint alone, so results are
// memoized. The unconstrained list (block 1) alone holds all 9! blocks;
// later blocks repeat constraints often during batch encode/decode.
var (
	candMu    sync.Mutex
	candCache = make(map[constraint][]Block)
)

// candidates returns every block whose row- and column-triples avoid the
// digits in the constraint masks, in lexicographic order over the 9-tuple.
// The returned slice is shared; callers must not modify it.
func candidates(c constraint) []Block {
	candMu.Lock()
	defer candMu.Unlock()
	if list, ok := candCache[c]; ok {
		return list
	}
	list := enumerate(c)
	candCache[c] = list
	return list
}

// enumerate fills block positions in order, trying digits in ascending
// order at each position, which yields exactly the blocks (and the order)
// that filtering all 9! permutations lexicographically would produce.
func enumerate(c constraint) []Block {
	var out []Block
	var cur Block
	var used uint16

	var rec func(pos int)
	rec = func(pos int) {
		if pos == 9 {
			out = append(out, cur)
			return
		}
		avoid := used | c.rows[pos/3] | c.cols[pos%3]
		for d := uint8(1); d <= 9; d++ {
			bit := digitBit(d)
			if avoid&bit != 0 {
				continue
			}
			cur[pos] = d
			used |= bit
			rec(pos + 1)
			used &^= bit
		}
	}
	rec(0)
	return out
}
