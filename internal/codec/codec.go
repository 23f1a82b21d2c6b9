package codec

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/averykhoo/sudoku-compression/internal/board"
)

// Bounds is the per-block upper bound on candidate-list length, derived by
// exhaustive enumeration (blocks 1-4, 6-9) and sampled enumeration (block 5,
// which varies between 384 and 448 with the contents of blocks 2 and 4).
// These are fixed constants of the wire format: the mixed-radix weights are
// products of these bounds, so encoder and decoder must agree on the table
// byte for byte.
var Bounds = [9]int64{362880, 12096, 216, 12096, 448, 8, 216, 8, 1}

// MaxEncoded is the exclusive upper bound on every encoded integer: the
// product of all nine bounds, just under 2^76.
var MaxEncoded = func() *big.Int {
	n := big.NewInt(1)
	for _, b := range Bounds {
		n.Mul(n, big.NewInt(b))
	}
	return n
}()

var (
	// ErrIncompleteGrid and ErrInvalidGrid reject inputs that are not
	// fully solved grids.
	ErrIncompleteGrid = errors.New("grid is not fully assigned")
	ErrInvalidGrid    = errors.New("grid violates a group constraint")

	// ErrInconsistency reports an internal consistency failure: a block of
	// a validated grid was not found within its bound in its own candidate
	// list. It indicates a programming or data-corruption error and is not
	// recoverable.
	ErrInconsistency = errors.New("block codec internal inconsistency")

	// ErrCorruptInput reports an encoded value that no valid grid could
	// have produced.
	ErrCorruptInput = errors.New("encoded value is corrupt or out of range")
)

// Encode maps a fully solved grid to its integer representation.
func Encode(b *board.Board) (*big.Int, error) {
	if b.EmptyCount() != 0 {
		return nil, ErrIncompleteGrid
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}

	blocks := split(b)
	n := new(big.Int)
	tmp := new(big.Int)
	for k := range 9 {
		list := candidates(constraintFor(&blocks, k))
		if int64(len(list)) > Bounds[k] {
			return nil, fmt.Errorf("%w: block %d has %d candidates, bound is %d",
				ErrInconsistency, k+1, len(list), Bounds[k])
		}
		rank := int64(-1)
		for i := range list {
			if list[i] == blocks[k] {
				rank = int64(i)
				break
			}
		}
		if rank < 0 {
			return nil, fmt.Errorf("%w: block %d absent from its candidate list",
				ErrInconsistency, k+1)
		}
		n.Mul(n, tmp.SetInt64(Bounds[k]))
		n.Add(n, tmp.SetInt64(rank))
	}
	return n, nil
}

// Decode is the inverse of Encode: it unpacks the nine block ranks from the
// integer and re-enumerates each block's candidate list to look them up.
func Decode(n *big.Int) (*board.Board, error) {
	if n.Sign() < 0 || n.Cmp(MaxEncoded) >= 0 {
		return nil, fmt.Errorf("%w: integer outside [0, %s)", ErrCorruptInput, MaxEncoded)
	}

	rem := new(big.Int).Set(n)
	radix := new(big.Int)
	mod := new(big.Int)
	var ranks [9]int64
	for k := 8; k >= 0; k-- {
		rem.QuoRem(rem, radix.SetInt64(Bounds[k]), mod)
		ranks[k] = mod.Int64()
	}

	var blocks [9]Block
	for k := range 9 {
		list := candidates(constraintFor(&blocks, k))
		if ranks[k] >= int64(len(list)) {
			return nil, fmt.Errorf("%w: block %d rank %d outside [0, %d)",
				ErrCorruptInput, k+1, ranks[k], len(list))
		}
		blocks[k] = list[ranks[k]]
	}
	return join(blocks), nil
}
