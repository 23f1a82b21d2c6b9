package codec

import (
	"fmt"
	"math/big"
	"strings"
)

// The base-95 projection writes a non-negative integer with the 95 printable
// ASCII characters (0x20 space through 0x7e tilde) as digit symbols, least
// significant digit first. It is a pure radix conversion, independent of the
// Sudoku-specific logic. Zero is the empty string.
const (
	base95Radix  = 95
	base95Offset = 0x20
	base95Max    = 0x7e
)

// FormatBase95 renders n in base 95. n must be non-negative.
func FormatBase95(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", fmt.Errorf("%w: negative integer", ErrCorruptInput)
	}
	var sb strings.Builder
	rem := new(big.Int).Set(n)
	radix := big.NewInt(base95Radix)
	mod := new(big.Int)
	for rem.Sign() > 0 {
		rem.QuoRem(rem, radix, mod)
		sb.WriteByte(byte(base95Offset + mod.Int64()))
	}
	return sb.String(), nil
}

// ParseBase95 is the exact inverse of FormatBase95.
func ParseBase95(s string) (*big.Int, error) {
	n := new(big.Int)
	radix := big.NewInt(base95Radix)
	digit := new(big.Int)
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < base95Offset || c > base95Max {
			return nil, fmt.Errorf("%w: byte %#02x is not printable ASCII", ErrCorruptInput, c)
		}
		n.Mul(n, radix)
		n.Add(n, digit.SetInt64(int64(c-base95Offset)))
	}
	return n, nil
}
