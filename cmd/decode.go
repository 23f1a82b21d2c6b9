package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/averykhoo/sudoku-compression/internal/codec"
	"github.com/spf13/cobra"
)

var (
	decodeInteger bool
	decodeLine    bool
)

func init() {
	decodeCmd := &cobra.Command{
		Use:   "decode [encoded]",
		Short: "Decode an encoded grid back to a Sudoku board",
		Long: `Decode a base-95 string (as produced by encode) back into the solved
grid it came from. With --integer the input is read as a decimal integer
instead. The encoded value may be passed as an argument or piped on stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDecode,
	}

	decodeCmd.Flags().BoolVar(&decodeInteger, "integer", false, "Read the input as a decimal integer")
	decodeCmd.Flags().BoolVar(&decodeLine, "line", false, "Print the grid as one 81-character line")

	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	// Base-95 digits include the space character, so only line endings are
	// stripped from piped input.
	text = strings.TrimRight(text, "\r\n")

	var n *big.Int
	if decodeInteger {
		var ok bool
		n, ok = new(big.Int).SetString(strings.TrimSpace(text), 10)
		if !ok {
			return fmt.Errorf("not a decimal integer: %q", text)
		}
	} else {
		n, err = codec.ParseBase95(text)
		if err != nil {
			return err
		}
	}

	b, err := codec.Decode(n)
	if err != nil {
		return err
	}

	if decodeLine {
		fmt.Println(b.String())
	} else {
		fmt.Println(b.Format())
	}
	return nil
}
