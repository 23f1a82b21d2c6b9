package cmd

import (
	"fmt"

	"github.com/averykhoo/sudoku-compression/internal/board"
	"github.com/averykhoo/sudoku-compression/internal/codec"
	"github.com/spf13/cobra"
)

var encodeInteger bool

func init() {
	encodeCmd := &cobra.Command{
		Use:   "encode [grid]",
		Short: "Encode a solved grid as a short printable string",
		Long: `Encode a fully solved Sudoku grid as a base-95 string of at most 13
printable characters. The grid may be passed as an argument or piped on
stdin; it must be complete and must satisfy every row, column, and box
constraint.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEncode,
	}

	encodeCmd.Flags().BoolVar(&encodeInteger, "integer", false, "Print the decimal integer instead of the base-95 string")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	b, err := board.Parse(text)
	if err != nil {
		return err
	}

	n, err := codec.Encode(b)
	if err != nil {
		return err
	}

	if encodeInteger {
		fmt.Println(n.String())
		return nil
	}
	s, err := codec.FormatBase95(n)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}
