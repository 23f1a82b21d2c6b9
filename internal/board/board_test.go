package board

import (
	"errors"
	"strings"
	"testing"
)

const solvedGrid = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"

func TestParseLine(t *testing.T) {
	b, err := Parse(solvedGrid)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.EmptyCount() != 0 {
		t.Fatalf("EmptyCount = %d, want 0", b.EmptyCount())
	}
	if got := b.String(); got != solvedGrid {
		t.Fatalf("String = %q, want %q", got, solvedGrid)
	}
}

func TestParseDecorated(t *testing.T) {
	decorated := `
	8 ? ? | ? ? ? | ? ? ?
	? ? 3 | 6 ? ? | ? ? ?
	? 7 ? | ? 9 ? | 2 ? ?
	- - - + - - - + - - -
	? 5 ? | ? ? 7 | ? ? ?
	? ? ? | ? 4 5 | 7 ? ?
	? ? ? | 1 ? ? | ? 3 ?
	- - - + - - - + - - -
	? ? 1 | ? ? ? | ? 6 8
	? ? 8 | 5 ? ? | ? 1 ?
	? 9 ? | ? ? ? | 4 ? ?
	`
	got, err := Parse(decorated)
	if err != nil {
		t.Fatalf("Parse decorated: %v", err)
	}
	if got.ClueCount() != 21 {
		t.Fatalf("ClueCount = %d, want 21", got.ClueCount())
	}
	for _, tc := range []struct{ row, col, want int }{
		{0, 0, 8},
		{1, 2, 3},
		{2, 4, 9},
		{4, 6, 7},
		{6, 8, 8},
		{8, 1, 9},
	} {
		if v := got.Get(MakePos(tc.row, tc.col)); v != tc.want {
			t.Fatalf("cell (%d,%d) = %d, want %d", tc.row, tc.col, v, tc.want)
		}
	}
}

func TestParseCellCount(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"too few", strings.Repeat(".", 80)},
		{"too many", strings.Repeat(".", 82)},
		{"empty", ""},
		{"only ignored characters", "hello world |+-"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); !errors.Is(err, ErrBadCellCount) {
				t.Fatalf("Parse(%q) error = %v, want ErrBadCellCount", tc.input, err)
			}
		})
	}
}

func TestParseDuplicateClues(t *testing.T) {
	pad := func(prefix string) string {
		return prefix + strings.Repeat(".", CellCount-len(prefix))
	}
	for _, tc := range []struct {
		name  string
		input string
		group string
	}{
		{"row", pad("55"), "row 1"},
		{"column", pad("5........5"), "column 1"},
		{"box", pad("5.........5"), "box 1"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if !errors.Is(err, ErrDuplicateValue) {
				t.Fatalf("error = %v, want ErrDuplicateValue", err)
			}
			if !strings.Contains(err.Error(), tc.group) {
				t.Fatalf("error %q does not name %q", err.Error(), tc.group)
			}
		})
	}
}

func TestGroupTables(t *testing.T) {
	// Every cell appears in exactly 3 groups and every group holds 9 cells.
	var hits [CellCount]int
	for g := range GroupCount {
		for _, pos := range Groups[g] {
			hits[pos]++
		}
	}
	for pos, n := range hits {
		if n != 3 {
			t.Fatalf("cell %d is in %d groups, want 3", pos, n)
		}
	}

	// Center cell: row 5, column 5, box 5 (1-based).
	center := MakePos(4, 4)
	want := [3]int{4, 9 + 4, 18 + 4}
	if CellGroups[center] != want {
		t.Fatalf("CellGroups[%d] = %v, want %v", center, CellGroups[center], want)
	}

	// Peers are distinct and never include the cell itself.
	for pos := range CellCount {
		seen := map[int]bool{pos: true}
		for _, p := range Peers[pos] {
			if seen[p] {
				t.Fatalf("cell %d has repeated peer %d", pos, p)
			}
			seen[p] = true
		}
	}
}

func TestSetClear(t *testing.T) {
	b := New()
	if err := b.Set(0, 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := b.Get(0); got != 5 {
		t.Fatalf("Get = %d, want 5", got)
	}
	if b.EmptyCount() != CellCount-1 {
		t.Fatalf("EmptyCount = %d", b.EmptyCount())
	}

	// Same digit elsewhere in the row is rejected and leaves the board alone.
	if err := b.Set(8, 5); !errors.Is(err, ErrDuplicateValue) {
		t.Fatalf("Set duplicate error = %v", err)
	}
	if b.Get(8) != EmptyCell {
		t.Fatal("rejected Set modified the board")
	}

	if err := b.Clear(0); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if b.EmptyCount() != CellCount {
		t.Fatalf("EmptyCount after Clear = %d", b.EmptyCount())
	}
	// Clearing an empty cell is a no-op.
	if err := b.Clear(0); err != nil {
		t.Fatalf("Clear empty: %v", err)
	}
}

func TestCandidatesMask(t *testing.T) {
	b := New()
	b.SetForce(0, 1)                  // row 1, box 1
	b.SetForce(MakePos(8, 1), 2)      // column 2
	pos := MakePos(0, 1)              // sees both
	want := uint(allNine) &^ 1 &^ 2   // digits 1 and 2 gone
	if got := b.CandidatesMask(pos); got != want {
		t.Fatalf("CandidatesMask = %09b, want %09b", got, want)
	}
}

func TestClone(t *testing.T) {
	b := MustParse(solvedGrid)
	c := b.Clone()
	if err := c.Clear(0); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if b.Get(0) == EmptyCell {
		t.Fatal("mutating clone changed original")
	}
}

func TestFormat(t *testing.T) {
	b := MustParse(solvedGrid)
	out := b.Format()
	if !strings.Contains(out, "| 4 8 3 | 9 2 1 | 6 5 7 |") {
		t.Fatalf("Format missing first row:\n%s", out)
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("reparse Format output: %v", err)
	}
	if reparsed.String() != solvedGrid {
		t.Fatal("Format output does not reparse to the same board")
	}
}
