package board

import "fmt"

// The 27 all-different groups are indexed 0-26: rows 0-8, columns 9-17,
// boxes 18-26. Boxes follow raster order (box 0 top-left, box 8 bottom-right).
const (
	GroupCount = 27

	rowGroupBase = 0
	colGroupBase = 9
	boxGroupBase = 18
)

// Precomputed lookup tables shared by the solver and the codec.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int

	// Groups enumerates the cell positions of each of the 27 groups,
	// in ascending order.
	Groups [GroupCount][9]int

	// CellGroups maps a cell position to the three groups containing it.
	CellGroups [CellCount][3]int

	// Peers maps a cell position to the 20 distinct other cells that share
	// a group with it.
	Peers [CellCount][20]int
)

func init() {
	for pos := range CellCount {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
		posToBox[pos] = 3*(pos/27) + (pos%9)/3
	}

	var counts [GroupCount]int
	for pos := range CellCount {
		groups := [3]int{
			rowGroupBase + posToRow[pos],
			colGroupBase + posToCol[pos],
			boxGroupBase + posToBox[pos],
		}
		CellGroups[pos] = groups
		for _, g := range groups {
			Groups[g][counts[g]] = pos
			counts[g]++
		}
	}

	for pos := range CellCount {
		var seen [CellCount]bool
		n := 0
		for _, g := range CellGroups[pos] {
			for _, other := range Groups[g] {
				if other != pos && !seen[other] {
					seen[other] = true
					Peers[pos][n] = other
					n++
				}
			}
		}
	}
}

// GroupName returns a human-readable name for a group index,
// e.g. "row 1", "column 5", "box 9". Names are 1-based.
func GroupName(g int) string {
	switch {
	case g >= rowGroupBase && g < colGroupBase:
		return fmt.Sprintf("row %d", g-rowGroupBase+1)
	case g >= colGroupBase && g < boxGroupBase:
		return fmt.Sprintf("column %d", g-colGroupBase+1)
	case g >= boxGroupBase && g < GroupCount:
		return fmt.Sprintf("box %d", g-boxGroupBase+1)
	}
	return fmt.Sprintf("group %d", g)
}

// BoxCells returns the 9 cell positions of the given box (0-8, raster order).
func BoxCells(box int) [9]int {
	return Groups[boxGroupBase+box]
}
