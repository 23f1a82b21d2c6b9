package solver

import (
	"github.com/averykhoo/sudoku-compression/internal/board"
	"github.com/averykhoo/sudoku-compression/internal/csp"
)

// Rule is the Sudoku propagation rule: arc revision over the assigned cell's
// groups, then naked-singles detection and cross-group intersection pruning
// repeated to a fixed point.
type Rule struct{}

// Propagate implements csp.PropagationRule.
func (r Rule) Propagate(st *csp.State, cell int, digit uint8) error {
	mask := csp.DigitMask(int(digit))

	// Arc revision: the assigned digit leaves the domains of every other
	// cell in the assigned cell's row, column, and box.
	for _, g := range board.CellGroups[cell] {
		for _, other := range board.Groups[g] {
			if other == cell || st.Assigned[other] != 0 {
				continue
			}
			st.Domains[other] &^= mask
			if st.Domains[other] == 0 {
				return csp.ErrContradiction
			}
		}
	}

	for changed := true; changed; {
		changed = nakedSingles(st)
		ch, err := intersections(st)
		if err != nil {
			return err
		}
		changed = changed || ch
	}
	return nil
}

// nakedSingles inverts each group's cell-to-domain mapping into a
// digit-to-cells mapping; a digit possible in exactly one cell of a group
// collapses that cell's domain to the singleton.
func nakedSingles(st *csp.State) bool {
	changed := false
	for g := range board.GroupCount {
		for digit := 1; digit <= csp.DigitCount; digit++ {
			mask := csp.DigitMask(digit)
			only := -1
			n := 0
			for _, pos := range board.Groups[g] {
				if st.Domains[pos]&mask != 0 {
					only = pos
					if n++; n > 1 {
						break
					}
				}
			}
			if n == 1 && st.Domains[only] != mask {
				st.Domains[only] = mask
				changed = true
			}
		}
	}
	return changed
}

// groupPair is a pair of intersecting groups split into the shared cells and
// the two disjoint remainders.
type groupPair struct {
	shared []int
	rest1  []int
	rest2  []int
}

var groupPairs = buildGroupPairs()

func buildGroupPairs() []groupPair {
	var pairs []groupPair
	for g1 := range board.GroupCount {
		for g2 := g1 + 1; g2 < board.GroupCount; g2++ {
			var in2 [board.CellCount]bool
			for _, pos := range board.Groups[g2] {
				in2[pos] = true
			}
			var p groupPair
			for _, pos := range board.Groups[g1] {
				if in2[pos] {
					p.shared = append(p.shared, pos)
				} else {
					p.rest1 = append(p.rest1, pos)
				}
			}
			if len(p.shared) == 0 {
				continue
			}
			for _, pos := range board.Groups[g2] {
				if !contains(p.shared, pos) {
					p.rest2 = append(p.rest2, pos)
				}
			}
			pairs = append(pairs, p)
		}
	}
	return pairs
}

func contains(cells []int, pos int) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}
	return false
}

// intersections prunes across every pair of intersecting groups. The shared
// cells are doubly constrained: a digit that the intersection could supply
// but one remainder cannot must be placed in the intersection from the other
// group's point of view, so it leaves the other remainder's allowed set.
func intersections(st *csp.State) (bool, error) {
	changed := false
	for i := range groupPairs {
		p := &groupPairs[i]
		v0 := unionDomains(st, p.shared)
		v1 := unionDomains(st, p.rest1)
		v2 := unionDomains(st, p.rest2)

		allow1 := v1 &^ (v0 &^ v2)
		allow2 := v2 &^ (v0 &^ v1)
		if allow1 == v1 && allow2 == v2 {
			continue
		}
		ch, err := restrictDomains(st, p.rest1, allow1)
		if err != nil {
			return false, err
		}
		changed = changed || ch
		ch, err = restrictDomains(st, p.rest2, allow2)
		if err != nil {
			return false, err
		}
		changed = changed || ch
	}
	return changed, nil
}

// unionDomains ORs the domain masks of a segment. Assigned cells hold the
// singleton mask of their digit, so assigned values are included.
func unionDomains(st *csp.State, cells []int) uint16 {
	var union uint16
	for _, pos := range cells {
		union |= st.Domains[pos]
	}
	return union
}

func restrictDomains(st *csp.State, cells []int, allowed uint16) (bool, error) {
	changed := false
	for _, pos := range cells {
		if st.Assigned[pos] != 0 {
			continue
		}
		next := st.Domains[pos] & allowed
		if next == st.Domains[pos] {
			continue
		}
		if next == 0 {
			return false, csp.ErrContradiction
		}
		st.Domains[pos] = next
		changed = true
	}
	return changed, nil
}
