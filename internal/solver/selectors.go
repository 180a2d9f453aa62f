package solver

import "svw.info/sudoku-csp/internal/domain"

// CellSelector picks the next empty cell to branch on. ok is false
// when no empty cell remains, which signals search completion.
type CellSelector interface {
	Select(g *[9][9]uint8) (r, c int, ok bool)
}

// NewCellSelector returns the selector for the configured kind.
func NewCellSelector(k domain.CellSelect) CellSelector {
	if k == domain.MRV {
		return mrvSelect{}
	}
	return firstEmpty{}
}

// firstEmpty returns the first empty cell in row-major order.
type firstEmpty struct{}

func (firstEmpty) Select(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// mrvSelect picks the empty cell with the fewest remaining candidates.
// Ties keep the first minimum found in row-major order. A cell with 0
// or 1 candidates ends the scan early: 0 is a dead end worth surfacing
// immediately, 1 cannot be beaten.
type mrvSelect struct{}

func (mrvSelect) Select(g *[9][9]uint8) (int, int, bool) {
	best := 10
	br, bc, found := 0, 0, false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			n := countCandidates(g, r, c)
			if n < best {
				best = n
				br, bc, found = r, c, true
				if best <= 1 {
					return br, bc, true
				}
			}
		}
	}
	return br, bc, found
}
