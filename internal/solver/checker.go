package solver

// isValid reports whether v can be placed at (r, c) without repeating
// in the row, the column, or the 3x3 box.
func isValid(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// countCandidates returns how many values 1-9 are placeable at (r, c).
func countCandidates(g *[9][9]uint8, r, c int) int {
	n := 0
	for v := uint8(1); v <= 9; v++ {
		if isValid(g, r, c, v) {
			n++
		}
	}
	return n
}

// hasFuture reports whether every empty cell still admits at least one
// value. Forward checking calls this after each tentative placement to
// abandon doomed branches before recursing.
func hasFuture(g *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			if countCandidates(g, r, c) == 0 {
				return false
			}
		}
	}
	return true
}
