package solver

import "svw.info/sudoku-csp/internal/domain"

// ValueOrderer produces the candidate values for a cell in the order
// the search should try them.
type ValueOrderer interface {
	Order(g *[9][9]uint8, r, c int) []uint8
}

// NewValueOrderer returns the orderer for the configured kind.
func NewValueOrderer(k domain.ValueOrder) ValueOrderer {
	if k == domain.LCV {
		return leastConstraining{}
	}
	return ascending{}
}

// ascending tries admissible values in natural 1-9 order.
type ascending struct{}

func (ascending) Order(g *[9][9]uint8, r, c int) []uint8 {
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if isValid(g, r, c, v) {
			out = append(out, v)
		}
	}
	return out
}

// leastConstraining orders admissible values by how many options they
// leave open for the cell's neighbours: each value is tentatively
// placed, the admissible (value, empty cell) pairs across the row, the
// column, and the box are summed (cells shared between regions count
// in each region they appear in), and the placement is undone. Values
// sort ascending by that sum via stable ordered insertion, so ties
// keep insertion order.
type leastConstraining struct{}

func (leastConstraining) Order(g *[9][9]uint8, r, c int) []uint8 {
	type scored struct {
		value uint8
		count int
	}
	ranked := make([]scored, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if !isValid(g, r, c, v) {
			continue
		}
		g[r][c] = v
		count := 0
		for j := 0; j < 9; j++ {
			if g[r][j] == 0 && j != c {
				count += countCandidates(g, r, j)
			}
			if g[j][c] == 0 && j != r {
				count += countCandidates(g, j, c)
			}
		}
		br, bc := (r/3)*3, (c/3)*3
		for rr := br; rr < br+3; rr++ {
			for cc := bc; cc < bc+3; cc++ {
				if g[rr][cc] == 0 && (rr != r || cc != c) {
					count += countCandidates(g, rr, cc)
				}
			}
		}
		g[r][c] = 0

		pos := 0
		for pos < len(ranked) && ranked[pos].count <= count {
			pos++
		}
		ranked = append(ranked, scored{})
		copy(ranked[pos+1:], ranked[pos:])
		ranked[pos] = scored{value: v, count: count}
	}
	out := make([]uint8, len(ranked))
	for i, s := range ranked {
		out[i] = s.value
	}
	return out
}
