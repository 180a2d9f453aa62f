package csp

// Cells are addressed 0..80 in row-major order.

// Index converts (row, col) to a flat cell index.
func Index(r, c int) int { return r*9 + c }

// Coord converts a flat cell index back to (row, col).
func Coord(i int) (int, int) { return i / 9, i % 9 }

// related[i] lists the 20 cells sharing a row, column, or box with i,
// de-duplicated and excluding i itself. Built once at startup; both the
// AC-3 arc list and the domain-based value ordering depend on its size
// being exactly 20.
var related [81][]int

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			i := Index(r, c)
			var seen [81]bool
			cells := make([]int, 0, 20)
			add := func(rr, cc int) {
				j := Index(rr, cc)
				if j == i || seen[j] {
					return
				}
				seen[j] = true
				cells = append(cells, j)
			}
			for k := 0; k < 9; k++ {
				add(r, k)
				add(k, c)
			}
			br, bc := (r/3)*3, (c/3)*3
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					add(br+dr, bc+dc)
				}
			}
			related[i] = cells
		}
	}
}

// Related returns the 20 cells constrained together with cell i.
// Callers must not modify the returned slice.
func Related(i int) []int { return related[i] }
