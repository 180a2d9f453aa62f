package validator

import (
	"context"

	"svw.info/sudoku-csp/internal/domain"
)

// FastValidator checks row/col/box uniqueness with bitmasks. It shares
// no code with the solver's feasibility test, so solver output can be
// verified independently.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the placed digits are conflict free and
// returns the coordinates of every duplicate found. Empty cells are
// ignored.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cells [9]domain.CellCoord) {
		m := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}
	for u := 0; u < 9; u++ {
		var row, col, box [9]domain.CellCoord
		br, bc := (u/3)*3, (u%3)*3
		for k := 0; k < 9; k++ {
			row[k] = domain.CellCoord{Row: u, Col: k}
			col[k] = domain.CellCoord{Row: k, Col: u}
			box[k] = domain.CellCoord{Row: br + k/3, Col: bc + k%3}
		}
		scan(row)
		scan(col)
		scan(box)
	}
	return len(conf) == 0, conf, nil
}

// IsSolution reports whether the board is completely filled and every
// row, column, and box contains each of 1-9 exactly once.
func (v *FastValidator) IsSolution(ctx context.Context, b *domain.Board) (bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false, nil
			}
		}
	}
	ok, _, err := v.Validate(ctx, b)
	return ok, err
}
