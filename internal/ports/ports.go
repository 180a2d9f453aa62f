package ports

import (
	"context"

	"svw.info/sudoku-csp/internal/domain"
)

// Stats counts the work one search performed. Steps is the number of
// cells branched on; Backtracks the number of candidate values tried
// and subsequently undone (including candidates rejected before the
// recursive call by forward checking or MAC propagation).
type Stats struct {
	Steps      int
	Backtracks int
}

// Searcher runs one backtracking search to completion or exhaustion.
// The board is mutated in place; on failure it is restored to the
// exact values it held on entry.
type Searcher interface {
	Search(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Validator performs constraint checks (row/col/box) independent of
// the search machinery.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}
