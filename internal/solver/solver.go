package solver

import (
	"context"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// New builds the searcher for a configuration. Plain pruning and
// forward checking work directly on the board; MAC maintains a domain
// store and re-propagates after every tentative assignment.
func New(cfg domain.Config) ports.Searcher {
	switch cfg.Strategy {
	case domain.ForwardChecking:
		return &forwardSearch{sel: NewCellSelector(cfg.CellSelect), ord: NewValueOrderer(cfg.ValueOrder)}
	case domain.MACPruning:
		return &macSearch{cell: cfg.CellSelect, val: cfg.ValueOrder}
	default:
		return &pruningSearch{sel: NewCellSelector(cfg.CellSelect), ord: NewValueOrderer(cfg.ValueOrder)}
	}
}

// pruningSearch is backtracking with pruning: only admissible values
// are tried, and a failed branch restores the cell before moving on.
type pruningSearch struct {
	sel CellSelector
	ord ValueOrderer
}

func (s *pruningSearch) Search(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	var st ports.Stats
	solved := s.search(ctx, &b.Values, &st)
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return solved, st, nil
}

func (s *pruningSearch) search(ctx context.Context, g *[9][9]uint8, st *ports.Stats) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := s.sel.Select(g)
	if !ok {
		return true
	}
	st.Steps++
	for _, v := range s.ord.Order(g, r, c) {
		g[r][c] = v
		if s.search(ctx, g, st) {
			return true
		}
		st.Backtracks++
		g[r][c] = 0
	}
	return false
}

// forwardSearch adds a look-ahead to pruning: after each tentative
// placement it verifies no other empty cell has been stranded with
// zero candidates, and undoes the placement without recursing if one
// has.
type forwardSearch struct {
	sel CellSelector
	ord ValueOrderer
}

func (s *forwardSearch) Search(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	var st ports.Stats
	solved := s.search(ctx, &b.Values, &st)
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return solved, st, nil
}

func (s *forwardSearch) search(ctx context.Context, g *[9][9]uint8, st *ports.Stats) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := s.sel.Select(g)
	if !ok {
		return true
	}
	st.Steps++
	for _, v := range s.ord.Order(g, r, c) {
		g[r][c] = v
		if !hasFuture(g) {
			g[r][c] = 0
			st.Backtracks++
			continue
		}
		if s.search(ctx, g, st) {
			return true
		}
		st.Backtracks++
		g[r][c] = 0
	}
	return false
}
