package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-csp/internal/csp"
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// SearcherFactory builds the searcher for one configuration.
type SearcherFactory func(domain.Config) ports.Searcher

// Service orchestrates solver runs: preprocessing, timing, and result
// packaging. An unsolvable puzzle is a result, never an error.
type Service struct {
	NewSearcher SearcherFactory
}

func NewService(f SearcherFactory) *Service {
	return &Service{NewSearcher: f}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Run executes one configuration against a copy of the board. When
// AC-3 preprocessing is requested (MAC always requests it) the domain
// store is initialized and propagated first: an inconsistent store
// short-circuits to an unsolved result, otherwise forced singles are
// committed before the search starts. Only the search itself is timed.
func (s *Service) Run(ctx context.Context, b *domain.Board, cfg domain.Config) (domain.SolveResult, error) {
	if s.NewSearcher == nil {
		return domain.SolveResult{}, errNotConfigured
	}
	work := *b
	res := domain.SolveResult{Config: cfg}
	if cfg.Preprocess || cfg.Strategy == domain.MACPruning {
		dom := csp.Init(&work.Values)
		if !csp.Propagate(dom) {
			res.Board = work
			return res, nil
		}
		csp.FillSingles(dom, &work.Values)
	}
	start := time.Now()
	solved, st, err := s.NewSearcher(cfg).Search(ctx, &work)
	res.Elapsed = time.Since(start)
	res.ElapsedMs = res.Elapsed.Milliseconds()
	res.Solved = solved
	res.Steps = st.Steps
	res.Backtracks = st.Backtracks
	res.Board = work
	if err != nil {
		return res, err
	}
	return res, nil
}

// Compare runs each configuration sequentially, every run against an
// independent copy of the initial board. A context error stops the
// sweep; an unsolved result does not.
func (s *Service) Compare(ctx context.Context, b *domain.Board, cfgs []domain.Config) ([]domain.SolveResult, error) {
	out := make([]domain.SolveResult, 0, len(cfgs))
	for _, cfg := range cfgs {
		res, err := s.Run(ctx, b, cfg)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

// AllConfigs enumerates the twelve supported combinations: pruning and
// forward checking across both selectors and both orderers, plus MAC
// across both selectors and both of its orderers.
func AllConfigs() []domain.Config {
	out := make([]domain.Config, 0, 12)
	for _, strat := range []domain.SearchStrategy{domain.Pruning, domain.ForwardChecking, domain.MACPruning} {
		for _, sel := range []domain.CellSelect{domain.FirstEmpty, domain.MRV} {
			for _, ord := range []domain.ValueOrder{domain.BasicOrder, domain.LCV} {
				out = append(out, domain.Config{
					Strategy:   strat,
					CellSelect: sel,
					ValueOrder: ord,
					Preprocess: strat == domain.MACPruning,
				})
			}
		}
	}
	return out
}
