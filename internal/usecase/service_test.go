package usecase

import (
	"context"
	"testing"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/solver"
)

var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newService() *Service {
	return NewService(func(cfg domain.Config) ports.Searcher { return solver.New(cfg) })
}

func TestAllConfigsEnumeratesTwelve(t *testing.T) {
	cfgs := AllConfigs()
	if len(cfgs) != 12 {
		t.Fatalf("got %d configurations, want 12", len(cfgs))
	}
	for _, cfg := range cfgs {
		if cfg.Strategy == domain.MACPruning && !cfg.Preprocess {
			t.Fatal("MAC configuration without preprocessing")
		}
	}
}

func TestCompareAllConfigsAgreeOnSolution(t *testing.T) {
	svc := newService()
	in := &domain.Board{Values: sample}
	results, err := svc.Compare(context.Background(), in, AllConfigs())
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	first := results[0]
	if !first.Solved {
		t.Fatal("first configuration did not solve the puzzle")
	}
	for _, res := range results {
		if !res.Solved {
			t.Fatalf("%s/%s/%s did not solve the puzzle",
				res.Config.Strategy, res.Config.CellSelect, res.Config.ValueOrder)
		}
		if res.Board != first.Board {
			t.Fatalf("%s/%s/%s produced a different final board",
				res.Config.Strategy, res.Config.CellSelect, res.Config.ValueOrder)
		}
	}
	// the input board is never mutated by comparison runs
	if in.Values != sample {
		t.Fatal("comparison mutated the input board")
	}
}

func TestMACNoMoreWorkThanPlainPruning(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	plain, err := svc.Run(ctx, &domain.Board{Values: sample}, domain.Config{
		Strategy: domain.Pruning, CellSelect: domain.FirstEmpty, ValueOrder: domain.BasicOrder,
	})
	if err != nil {
		t.Fatalf("plain run failed: %v", err)
	}
	mac, err := svc.Run(ctx, &domain.Board{Values: sample}, domain.Config{
		Strategy: domain.MACPruning, CellSelect: domain.MRV, ValueOrder: domain.LCV,
	})
	if err != nil {
		t.Fatalf("mac run failed: %v", err)
	}
	if !plain.Solved || !mac.Solved {
		t.Fatal("both runs must solve the puzzle")
	}
	if plain.Backtracks == 0 {
		t.Skip("puzzle required no backtracking, nothing to compare")
	}
	if mac.Steps > plain.Steps || mac.Backtracks > plain.Backtracks {
		t.Fatalf("mac (steps=%d backtracks=%d) did more work than plain pruning (steps=%d backtracks=%d)",
			mac.Steps, mac.Backtracks, plain.Steps, plain.Backtracks)
	}
}

func TestPreprocessShortCircuitsInconsistentBoard(t *testing.T) {
	var g [9][9]uint8
	g[3][2] = 4
	g[3][6] = 4 // same row, twice
	svc := newService()
	res, err := svc.Run(context.Background(), &domain.Board{Values: g}, domain.Config{
		Strategy: domain.Pruning, CellSelect: domain.FirstEmpty, ValueOrder: domain.BasicOrder,
		Preprocess: true,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Solved {
		t.Fatal("inconsistent board reported solved")
	}
	if res.Steps != 0 || res.Backtracks != 0 {
		t.Fatalf("search ran despite short-circuit (steps=%d backtracks=%d)", res.Steps, res.Backtracks)
	}
}

func TestRunWithoutFactoryFails(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Run(context.Background(), &domain.Board{}, domain.Config{}); err == nil {
		t.Fatal("expected a configuration error")
	}
}
