package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-csp/internal/domain"
)

var solved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateAcceptsSolvedBoard(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: solved})
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("valid board rejected: ok=%v conflicts=%v err=%v", ok, conf, err)
	}
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	g := solved
	g[0][0] = 0
	g[4][4] = 0
	ok, _, err := New().Validate(context.Background(), &domain.Board{Values: g})
	if err != nil || !ok {
		t.Fatal("partial board without conflicts rejected")
	}
}

func TestValidateReportsDuplicates(t *testing.T) {
	g := solved
	g[0][8] = g[0][0]
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: g})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatal("duplicate in row not reported")
	}
	found := false
	for _, cc := range conf {
		if cc.Row == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("no conflict reported in row 0: %v", conf)
	}
}

func TestIsSolution(t *testing.T) {
	ctx := context.Background()
	v := New()
	if ok, _ := v.IsSolution(ctx, &domain.Board{Values: solved}); !ok {
		t.Fatal("complete valid board rejected")
	}
	g := solved
	g[8][8] = 0
	if ok, _ := v.IsSolution(ctx, &domain.Board{Values: g}); ok {
		t.Fatal("incomplete board accepted as solution")
	}
	g = solved
	g[8][8] = g[8][0]
	if ok, _ := v.IsSolution(ctx, &domain.Board{Values: g}); ok {
		t.Fatal("conflicting board accepted as solution")
	}
}
