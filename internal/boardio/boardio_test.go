package boardio

import (
	"strings"
	"testing"

	"svw.info/sudoku-csp/internal/domain"
)

func TestReadDigitsCommasAndSpaces(t *testing.T) {
	in := strings.Join([]string{
		"5,3,0,0,7,0,0,0,0",
		"600195000",
		"  98    6", // spaces are empty cells
		"8xx0 6 00 3",
		"400803001",
		"700020006",
		"060000280",
		"000419005",
		"000080079",
	}, "\n")
	b, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if b.Values[0][0] != 5 || b.Values[0][4] != 7 {
		t.Fatalf("row 0 parsed wrong: %v", b.Values[0])
	}
	if b.Values[2][0] != 0 || b.Values[2][2] != 9 || b.Values[2][8] != 6 {
		t.Fatalf("spaces not treated as empty cells: %v", b.Values[2])
	}
	// 'x' runes are skipped entirely, consuming no cell
	want := [9]uint8{8, 0, 0, 6, 0, 0, 0, 0, 3}
	if b.Values[3] != want {
		t.Fatalf("row 3 = %v, want %v", b.Values[3], want)
	}
}

func TestReadShortInputLeavesZeroRows(t *testing.T) {
	b, err := Read(strings.NewReader("123456789\n987654321"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if b.Values[0][0] != 1 || b.Values[1][0] != 9 {
		t.Fatal("provided rows not parsed")
	}
	for r := 2; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				t.Fatalf("row %d not all zero", r)
			}
		}
	}
}

func TestReadIgnoresExtraColumnsAndRows(t *testing.T) {
	row := "123456789999\n"
	b, err := Read(strings.NewReader(strings.Repeat(row, 11)))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for r := 0; r < 9; r++ {
		if b.Values[r][8] != 9 || b.Values[r][0] != 1 {
			t.Fatalf("row %d misparsed: %v", r, b.Values[r])
		}
	}
}

func TestRenderSeparators(t *testing.T) {
	b := &domain.Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	out := Render(b)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 9 rows + 2 separators", len(lines))
	}
	if lines[3] != "- - - - - - - - - - -" || lines[7] != "- - - - - - - - - - -" {
		t.Fatalf("box row separators missing: %q / %q", lines[3], lines[7])
	}
	if strings.Count(lines[0], "|") != 2 {
		t.Fatalf("box column separators missing: %q", lines[0])
	}
	if lines[0] != "1 2 3 | 4 5 6 | 7 8 9" {
		t.Fatalf("row 0 rendered as %q", lines[0])
	}
}
