// Package boardio reads and renders the textual puzzle format. The
// solver core never touches readers or files; a board either parses
// fully here or never reaches the core.
package boardio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudoku-csp/internal/domain"
)

// Read parses up to nine rows of puzzle text. Digits fill cells ('0'
// for empty), a space also marks an empty cell, commas are tolerated
// as separators, and any other character is skipped without error;
// that looseness is part of the accepted format. Characters past the
// ninth value of a row are ignored; missing rows stay all zero.
func Read(r io.Reader) (*domain.Board, error) {
	b := &domain.Board{}
	sc := bufio.NewScanner(r)
	row := 0
	for row < 9 && sc.Scan() {
		line := sc.Text()
		col := 0
		for i := 0; i < len(line) && col < 9; i++ {
			ch := line[i]
			switch {
			case ch == ',':
				// separator
			case ch >= '0' && ch <= '9':
				b.Values[row][col] = ch - '0'
				col++
			case ch == ' ':
				b.Values[row][col] = 0
				col++
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	return b, nil
}

// ReadFile loads a puzzle from disk.
func ReadFile(path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open puzzle: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Render formats the board with `|` between box columns and a dashed
// line between box rows.
func Render(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString("- - - - - - - - - - -\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString("| ")
			}
			sb.WriteByte('0' + b.Values[r][c])
			if c != 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
