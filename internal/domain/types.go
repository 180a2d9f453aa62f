package domain

import "time"

// Board holds the current cell values. 0 means empty, 1-9 a placed digit.
type Board struct {
	Values [9][9]uint8 `json:"board"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Config selects one solver setup: which search to run, how the next
// cell is picked, how candidate values are ordered, and whether AC-3
// runs before the search. MAC preprocesses regardless of Preprocess.
type Config struct {
	Strategy   SearchStrategy `json:"strategy"`
	CellSelect CellSelect     `json:"cellSelect"`
	ValueOrder ValueOrder     `json:"valueOrder"`
	Preprocess bool           `json:"preprocess"`
}

// SolveResult is the immutable outcome of one solver run. Board is only
// meaningful when Solved is true.
type SolveResult struct {
	Config     Config        `json:"config"`
	Board      Board         `json:"board"`
	Solved     bool          `json:"solved"`
	Steps      int           `json:"steps"`
	Backtracks int           `json:"backtracks"`
	Elapsed    time.Duration `json:"-"`
	ElapsedMs  int64         `json:"elapsedMs"`
}

// CountFilled returns how many cells hold a digit.
func (b *Board) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
