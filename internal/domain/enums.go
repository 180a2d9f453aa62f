package domain

import "strings"

// SearchStrategy picks the backtracking variant.
type SearchStrategy int

const (
	Pruning         SearchStrategy = iota // plain backtracking with pruning
	ForwardChecking                       // prune branches that strand another cell
	MACPruning                            // maintained arc consistency over domains
)

// CellSelect picks which empty cell to branch on next.
type CellSelect int

const (
	FirstEmpty CellSelect = iota // row-major scan
	MRV                          // minimum remaining values
)

// ValueOrder picks the order candidate values are tried in.
type ValueOrder int

const (
	BasicOrder ValueOrder = iota // ascending 1-9
	LCV                          // least constraining value first
)

func (s SearchStrategy) String() string {
	switch s {
	case ForwardChecking:
		return "forward-checking"
	case MACPruning:
		return "mac"
	default:
		return "pruning"
	}
}

func (c CellSelect) String() string {
	if c == MRV {
		return "mrv"
	}
	return "first-empty"
}

func (v ValueOrder) String() string {
	if v == LCV {
		return "lcv"
	}
	return "basic"
}

// ParseSearchStrategy maps a user-facing name to a strategy; unknown
// names fall back to plain pruning.
func ParseSearchStrategy(s string) SearchStrategy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward-checking", "forward", "fc":
		return ForwardChecking
	case "mac", "mac-pruning":
		return MACPruning
	default:
		return Pruning
	}
}

func ParseCellSelect(s string) CellSelect {
	if strings.ToLower(strings.TrimSpace(s)) == "mrv" {
		return MRV
	}
	return FirstEmpty
}

func ParseValueOrder(s string) ValueOrder {
	if strings.ToLower(strings.TrimSpace(s)) == "lcv" {
		return LCV
	}
	return BasicOrder
}
