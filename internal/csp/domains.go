package csp

import "math/bits"

// Domains holds the candidate set for each of the 81 cells as a bitmask
// (bit v set = value v still possible). A plain value copy produces a
// fully independent store, which is what MAC search relies on when it
// branches.
type Domains [81]uint16

// fullMask has bits 1..9 set.
const fullMask uint16 = 0x3FE

// Init builds the domain store for a board: filled cells get a
// singleton domain, empty cells get every value not already placed in
// their row, column, or box.
func Init(g *[9][9]uint8) *Domains {
	var d Domains
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			i := Index(r, c)
			if v := g[r][c]; v != 0 {
				d[i] = 1 << v
				continue
			}
			m := fullMask
			for _, j := range Related(i) {
				jr, jc := Coord(j)
				if v := g[jr][jc]; v != 0 {
					m &^= 1 << v
				}
			}
			d[i] = m
		}
	}
	return &d
}

// Size returns the number of candidates left for cell i.
func (d *Domains) Size(i int) int { return bits.OnesCount16(d[i]) }

// Has reports whether v is still a candidate for cell i.
func (d *Domains) Has(i int, v uint8) bool { return d[i]&(1<<v) != 0 }

// Remove drops v from cell i's candidates.
func (d *Domains) Remove(i int, v uint8) { d[i] &^= 1 << v }

// SetSingleton collapses cell i's domain to exactly {v}.
func (d *Domains) SetSingleton(i int, v uint8) { d[i] = 1 << v }

// Single returns cell i's value when its domain is a singleton.
func (d *Domains) Single(i int) (uint8, bool) {
	if bits.OnesCount16(d[i]) != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(d[i])), true
}

// Values lists cell i's candidates in ascending order.
func (d *Domains) Values(i int) []uint8 {
	out := make([]uint8, 0, bits.OnesCount16(d[i]))
	for v := uint8(1); v <= 9; v++ {
		if d[i]&(1<<v) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// FillSingles writes every singleton domain of an empty cell back onto
// the board. Run after propagation to commit forced values without
// branching. Returns the number of cells filled.
func FillSingles(d *Domains, g *[9][9]uint8) int {
	n := 0
	for i := 0; i < 81; i++ {
		r, c := Coord(i)
		if g[r][c] != 0 {
			continue
		}
		if v, ok := d.Single(i); ok {
			g[r][c] = v
			n++
		}
	}
	return n
}
