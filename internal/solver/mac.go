package solver

import (
	"context"

	"svw.info/sudoku-csp/internal/csp"
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// macSearch is backtracking with maintained arc consistency. It works
// on a domain store instead of direct feasibility checks: a cell is
// assigned by collapsing its domain to a singleton on a branch-local
// copy of the store and re-running AC-3; candidates the propagation
// rejects are never recursed into. A successful branch hands its store
// back up so the caller finishes from consistent domains; a failed
// branch discards its copy.
type macSearch struct {
	cell domain.CellSelect
	val  domain.ValueOrder
}

func (s *macSearch) Search(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	var st ports.Stats
	dom := csp.Init(&b.Values)
	if !csp.Propagate(dom) {
		return false, st, nil
	}
	if !s.search(ctx, dom, &st) {
		if err := ctx.Err(); err != nil {
			return false, st, err
		}
		return false, st, nil
	}
	for i := 0; i < 81; i++ {
		r, c := csp.Coord(i)
		v, _ := dom.Single(i)
		b.Values[r][c] = v
	}
	return true, st, nil
}

func (s *macSearch) search(ctx context.Context, dom *csp.Domains, st *ports.Stats) bool {
	if ctx.Err() != nil {
		return false
	}
	i, ok := s.selectCell(dom)
	if !ok {
		return true // every domain is a singleton
	}
	st.Steps++
	for _, v := range s.orderValues(dom, i) {
		next := *dom
		next.SetSingleton(i, v)
		if !csp.Propagate(&next) {
			st.Backtracks++
			continue
		}
		if s.search(ctx, &next, st) {
			*dom = next
			return true
		}
		st.Backtracks++
	}
	return false
}

// selectCell picks the next undecided cell (domain size > 1) using the
// configured selector, sized against the store rather than the board.
func (s *macSearch) selectCell(dom *csp.Domains) (int, bool) {
	if s.cell == domain.MRV {
		best := 10
		bi, found := 0, false
		for i := 0; i < 81; i++ {
			n := dom.Size(i)
			if n < 2 {
				continue
			}
			if n < best {
				best = n
				bi, found = i, true
				if best == 2 {
					return bi, true
				}
			}
		}
		return bi, found
	}
	for i := 0; i < 81; i++ {
		if dom.Size(i) > 1 {
			return i, true
		}
	}
	return 0, false
}

// orderValues returns cell i's candidates in try order. The LCV
// variant scores each candidate by a penalty over the related cells:
// a neighbour that would be left with exactly one surviving value
// costs a flat 100 (a near-dead-end is strongly avoided), any other
// neighbour costs its surviving domain size. Lower totals go first;
// ties keep ascending value order. This approximates least
// constraining value rather than computing it exactly.
func (s *macSearch) orderValues(dom *csp.Domains, i int) []uint8 {
	values := dom.Values(i)
	if s.val != domain.LCV {
		return values
	}
	type scored struct {
		value   uint8
		penalty int
	}
	ranked := make([]scored, 0, len(values))
	for _, v := range values {
		penalty := 0
		for _, j := range csp.Related(i) {
			surviving := dom.Size(j)
			if dom.Has(j, v) {
				surviving--
			}
			if surviving == 1 {
				penalty += 100
			} else {
				penalty += surviving
			}
		}
		pos := 0
		for pos < len(ranked) && ranked[pos].penalty <= penalty {
			pos++
		}
		ranked = append(ranked, scored{})
		copy(ranked[pos+1:], ranked[pos:])
		ranked[pos] = scored{value: v, penalty: penalty}
	}
	out := make([]uint8, len(ranked))
	for k, sc := range ranked {
		out[k] = sc.value
	}
	return out
}
