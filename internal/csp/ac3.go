package csp

// arc is the directed pair (i, j): i's domain must keep a value
// distinct from j's for the all-different constraint between them.
type arc struct {
	i, j int
}

// Propagate runs AC-3 over the store until fixed point. It reports
// false as soon as any domain empties (no assignment can satisfy the
// constraints); true means the store is arc consistent.
func Propagate(d *Domains) bool {
	for i := 0; i < 81; i++ {
		if d[i] == 0 {
			return false
		}
	}
	queue := make([]arc, 0, 81*20)
	for i := 0; i < 81; i++ {
		for _, j := range Related(i) {
			queue = append(queue, arc{i, j})
		}
	}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !revise(d, a.i, a.j) {
			continue
		}
		if d[a.i] == 0 {
			return false
		}
		// i shrank, so arcs pointing at i may prune again.
		for _, k := range Related(a.i) {
			queue = append(queue, arc{k, a.i})
		}
	}
	return true
}

// revise removes from domain(i) any value with no distinct counterpart
// left in domain(j). For the binary inequality constraint that is
// exactly the case where domain(j) is the singleton {v}: v can then
// never be placed at i. Reports whether domain(i) changed.
func revise(d *Domains, i, j int) bool {
	v, ok := d.Single(j)
	if !ok || !d.Has(i, v) {
		return false
	}
	d.Remove(i, v)
	return true
}
