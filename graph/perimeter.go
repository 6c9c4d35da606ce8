package graph

import (
	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// Perimeter computes the outer-boundary atom ordering of a fused or
// isolated ring system: the cyclic walk, along edges that belong to
// exactly one constituent ring, that visits every atom
// belonging to exactly one or two constituent rings, skipping
// interior atoms shared by three or more rings (pyrene's central
// atoms, for instance). The result is cached onto the ring system via
// `SetPerimeter` and also returned.
//
// Spiro and bridged systems have no single perimeter walk in the
// fused-ring sense; for those this answers the atom IDs of the
// largest constituent ring, a reasonable starting point for the
// numbering layer's own bridgehead-aware logic.
func Perimeter(m *mol.Molecule, rs *mol.RingSystem, rings []*mol.Ring) []uint16 {
	sysRings := ringsOf(rs, rings)
	if len(sysRings) == 0 {
		return nil
	}
	if len(sysRings) == 1 {
		order := sysRings[0].Atoms()
		rs.SetPerimeter(order)
		return order
	}
	if c := rs.Classification(); c == cmn.RingSpiro || c == cmn.RingBridged {
		order := largestRing(sysRings).Atoms()
		rs.SetPerimeter(order)
		return order
	}

	membership := make(map[uint16]int, rs.Size())
	for _, r := range sysRings {
		for _, aid := range r.Atoms() {
			membership[aid]++
		}
	}

	adj := make(map[uint16][]uint16)
	for _, r := range sysRings {
		atoms := r.Atoms()
		n := len(atoms)
		for i := 0; i < n; i++ {
			a1, a2 := atoms[i], atoms[(i+1)%n]
			edgeRings := 0
			for _, o := range sysRings {
				if o.HasAtom(a1) && o.HasAtom(a2) {
					edgeRings++
				}
			}
			if edgeRings == 1 {
				adj[a1] = appendUnique(adj[a1], a2)
				adj[a2] = appendUnique(adj[a2], a1)
			}
		}
	}

	var start uint16
	found := false
	for aid, deg := range membership {
		if deg <= 2 {
			start = aid
			found = true
			break
		}
	}
	if !found {
		order := largestRing(sysRings).Atoms()
		rs.SetPerimeter(order)
		return order
	}

	order := []uint16{start}
	visited := map[uint16]bool{start: true}
	prev := start
	cur, ok := firstNeighbour(adj[start])
	for ok && cur != start {
		order = append(order, cur)
		visited[cur] = true
		next, found := uint16(0), false
		for _, n := range adj[cur] {
			if n != prev && !visited[n] {
				next, found = n, true
				break
			}
			if n == start && len(order) > 2 {
				next, found = start, true
			}
		}
		prev, cur, ok = cur, next, found
	}

	rs.SetPerimeter(order)
	return order
}

func firstNeighbour(ns []uint16) (uint16, bool) {
	if len(ns) == 0 {
		return 0, false
	}
	return ns[0], true
}

func largestRing(rings []*mol.Ring) *mol.Ring {
	best := rings[0]
	for _, r := range rings[1:] {
		if r.Size() > best.Size() {
			best = r
		}
	}
	return best
}
