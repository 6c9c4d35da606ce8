package graph

import (
	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// BuildRingSystems partitions the given SSSR rings into maximal
// groups of mutually atom-sharing rings (a union-find over the
// "shares at least one atom with" relation), then classifies each
// resulting system as isolated, fused, spiro or bridged.
//
// Two rings that share zero atoms but are connected only by an
// acyclic bond (e.g. the two phenyl rings of biphenyl) land in
// separate, single-ring systems, each trivially Isolated.
func BuildRingSystems(m *mol.Molecule, rings []*mol.Ring) []*mol.RingSystem {
	if len(rings) == 0 {
		return nil
	}

	parent := make([]int, len(rings))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for i := 0; i < len(rings); i++ {
		for j := i + 1; j < len(rings); j++ {
			if rings[i].CommonAtomCount(rings[j]) > 0 {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]*mol.Ring)
	for i, r := range rings {
		root := find(i)
		groups[root] = append(groups[root], r)
	}

	systems := make([]*mol.RingSystem, 0, len(groups))
	var id uint16
	for _, grp := range groups {
		rs := mol.NewRingSystem(m, id, grp)
		classify(m, rs, grp)
		systems = append(systems, rs)
		id++
	}
	return systems
}

// classify derives a ring system's isolated/fused/spiro/bridged tag
// from the maximum number of atoms any two of its constituent rings
// share, and flags the relevant bridgehead/spiro atoms in the process.
func classify(m *mol.Molecule, rs *mol.RingSystem, rings []*mol.Ring) {
	if len(rings) == 1 {
		rs.SetClassification(cmn.RingIsolated)
		return
	}

	maxShared := 0
	anyNonAdjacentPair := false
	sharedAtomCounts := make(map[uint16]int)

	for i := 0; i < len(rings); i++ {
		for j := i + 1; j < len(rings); j++ {
			shared := rings[i].CommonAtoms(rings[j])
			if len(shared) > maxShared {
				maxShared = len(shared)
			}
			for _, aid := range shared {
				sharedAtomCounts[aid]++
			}
			if len(shared) == 2 {
				a1, a2 := shared[0], shared[1]
				if m.BondBetween(a1, a2) == nil {
					anyNonAdjacentPair = true
				}
			} else if len(shared) > 2 {
				anyNonAdjacentPair = true
			}
		}
	}

	switch {
	case maxShared == 0:
		// Not reached for a system of two or more rings: union-find
		// only groups rings when some pair shares an atom, so
		// maxShared is then at least 1. Kept as a default of Fused.
		rs.SetClassification(cmn.RingFused)
	case maxShared == 1:
		rs.SetClassification(cmn.RingSpiro)
		for aid, c := range sharedAtomCounts {
			if c == len(rings)-1 || c >= 1 {
				if a := m.AtomWithId(aid); a != nil {
					a.SetSpiro(true)
				}
			}
		}
	case anyNonAdjacentPair:
		rs.SetClassification(cmn.RingBridged)
		for aid, c := range sharedAtomCounts {
			if c >= 1 {
				if a := m.AtomWithId(aid); a != nil {
					a.SetBridgeHead(true)
				}
			}
		}
	default:
		rs.SetClassification(cmn.RingFused)
		for aid := range sharedAtomCounts {
			if a := m.AtomWithId(aid); a != nil {
				a.SetBridgeHead(true)
			}
		}
	}
}
