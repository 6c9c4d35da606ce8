package graph

import (
	mol "github.com/RxnWeaver/iupac/molecule"
)

// RingInfo is a read-only index over a molecule's already-computed
// SSSR, built once after `SSSR` and `Perimeter` have run, so the
// downstream naming layers can ask ring-membership questions without
// re-scanning the molecule's rings list on every call.
type RingInfo struct {
	m           *mol.Molecule
	rings       []*mol.Ring
	systems     []*mol.RingSystem
	ringsByAtom map[uint16][]uint16
	ringsByBond map[uint16][]uint16
}

// NewRingInfo builds a `RingInfo` over the molecule's current ring
// perception results. Callers normally invoke `SSSR` first.
func NewRingInfo(m *mol.Molecule) *RingInfo {
	ri := &RingInfo{
		m:           m,
		rings:       m.Rings(),
		systems:     m.RingSystems(),
		ringsByAtom: make(map[uint16][]uint16),
		ringsByBond: make(map[uint16][]uint16),
	}
	for _, r := range ri.rings {
		for _, aid := range r.Atoms() {
			ri.ringsByAtom[aid] = append(ri.ringsByAtom[aid], r.Id())
		}
		for _, bid := range r.Bonds() {
			ri.ringsByBond[bid] = append(ri.ringsByBond[bid], r.Id())
		}
	}
	return ri
}

// IsAtomInRing answers whether the given atom belongs to any SSSR
// ring.
func (ri *RingInfo) IsAtomInRing(aid uint16) bool { return len(ri.ringsByAtom[aid]) > 0 }

// IsBondInRing answers whether the given bond belongs to any SSSR
// ring.
func (ri *RingInfo) IsBondInRing(bid uint16) bool { return len(ri.ringsByBond[bid]) > 0 }

// AtomRingMembership answers the number of SSSR rings the given atom
// belongs to (0 for an acyclic atom, >1 for a fusion/bridgehead atom).
func (ri *RingInfo) AtomRingMembership(aid uint16) int { return len(ri.ringsByAtom[aid]) }

// RingsContainingAtom answers the IDs of every SSSR ring the given
// atom belongs to.
func (ri *RingInfo) RingsContainingAtom(aid uint16) []uint16 {
	out := make([]uint16, len(ri.ringsByAtom[aid]))
	copy(out, ri.ringsByAtom[aid])
	return out
}

// RingsOfSize answers every SSSR ring of exactly the given size.
func (ri *RingInfo) RingsOfSize(size int) []*mol.Ring {
	var out []*mol.Ring
	for _, r := range ri.rings {
		if r.Size() == size {
			out = append(out, r)
		}
	}
	return out
}

// Rings answers every SSSR ring indexed by this `RingInfo`.
func (ri *RingInfo) Rings() []*mol.Ring { return ri.rings }

// RingSystems answers every ring system indexed by this `RingInfo`.
func (ri *RingInfo) RingSystems() []*mol.RingSystem { return ri.systems }

// RingSystemOf answers the ring system the given ring belongs to, if
// any.
func (ri *RingInfo) RingSystemOf(ringId uint16) *mol.RingSystem {
	for _, rs := range ri.systems {
		for _, id := range rs.RingIds() {
			if id == ringId {
				return rs
			}
		}
	}
	return nil
}
