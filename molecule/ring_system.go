package molecule

import (
	bits "github.com/willf/bitset"

	cmn "github.com/RxnWeaver/iupac/common"
)

// RingSystem represents a maximal set of mutually-fused, -spiro- or
// -bridged-linked SSSR rings. Unlike a `Ring`, a ring
// system's classification is a derived property, set by the `graph`
// package's `BuildRingSystems` when it builds the system; the ring system itself
// is otherwise a read-only view over its constituent rings.
type RingSystem struct {
	id uint16

	rings      []uint16
	atomSet    *bits.BitSet
	bondSet    *bits.BitSet
	perimeter  []uint16
	class      cmn.RingClassification
	isAromatic bool
}

// NewRingSystem builds a ring system from the given constituent
// rings, all belonging to the given molecule.
func NewRingSystem(mol *Molecule, id uint16, rings []*Ring) *RingSystem {
	rs := new(RingSystem)
	rs.id = id
	rs.rings = make([]uint16, 0, len(rings))
	rs.atomSet = bits.New(cmn.ListSizeMedium)
	rs.bondSet = bits.New(cmn.ListSizeMedium)

	for _, r := range rings {
		rs.rings = append(rs.rings, r.id)
		rs.atomSet.InPlaceUnion(r.atomSet)
		rs.bondSet.InPlaceUnion(r.bondSet)
		r.SetRingSystemId(id)
	}

	return rs
}

// Id answers this ring system's unique ID.
func (rs *RingSystem) Id() uint16 { return rs.id }

// Size answers the number of SSSR rings comprising this system.
func (rs *RingSystem) Size() int { return len(rs.rings) }

// RingIds answers the IDs of the SSSR rings comprising this system.
func (rs *RingSystem) RingIds() []uint16 {
	out := make([]uint16, len(rs.rings))
	copy(out, rs.rings)
	return out
}

// AtomIds answers the IDs of every atom belonging to any ring in this
// system.
func (rs *RingSystem) AtomIds() []uint16 {
	out := make([]uint16, 0, rs.atomSet.Count())
	for aid, ok := rs.atomSet.NextSet(0); ok; aid, ok = rs.atomSet.NextSet(aid + 1) {
		out = append(out, uint16(aid))
	}
	return out
}

// HasAtom answers if the given atom belongs to any ring in this
// system.
func (rs *RingSystem) HasAtom(aid uint16) bool { return rs.atomSet.Test(uint(aid)) }

// HasBond answers if the given bond belongs to any ring in this
// system.
func (rs *RingSystem) HasBond(bid uint16) bool { return rs.bondSet.Test(uint(bid)) }

// Classification answers this system's fused/spiro/bridged/isolated
// tag, as computed by `graph.BuildRingSystems`.
func (rs *RingSystem) Classification() cmn.RingClassification { return rs.class }

// SetClassification records this system's classification. Called by
// the `graph` package.
func (rs *RingSystem) SetClassification(c cmn.RingClassification) { rs.class = c }

// IsAromatic answers whether this ring system, considered as a whole,
// is aromatic.
func (rs *RingSystem) IsAromatic() bool { return rs.isAromatic }

// SetAromatic records this system's whole-system aromaticity verdict.
func (rs *RingSystem) SetAromatic(v bool) { rs.isAromatic = v }

// Perimeter answers the cached outer-perimeter atom ordering, if
// `SetPerimeter` has been called.
func (rs *RingSystem) Perimeter() []uint16 {
	out := make([]uint16, len(rs.perimeter))
	copy(out, rs.perimeter)
	return out
}

// SetPerimeter records the outer-perimeter atom ordering computed by
// `graph.Perimeter`.
func (rs *RingSystem) SetPerimeter(order []uint16) {
	rs.perimeter = append([]uint16(nil), order...)
}

// SharedAtomCount answers how many atoms two rings of this system
// share; it is a package-level form of `Ring.CommonAtomCount`.
func SharedAtomCount(r1, r2 *Ring) int { return r1.CommonAtomCount(r2) }
