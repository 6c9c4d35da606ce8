package molecule

import (
	"fmt"

	bits "github.com/willf/bitset"

	cmn "github.com/RxnWeaver/iupac/common"
)

// Ring represents one member of a molecule's SSSR: an ordered
// sequence of atom IDs in traversal order, cyclic by construction.
//
// Rings are immutable once built by the `graph` package's SSSR
// computation: their composition never changes afterwards, even if a
// later consumer mutates the owning molecule's atom tags.
type Ring struct {
	id   uint16 // Unique ID of this ring within its molecule.
	rsId uint16 // ID of the ring system this ring belongs to.

	atoms []uint16 // Atom IDs, in traversal order.
	bonds []uint16 // Bond IDs, in traversal order (parallel to atoms).

	atomSet *bits.BitSet
	bondSet *bits.BitSet

	isAro    bool
	isHetAro bool
	hasCarbonylInRing bool
}

// NewRing constructs a ring from an ordered, cyclic sequence of atom
// IDs and the molecule they belong to. The bond between consecutive
// atoms (wrapping around) must already exist.
func NewRing(mol *Molecule, id uint16, atomIds []uint16) (*Ring, error) {
	r := new(Ring)
	r.id = id
	r.atoms = append([]uint16(nil), atomIds...)
	r.bonds = make([]uint16, 0, len(atomIds))

	r.atomSet = bits.New(uint(len(atomIds)) + 1)
	r.bondSet = bits.New(uint(len(atomIds)) + 1)

	n := len(atomIds)
	if n < 3 {
		return nil, errRingTooSmall(n)
	}

	for i := 0; i < n; i++ {
		a1 := atomIds[i]
		a2 := atomIds[(i+1)%n]
		b := mol.BondBetween(a1, a2)
		if b == nil {
			return nil, errNoBondBetween(a1, a2)
		}
		r.bonds = append(r.bonds, b.id)
		r.atomSet.Set(uint(a1))
		r.bondSet.Set(uint(b.id))
	}

	for _, aid := range atomIds {
		if a := mol.AtomWithId(aid); a != nil && a.IsCarbonylCarbon() {
			r.hasCarbonylInRing = true
		}
	}

	return r, nil
}

// Id answers this ring's unique ID.
func (r *Ring) Id() uint16 { return r.id }

// RingSystemId answers the ID of the ring system this ring belongs
// to.
func (r *Ring) RingSystemId() uint16 { return r.rsId }

// SetRingSystemId records which ring system this ring belongs to.
// Called once by the `graph` package's classification pass.
func (r *Ring) SetRingSystemId(id uint16) { r.rsId = id }

// Size answers the number of atoms (equivalently, bonds) in this
// ring.
func (r *Ring) Size() int { return len(r.atoms) }

// Atoms answers the ordered atom IDs comprising this ring.
func (r *Ring) Atoms() []uint16 {
	out := make([]uint16, len(r.atoms))
	copy(out, r.atoms)
	return out
}

// Bonds answers the ordered bond IDs comprising this ring.
func (r *Ring) Bonds() []uint16 {
	out := make([]uint16, len(r.bonds))
	copy(out, r.bonds)
	return out
}

// HasAtom answers if this ring includes the given atom.
func (r *Ring) HasAtom(aid uint16) bool { return r.atomSet.Test(uint(aid)) }

// HasBond answers if this ring includes the given bond.
func (r *Ring) HasBond(bid uint16) bool { return r.bondSet.Test(uint(bid)) }

// AtomIndex answers the index of the given atom within this ring's
// traversal order, or -1 if it is not a member.
func (r *Ring) AtomIndex(aid uint16) int {
	if !r.HasAtom(aid) {
		return -1
	}
	for i, id := range r.atoms {
		if id == aid {
			return i
		}
	}
	return -1
}

// IsAromatic answers if this ring has been determined to be
// aromatic.
func (r *Ring) IsAromatic() bool { return r.isAro }

// IsHeteroAromatic answers if this ring is aromatic with at least one
// heteroatom.
func (r *Ring) IsHeteroAromatic() bool { return r.isHetAro }

// HasRingCarbonyl answers if at least one atom of this ring is a
// carbonyl carbon (used by the lactam/lactone retained-name pattern
// match in the `ringname` package).
func (r *Ring) HasRingCarbonyl() bool { return r.hasCarbonylInRing }

// HeteroatomCount answers the number of ring atoms that are not
// carbon.
func (r *Ring) HeteroatomCount(mol *Molecule) int {
	c := 0
	for _, aid := range r.atoms {
		if a := mol.AtomWithId(aid); a != nil && a.atNum != 6 {
			c++
		}
	}
	return c
}

// Heteroatoms answers the (symbol, position-index) pairs of this
// ring's non-carbon atoms, in traversal order.
func (r *Ring) Heteroatoms(mol *Molecule) []RingHeteroatom {
	var out []RingHeteroatom
	for i, aid := range r.atoms {
		a := mol.AtomWithId(aid)
		if a != nil && a.atNum != 6 {
			out = append(out, RingHeteroatom{Index: i, AtomId: aid, Symbol: a.Symbol()})
		}
	}
	return out
}

// RingHeteroatom names a non-carbon ring member by its position in
// the ring's traversal order.
type RingHeteroatom struct {
	Index  int
	AtomId uint16
	Symbol string
}

// SetAromatic marks this ring (and, transitively, its atoms and
// bonds) as aromatic or not. The `graph` package computes the verdict
// per its two-tier aromaticity policy; this method just
// records it.
func (r *Ring) SetAromatic(mol *Molecule, aromatic, hetero bool) {
	r.isAro = aromatic
	r.isHetAro = aromatic && hetero

	if !aromatic {
		return
	}
	for _, aid := range r.atoms {
		if a := mol.AtomWithId(aid); a != nil {
			a.isInAroRing = true
		}
	}
	for _, bid := range r.bonds {
		if b := mol.BondWithId(bid); b != nil {
			b.isAro = true
		}
	}
}

// CommonAtomCount answers the number of atoms this ring shares with
// the other given ring.
func (r *Ring) CommonAtomCount(other *Ring) int {
	return int(r.atomSet.IntersectionCardinality(other.atomSet))
}

// CommonAtoms answers the atom IDs shared between this ring and the
// other given ring.
func (r *Ring) CommonAtoms(other *Ring) []uint16 {
	var out []uint16
	for _, aid := range r.atoms {
		if other.HasAtom(aid) {
			out = append(out, aid)
		}
	}
	return out
}

// DistanceBetweenAtoms answers the shorter traversal distance, within
// this ring, between the two given atoms.
func (r *Ring) DistanceBetweenAtoms(aid1, aid2 uint16) (int, bool) {
	i1, i2 := r.AtomIndex(aid1), r.AtomIndex(aid2)
	if i1 < 0 || i2 < 0 {
		return 0, false
	}

	d1 := i1 - i2
	if d1 < 0 {
		d1 = -d1
	}
	d2 := r.Size() - d1
	if d1 < d2 {
		return d1, true
	}
	return d2, true
}

// DoubleBondCount answers the number of ring-internal double bonds.
func (r *Ring) DoubleBondCount(mol *Molecule) int {
	c := 0
	for _, bid := range r.bonds {
		if b := mol.BondWithId(bid); b != nil && b.Type() == cmn.BondTypeDouble {
			c++
		}
	}
	return c
}

// TripleBondCount answers the number of ring-internal triple bonds.
func (r *Ring) TripleBondCount(mol *Molecule) int {
	c := 0
	for _, bid := range r.bonds {
		if b := mol.BondWithId(bid); b != nil && b.Type() == cmn.BondTypeTriple {
			c++
		}
	}
	return c
}

// AromaticAtomOrBondScore answers the count used by the tolerant
// aromaticity test: the number of ring-internal bonds that
// are either aromatic or double.
func (r *Ring) AromaticAtomOrBondScore(mol *Molecule) int {
	c := 0
	for _, bid := range r.bonds {
		b := mol.BondWithId(bid)
		if b == nil {
			continue
		}
		if b.IsAromatic() || b.Type() == cmn.BondTypeDouble {
			c++
		}
	}
	return c
}

// AromaticFlaggedAtomFraction answers the fraction of this ring's
// atoms that carry an explicit upstream aromaticity flag.
func (r *Ring) AromaticFlaggedAtomFraction(mol *Molecule) float64 {
	if len(r.atoms) == 0 {
		return 0
	}
	n := 0
	for _, aid := range r.atoms {
		if a := mol.AtomWithId(aid); a != nil && a.aromatic {
			n++
		}
	}
	return float64(n) / float64(len(r.atoms))
}

// RotatedFrom answers a new Ring whose traversal starts at the given
// index of this ring's atom list, optionally reversed. It is used by
// the engine's ring-numbering layer to try each start atom and
// direction. The returned ring is a
// fresh, independent value; it shares no ring-system linkage.
func (r *Ring) RotatedFrom(mol *Molecule, start int, reversed bool) (*Ring, error) {
	n := len(r.atoms)
	rotated := make([]uint16, n)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if reversed {
			idx = (start - i + n*2) % n
		}
		rotated[i] = r.atoms[idx]
	}
	return NewRing(mol, r.id, rotated)
}

func errRingTooSmall(n int) error {
	return fmt.Errorf("molecule: ring must have at least 3 atoms, got %d", n)
}

func errNoBondBetween(a1, a2 uint16) error {
	return fmt.Errorf("molecule: no bond between atom %d and atom %d", a1, a2)
}
