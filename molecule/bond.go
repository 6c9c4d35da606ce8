package molecule

import (
	"fmt"
	"math"

	cmn "github.com/RxnWeaver/iupac/common"
)

// Bond represents a chemical bond between exactly two atoms.  It does
// not, by itself, cater to multi-centre bonding.
//
// Bonds relate atoms by their parser-assigned IDs, never by
// normalised IDs: this keeps bond construction independent of any
// numbering decision the naming pipeline later makes, and makes
// debugging easier since bonds always correlate directly back to the
// original input structure.
type Bond struct {
	mol *Molecule // Containing molecule of this bond.
	id  uint16    // Unique ID of this bond.

	a1      uint16         // Id of the first atom in the bond.
	a2      uint16         // Id of the second atom in the bond.
	bType   cmn.BondType   // single / double / triple / quadruple / aromatic.
	bStereo cmn.BondStereo // none / up / down / either.

	isAro      bool // Is this bond (or its containing ring) aromatic?
	rotatable  bool // Can this bond be freely rotated about?
	ringFlagOk bool // Has ring membership been computed for this bond yet?

	rings []uint16 // IDs of the SSSR rings this bond participates in.
}

// NewBond constructs a new bond of the given order and stereo marker,
// between the two named atoms, in the given molecule.  Exported for
// the same reasons `NewAtom` is.
func NewBond(mol *Molecule, id int, a1, a2 uint16, bType cmn.BondType, stereo cmn.BondStereo) (*Bond, error) {
	if bType == cmn.BondTypeNone {
		return nil, fmt.Errorf("molecule: bond %d has no declared type", id)
	}

	b := new(Bond)
	b.mol = mol
	b.id = uint16(id)
	b.a1 = a1
	b.a2 = a2
	b.bType = bType
	b.bStereo = stereo
	b.rings = make([]uint16, 0, cmn.MaxRings)

	b.rotatable = bType == cmn.BondTypeSingle
	return b, nil
}

// Id answers this bond's unique ID.
func (b *Bond) Id() uint16 { return b.id }

// Atoms answers the parser IDs of the two atoms this bond relates.
func (b *Bond) Atoms() (uint16, uint16) { return b.a1, b.a2 }

// Type answers this bond's order/category.
func (b *Bond) Type() cmn.BondType { return b.bType }

// Stereo answers this bond's stereo marker.
func (b *Bond) Stereo() cmn.BondStereo { return b.bStereo }

// IsAromatic answers whether this bond is (or has been derived to be)
// aromatic.
func (b *Bond) IsAromatic() bool { return b.isAro || b.bType == cmn.BondTypeAromatic }

// IsRotatable answers whether this bond may be freely rotated about:
// true for acyclic single bonds between non-terminal, non-amide
// atoms.  The naming pipeline itself has no use for rotatability (it
// is a property-computation concern out of scope for naming), but it
// is retained as a cheap derived flag other in-tree and downstream
// tooling commonly wants alongside a connection table.
func (b *Bond) IsRotatable() bool {
	if !b.rotatable || b.IsCyclic() {
		return false
	}
	a1, a2 := b.mol.AtomWithId(b.a1), b.mol.AtomWithId(b.a2)
	if a1 == nil || a2 == nil || a1.Degree() < 2 || a2.Degree() < 2 {
		return false
	}
	isAmide := func(c, n *Atom) bool { return n.atNum == 7 && c.IsCarbonylCarbon() }
	return !isAmide(a1, a2) && !isAmide(a2, a1)
}

// OtherAtomId answers the atom, other than the one given, that
// participates in this bond.  Answers 0 if the given atom does not
// participate in this bond.
func (b *Bond) OtherAtomId(aid uint16) uint16 {
	if b.a1 == aid {
		return b.a2
	}
	if b.a2 == aid {
		return b.a1
	}
	return 0
}

// IsCyclic answers if this bond participates in at least one ring.
func (b *Bond) IsCyclic() bool { return len(b.rings) > 0 }

// RingIds answers the IDs of the SSSR rings this bond participates
// in.
func (b *Bond) RingIds() []uint16 {
	out := make([]uint16, len(b.rings))
	copy(out, b.rings)
	return out
}

// addRing records that this bond participates in the given ring.
func (b *Bond) addRing(rid uint16) {
	for _, id := range b.rings {
		if id == rid {
			return
		}
	}
	b.rings = append(b.rings, rid)
}

// isInRing answers if this bond participates in the given ring.
func (b *Bond) isInRing(rid uint16) bool {
	for _, id := range b.rings {
		if id == rid {
			return true
		}
	}
	return false
}

// smallestRing answers the smallest unique ring in which this bond
// participates.
func (b *Bond) smallestRing() (uint16, error) {
	if !b.IsCyclic() {
		return 0, fmt.Errorf("molecule: bond %d is not cyclic", b.id)
	}

	min := math.MaxInt32
	c := 0
	var ret uint16

	mol := b.mol
	for _, rid := range b.rings {
		r := mol.RingWithId(rid)
		size := r.Size()
		if size == min {
			c++
		} else if size < min {
			ret = rid
			min = size
			c = 1
		}
	}

	if c > 1 {
		return 0, fmt.Errorf("molecule: smallest ring size %d shared by %d rings on bond %d", min, c, b.id)
	}
	return ret, nil
}
