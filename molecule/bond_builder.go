package molecule

import (
	"fmt"

	cmn "github.com/RxnWeaver/iupac/common"
)

// BondBuilder builds a bond, one property at a time, in builder
// fashion. See `AtomBuilder` for the rationale behind this shape.
type BondBuilder struct {
	mol *Molecule
	b   *Bond

	a1, a2 uint16
	bType  cmn.BondType
	stereo cmn.BondStereo
}

// New starts building a new bond with the given ID. IDs must be
// presented in ascending, gapless order.
func (bb *BondBuilder) New(id int) (*BondBuilder, error) {
	if uint16(id) != bb.mol.nextBondId {
		return nil, fmt.Errorf("molecule: out-of-sequence bond ID: expected %d, got %d", bb.mol.nextBondId, id)
	}
	bb.b = &Bond{mol: bb.mol, id: uint16(id)}
	return bb, nil
}

// Atoms sets the two atoms (by parser-assigned ID) this bond relates.
//
// Bonds to a hydrogen atom are not represented explicitly: per this
// package's data model, hydrogens are folded into `Atom.hCount`. In
// that case this method increments the heavy atom's hydrogen count,
// discards the bond under construction, and answers a descriptive
// error so the caller knows not to call `Build`.
func (bb *BondBuilder) Atoms(aiid1, aiid2 int) (*BondBuilder, error) {
	mol := bb.mol
	a1 := mol.AtomWithId(uint16(aiid1))
	a2 := mol.AtomWithId(uint16(aiid2))
	if a1 == nil {
		return nil, fmt.Errorf("molecule: unknown atom ID %d", aiid1)
	}
	if a2 == nil {
		return nil, fmt.Errorf("molecule: unknown atom ID %d", aiid2)
	}

	if a1.atNum == 1 {
		a2.IncrementHydrogenCount()
		bb.b = nil
		return bb, fmt.Errorf("molecule: bond involves hydrogen atom %d, folded into atom %d's count", aiid1, aiid2)
	}
	if a2.atNum == 1 {
		a1.IncrementHydrogenCount()
		bb.b = nil
		return bb, fmt.Errorf("molecule: bond involves hydrogen atom %d, folded into atom %d's count", aiid2, aiid1)
	}

	bb.a1, bb.a2 = uint16(aiid1), uint16(aiid2)
	bb.b.a1, bb.b.a2 = bb.a1, bb.a2
	return bb, nil
}

// BondType sets this bond's order.
func (bb *BondBuilder) BondType(t cmn.BondType) (*BondBuilder, error) {
	if t == cmn.BondTypeNone {
		return nil, fmt.Errorf("molecule: unhandled bond type %v", t)
	}
	bb.bType = t
	bb.b.bType = t
	bb.b.rotatable = t == cmn.BondTypeSingle
	return bb, nil
}

// BondStereo sets this bond's stereo marker.
func (bb *BondBuilder) BondStereo(s cmn.BondStereo) *BondBuilder {
	bb.stereo = s
	bb.b.bStereo = s
	return bb
}

// Build appends the bond under construction to its parent molecule,
// wires it into both endpoint atoms' incidence sets, and answers it.
func (bb *BondBuilder) Build() (*Bond, error) {
	if bb.b == nil {
		return nil, fmt.Errorf("molecule: no bond started, or atoms() rejected this bond")
	}
	if bb.b.bType == cmn.BondTypeNone {
		return nil, fmt.Errorf("molecule: bond %d has no declared type", bb.b.id)
	}

	mol := bb.mol
	mol.bonds = append(mol.bonds, bb.b)
	mol.nextBondId++

	a1 := mol.AtomWithId(bb.b.a1)
	a2 := mol.AtomWithId(bb.b.a2)
	a1.addBond(bb.b)
	a2.addBond(bb.b)

	built := bb.b
	bb.b = nil
	return built, nil
}
