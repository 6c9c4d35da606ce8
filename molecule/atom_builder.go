package molecule

import (
	"fmt"

	cmn "github.com/RxnWeaver/iupac/common"
)

// AtomBuilder builds an atom, one property at a time, in builder
// fashion.
//
// This is the only supported way to add an atom to a molecule from
// outside this package: the constructed atom is appended to its
// parent molecule as soon as `Build` is called, and cannot otherwise
// be extracted or used standalone.
//
// A single builder instance may construct any number of atoms, one
// after another.
type AtomBuilder struct {
	mol *Molecule
	a   *Atom
}

// New starts building a new atom of the given element, with the
// given parser-assigned input ID. IDs must be presented to the
// builder in ascending, gapless order; this catches a common class of
// upstream parser bugs early.
func (ab *AtomBuilder) New(symbol string, iId int) (*AtomBuilder, error) {
	if uint16(iId) != ab.mol.nextAtomIid {
		return nil, fmt.Errorf("molecule: out-of-sequence atom ID: expected %d, got %d", ab.mol.nextAtomIid, iId)
	}

	el, ok := cmn.PeriodicTable[symbol]
	if !ok {
		return nil, fmt.Errorf("molecule: unknown element symbol %q", symbol)
	}

	a, err := NewAtom(ab.mol, el.Number, iId)
	if err != nil {
		return nil, err
	}
	ab.a = a
	return ab, nil
}

// Coordinates sets this atom's X, Y and Z coordinates.
func (ab *AtomBuilder) Coordinates(x, y, z float32) *AtomBuilder {
	ab.a.X, ab.a.Y, ab.a.Z = x, y, z
	return ab
}

// Charge sets this atom's residual net charge.
func (ab *AtomBuilder) Charge(c int8) *AtomBuilder {
	ab.a.charge = c
	return ab
}

// HydrogenCount sets the number of implicit/explicit hydrogens bound
// to this atom.
func (ab *AtomBuilder) HydrogenCount(n uint8) *AtomBuilder {
	ab.a.hCount = n
	return ab
}

// Isotope sets this atom's isotope mass number.
func (ab *AtomBuilder) Isotope(massNumber uint16) *AtomBuilder {
	ab.a.isotope = massNumber
	return ab
}

// Aromatic flags this atom as (upstream-determined) aromatic.
func (ab *AtomBuilder) Aromatic(v bool) *AtomBuilder {
	ab.a.aromatic = v
	return ab
}

// Chirality sets this atom's structural chirality tag.
func (ab *AtomBuilder) Chirality(c cmn.Chirality) *AtomBuilder {
	ab.a.chiral = c
	return ab
}

// Hybridization sets this atom's hybridization state.
func (ab *AtomBuilder) Hybridization(h cmn.Hybridization) *AtomBuilder {
	ab.a.hybrid = h
	return ab
}

// Valence overrides this atom's default valence.
func (ab *AtomBuilder) Valence(v int8) *AtomBuilder {
	if v > 0 && v < 15 {
		ab.a.valence = v
	}
	return ab
}

// Build appends the atom under construction to its parent molecule
// and answers it.
func (ab *AtomBuilder) Build() (*Atom, error) {
	if ab.a == nil {
		return nil, fmt.Errorf("molecule: no atom started on this builder")
	}
	ab.mol.atoms = append(ab.mol.atoms, ab.a)
	ab.mol.nextAtomIid++
	built := ab.a
	ab.a = nil
	return built, nil
}
