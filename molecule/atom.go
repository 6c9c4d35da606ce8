package molecule

import (
	"fmt"
	"math"

	bits "github.com/willf/bitset"

	cmn "github.com/RxnWeaver/iupac/common"
)

// Atom represents a chemical atom within a `Molecule`.
//
// It carries the physical and chemical properties the nomenclature
// pipeline reads from upstream: element, charge, implicit hydrogen
// count, isotope, aromaticity, chirality, hybridization, and ring
// membership.  Identity (`Id`) is the stable
// integer the parser assigned; the naming pipeline never renumbers
// it, though it does compute a separate normalised ID for name
// assembly.
type Atom struct {
	mol    *Molecule // Containing molecule of this atom.
	atNum  uint8     // Atomic number of this atom's element.
	symbol string    // Symbol, in case of a different isotope.
	iId    uint16    // Serial input ID of this atom (parser-assigned identity).
	nId    uint16    // Normalised ID of this atom, assigned during ring/chain numbering.

	X float32 // X-coordinate of this atom.
	Y float32 // Y-coordinate of this atom.
	Z float32 // Z-coordinate of this atom.

	isotope uint16 // Mass number of the isotope, 0 if unspecified.

	hCount  uint8 // Number of implicit + explicit H atoms attached to this atom.
	charge  int8  // Residual net charge of this atom.
	valence int8  // Current valence configuration of this atom.
	radical cmn.Radical

	aromatic bool              // Explicit aromaticity flag, as supplied or derived.
	chiral   cmn.Chirality     // Structural chirality tag, if any.
	hybrid   cmn.Hybridization // sp / sp2 / sp3 / other.

	unsaturation cmn.Unsaturation // Current composite state of this atom.

	bonds           *bits.BitSet // Bitmap of bond IDs incident on this atom.
	nbrs            []uint16     // Expanded list of neighbours (multiplicity-aware).
	singleBondCount uint8
	doubleBondCount uint8
	tripleBondCount uint8

	rings []uint16 // IDs of the SSSR rings this atom participates in.

	isInAroRing  bool // Does this atom participate in at least one aromatic ring?
	isBridgeHead bool // Is this atom a bridgehead of a polycyclic system?
	isSpiro      bool // Is this atom the sole common atom of all its rings?

	// Functional groups substituted on this atom, most important
	// first.  Populated by the functional-group detector, not by the
	// parser.
	features []uint16
}

// NewAtom constructs a new atom of the given element, belonging to
// the given molecule.  Callers outside this package should prefer
// `AtomBuilder`; this constructor is exported so the `graph` and
// `functionalgroup` packages (and tests) can build ad-hoc molecules
// without round-tripping through a connection-table parser.
func NewAtom(mol *Molecule, atNum uint8, iId int) (*Atom, error) {
	sym := ""
	if int(atNum) < len(cmn.ElementSymbols) {
		sym = cmn.ElementSymbols[atNum]
	}
	el, ok := cmn.PeriodicTable[sym]
	if !ok {
		return nil, fmt.Errorf("molecule: unknown atomic number %d", atNum)
	}

	a := new(Atom)
	a.mol = mol
	a.atNum = atNum
	a.symbol = sym
	a.iId = uint16(iId)
	a.valence = el.Valence

	a.bonds = bits.New(cmn.MaxBonds)
	a.nbrs = make([]uint16, 0, cmn.MaxBonds)
	a.rings = make([]uint16, 0, cmn.MaxRings)
	a.features = make([]uint16, 0, cmn.MaxFeatures)

	return a, nil
}

// Id answers this atom's stable parser-assigned identity.
func (a *Atom) Id() uint16 { return a.iId }

// NormalisedId answers this atom's normalised ID, valid only once the
// naming pipeline has assigned locants.
func (a *Atom) NormalisedId() uint16 { return a.nId }

// SetNormalisedId sets this atom's normalised ID.  Exposed for the
// `engine` package's numbering layer; not meant for general use.
func (a *Atom) SetNormalisedId(id uint16) { a.nId = id }

// AtomicNumber answers the atomic number of this atom's element.
func (a *Atom) AtomicNumber() uint8 { return a.atNum }

// Symbol answers this atom's chemical symbol.
func (a *Atom) Symbol() string { return a.symbol }

// Parent answers the parent molecule of this atom.
func (a *Atom) Parent() *Molecule { return a.mol }

// Charge answers this atom's residual net charge.
func (a *Atom) Charge() int8 { return a.charge }

// SetCharge sets this atom's residual net charge.
func (a *Atom) SetCharge(c int8) { a.charge = c }

// Isotope answers this atom's isotope mass number, or 0 if
// unspecified.
func (a *Atom) Isotope() uint16 { return a.isotope }

// SetIsotope sets this atom's isotope mass number.
func (a *Atom) SetIsotope(m uint16) { a.isotope = m }

// HydrogenCount answers the number of implicit and explicit hydrogen
// atoms bound to this atom.
func (a *Atom) HydrogenCount() uint8 { return a.hCount }

// SetHydrogenCount sets the number of hydrogen atoms bound to this
// atom.
func (a *Atom) SetHydrogenCount(n uint8) { a.hCount = n }

// IncrementHydrogenCount increments this atom's implicit hydrogen
// count by one, used when a bond to an explicit hydrogen atom is
// folded into this atom's implicit count.
func (a *Atom) IncrementHydrogenCount() { a.hCount++ }

// Degree answers the number of distinct neighbouring atoms (not
// bond-order-weighted) this atom has.
func (a *Atom) Degree() int { return int(a.bonds.Count()) }

// IsAromatic answers whether this atom is flagged aromatic, whether
// that flag came from upstream or was derived by ring analysis.
func (a *Atom) IsAromatic() bool { return a.aromatic || a.isInAroRing }

// SetAromatic sets this atom's explicit aromaticity flag.
func (a *Atom) SetAromatic(v bool) { a.aromatic = v }

// Chirality answers this atom's structural chirality tag.
func (a *Atom) Chirality() cmn.Chirality { return a.chiral }

// SetChirality sets this atom's structural chirality tag.
func (a *Atom) SetChirality(c cmn.Chirality) { a.chiral = c }

// Hybridization answers this atom's hybridization state.
func (a *Atom) Hybridization() cmn.Hybridization { return a.hybrid }

// SetHybridization sets this atom's hybridization state.
func (a *Atom) SetHybridization(h cmn.Hybridization) { a.hybrid = h }

// Unsaturation answers this atom's composite unsaturation state, as
// computed by `determineUnsaturation` during molecule normalisation.
func (a *Atom) Unsaturation() cmn.Unsaturation { return a.unsaturation }

// Neighbours answers the de-duplicated list of this atom's
// neighbouring atom IDs.
func (a *Atom) Neighbours() []uint16 {
	seen := make(map[uint16]bool, len(a.nbrs))
	out := make([]uint16, 0, len(a.nbrs))
	for _, n := range a.nbrs {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Bonds answers the list of bond IDs incident on this atom.
func (a *Atom) Bonds() []uint16 {
	out := make([]uint16, 0, a.bonds.Count())
	for bid, ok := a.bonds.NextSet(0); ok; bid, ok = a.bonds.NextSet(bid + 1) {
		out = append(out, uint16(bid))
	}
	return out
}

// determineUnsaturation computes a composite metric that reflects the
// current bonding state of the atom.
//
// Exercise great caution should you need to modify this: large parts
// of the rule engine's decisions on principal groups and skeletal
// unsaturation suffixes are downstream of this classification.
func (a *Atom) determineUnsaturation() error {
	nb := int(a.bonds.Count())
	nn := len(a.nbrs)

	if a.charge != 0 {
		a.unsaturation = cmn.UnsaturationCharged
		return nil
	}

	if a.hCount > 0 {
		os := int8(nn) + int8(a.hCount)
		if ok, err := cmn.IsValidOxidationState(a.atNum, os); !ok {
			return err
		}
	}

	if nb == nn {
		a.unsaturation = cmn.UnsaturationNone
		return nil
	}

	ndb, nhdb, ntb, nhtb := 0, 0, 0, 0
	mol := a.mol
	for bid, ok := a.bonds.NextSet(0); ok; bid, ok = a.bonds.NextSet(bid + 1) {
		b := mol.BondWithId(uint16(bid))
		oaid := b.OtherAtomId(a.iId)
		oa := mol.AtomWithId(oaid)
		switch b.Type() {
		case cmn.BondTypeDouble:
			ndb++
			if oa.atNum != 6 {
				nhdb++
			}
		case cmn.BondTypeTriple:
			ntb++
			if oa.atNum != 6 {
				nhtb++
			}
		}
	}

	if ntb > 0 {
		if nhtb > 0 {
			a.unsaturation = cmn.UnsaturationTripleBondW
		} else {
			a.unsaturation = cmn.UnsaturationTripleBondC
		}
		return nil
	}

	if ndb > 0 {
		switch {
		case ndb == 1 && nhdb == 0:
			a.unsaturation = cmn.UnsaturationDoubleBondC
		case ndb == 1 && nhdb == 1:
			a.unsaturation = cmn.UnsaturationDoubleBondW
		case ndb == 2 && nhdb == 0:
			a.unsaturation = cmn.UnsaturationDoubleBondCC
		case ndb == 2 && nhdb == 1:
			a.unsaturation = cmn.UnsaturationDoubleBondCW
		case ndb == 2 && nhdb == 2:
			a.unsaturation = cmn.UnsaturationDoubleBondWW
		}
	}
	return nil
}

// IsCyclic answers if this atom participates in at least one ring.
func (a *Atom) IsCyclic() bool { return len(a.rings) > 0 }

// IsInRing is an alias for IsCyclic, matching the `graph` package's
// ring-info query naming.
func (a *Atom) IsInRing() bool { return a.IsCyclic() }

// RingIds answers the IDs of the SSSR rings this atom participates
// in.
func (a *Atom) RingIds() []uint16 {
	out := make([]uint16, len(a.rings))
	copy(out, a.rings)
	return out
}

// IsJunction answers if this atom has more than two distinct
// neighbours.
func (a *Atom) IsJunction() bool { return a.bonds.Count() > 2 }

// addBond adds the given bond to this atom's incidence set and
// extends its expanded neighbour list, without checking valence.
func (a *Atom) addBond(b *Bond) {
	if a.bonds.Test(uint(b.id)) {
		return
	}

	a.bonds.Set(uint(b.id))
	nbrId := b.OtherAtomId(a.iId)
	n := bondMultiplicity(b.bType)
	for i := 0; i < n; i++ {
		a.nbrs = append(a.nbrs, nbrId)
	}

	switch b.bType {
	case cmn.BondTypeSingle:
		a.singleBondCount++
	case cmn.BondTypeDouble:
		a.doubleBondCount++
	case cmn.BondTypeTriple:
		a.tripleBondCount++
	}
}

// bondMultiplicity answers how many neighbour-list slots a bond of
// the given type should occupy.  Aromatic and quadruple bonds count
// as a single (delocalised) connection for this purpose.
func bondMultiplicity(bt cmn.BondType) int {
	switch bt {
	case cmn.BondTypeDouble:
		return 2
	case cmn.BondTypeTriple:
		return 3
	default:
		return 1
	}
}

// bondTo answers the bond that binds this atom to the given atom, if
// one such exists.
func (a *Atom) bondTo(other uint16) *Bond {
	mol := a.mol
	for bid, ok := a.bonds.NextSet(0); ok; bid, ok = a.bonds.NextSet(bid + 1) {
		b := mol.BondWithId(uint16(bid))
		if b.OtherAtomId(a.iId) == other {
			return b
		}
	}
	return nil
}

// isInRingOfSize answers if this atom participates in at least one
// ring of the given size.
func (a *Atom) isInRingOfSize(n int) bool {
	mol := a.mol
	for _, rid := range a.rings {
		if r := mol.RingWithId(rid); r != nil && r.Size() == n {
			return true
		}
	}
	return false
}

// smallestRing answers the smallest unique ring in which this atom
// participates.  Answers an error if no such unique smallest ring
// exists.
func (a *Atom) smallestRing() (uint16, error) {
	if !a.IsCyclic() {
		return 0, fmt.Errorf("molecule: atom %d is not cyclic", a.iId)
	}

	min := math.MaxInt32
	c := 0
	var ret uint16

	mol := a.mol
	for _, rid := range a.rings {
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
		return 0, fmt.Errorf("molecule: %d rings of smallest size %d share atom %d", c, min, a.iId)
	}
	return ret, nil
}

// IsInHeteroAromaticRing answers if this atom is part of an aromatic
// ring with at least one heteroatom.
func (a *Atom) IsInHeteroAromaticRing() bool {
	if a.isInAroRing && a.atNum != 6 {
		return true
	}

	mol := a.mol
	for _, rid := range a.rings {
		if r := mol.RingWithId(rid); r != nil && r.IsHeteroAromatic() {
			return true
		}
	}
	return false
}

// haveCommonRings answers if this atom shares at least one ring with
// the given atom.
func (a *Atom) haveCommonRings(aiid uint16) bool {
	other := a.mol.AtomWithId(aiid)
	for _, r1 := range a.rings {
		for _, r2 := range other.rings {
			if r1 == r2 {
				return true
			}
		}
	}
	return false
}

// addRing records that this atom participates in the given ring.
func (a *Atom) addRing(rid uint16) {
	for _, id := range a.rings {
		if id == rid {
			return
		}
	}
	a.rings = append(a.rings, rid)
}

// FunctionalGroupTags answers the list of functional-group tag IDs
// substituted on this atom, most important first.
func (a *Atom) FunctionalGroupTags() []uint16 {
	out := make([]uint16, len(a.features))
	copy(out, a.features)
	return out
}

// AddFunctionalGroupTag tags this atom with the given functional
// group ID.
func (a *Atom) AddFunctionalGroupTag(fid uint16) {
	a.features = append(a.features, fid)
}

// HasFunctionalGroupTag answers if this atom carries the given
// functional group tag.
func (a *Atom) HasFunctionalGroupTag(fid uint16) bool {
	for _, f := range a.features {
		if f == fid {
			return true
		}
	}
	return false
}

// IsCarbonylCarbon answers if this atom is a carbon doubly bonded to
// at least one oxygen.
func (a *Atom) IsCarbonylCarbon() bool {
	if a.atNum != 6 {
		return false
	}
	mol := a.mol
	for bid, ok := a.bonds.NextSet(0); ok; bid, ok = a.bonds.NextSet(bid + 1) {
		b := mol.BondWithId(uint16(bid))
		if b.Type() == cmn.BondTypeDouble {
			oa := mol.AtomWithId(b.OtherAtomId(a.iId))
			if oa.atNum == 8 {
				return true
			}
		}
	}
	return false
}

// IsHydroxyl answers if this atom is an oxygen with exactly one
// hydrogen bound to it.
func (a *Atom) IsHydroxyl() bool { return a.atNum == 8 && a.hCount == 1 }

// IsSaturatedCarbon answers if this atom is a carbon with no multiple
// bonds.
func (a *Atom) IsSaturatedCarbon() bool {
	return a.atNum == 6 && a.unsaturation == cmn.UnsaturationNone
}

// SingleBondCount, DoubleBondCount and TripleBondCount answer the
// number of bonds of the respective order this atom participates in.
func (a *Atom) SingleBondCount() uint8 { return a.singleBondCount }
func (a *Atom) DoubleBondCount() uint8 { return a.doubleBondCount }
func (a *Atom) TripleBondCount() uint8 { return a.tripleBondCount }

// IsBridgeHead answers whether ring analysis has marked this atom as
// a bridgehead of a polycyclic ring system.
func (a *Atom) IsBridgeHead() bool { return a.isBridgeHead }

// SetBridgeHead records the bridgehead verdict for this atom. Called
// by the `graph` package's classification pass.
func (a *Atom) SetBridgeHead(v bool) { a.isBridgeHead = v }

// IsSpiro answers whether ring analysis has marked this atom as the
// sole common atom of all the rings it participates in.
func (a *Atom) IsSpiro() bool { return a.isSpiro }

// SetSpiro records the spiro verdict for this atom.
func (a *Atom) SetSpiro(v bool) { a.isSpiro = v }

// Radical answers this atom's radical configuration.
func (a *Atom) Radical() cmn.Radical { return a.radical }

// SetRadical sets this atom's radical configuration.
func (a *Atom) SetRadical(r cmn.Radical) { a.radical = r }

// PiElectronCount answers the number of delocalised pi electrons this
// atom contributes to a ring it participates in, and whether it is
// capable of contributing any at all. The weighted sum below encodes,
// in one number, this atom's double/single bond counts and residual
// charge (hundreds digit: double bonds; tens digit: single bonds;
// units digit: charge), so each element's few legal ring environments
// can be matched by a plain switch.
//
// Exercise great caution before changing any of the magic weights or
// case values here: they are not arbitrary, and a small slip silently
// breaks aromaticity determination for an entire element.
func (a *Atom) PiElectronCount() (int, bool) {
	mol := a.mol
	wtSum := 100*int16(a.doubleBondCount) + 10*int16(a.singleBondCount) + int16(a.charge)

	switch a.atNum {
	case 6: // Carbon.
		switch wtSum {
		case 19:
			return 2, true
		case 110:
			return 1, true
		case 120:
			for bid, ok := a.bonds.NextSet(0); ok; bid, ok = a.bonds.NextSet(bid + 1) {
				b := mol.BondWithId(uint16(bid))
				if b.Type() == cmn.BondTypeDouble {
					if b.IsCyclic() {
						return 1, true
					}
					return 0, true
				}
			}
			return 0, true
		default:
			return 0, false
		}

	case 7: // Nitrogen.
		switch wtSum {
		case 20, 30:
			return 2, true
		case 110, 121:
			return 1, true
		default:
			return 0, false
		}

	case 8: // Oxygen.
		switch wtSum {
		case 20:
			return 2, true
		case 111:
			return 1, true
		default:
			return 0, false
		}

	case 16: // Sulfur.
		switch wtSum {
		case 20:
			return 2, true
		case 111:
			return 1, true
		case 120:
			for bid, ok := a.bonds.NextSet(0); ok; bid, ok = a.bonds.NextSet(bid + 1) {
				b := mol.BondWithId(uint16(bid))
				if b.Type() != cmn.BondTypeDouble {
					continue
				}
				oa := mol.AtomWithId(b.OtherAtomId(a.iId))
				if oa != nil && oa.atNum == 8 && !oa.IsCyclic() {
					return 2, true
				}
				return 0, true
			}
			return 0, true
		case 220:
			exo := 0
			for bid, ok := a.bonds.NextSet(0); ok; bid, ok = a.bonds.NextSet(bid + 1) {
				b := mol.BondWithId(uint16(bid))
				if b.Type() != cmn.BondTypeDouble {
					continue
				}
				oa := mol.AtomWithId(b.OtherAtomId(a.iId))
				if oa != nil && !oa.IsCyclic() {
					exo++
				}
			}
			if exo > 1 {
				return 0, false
			}
			return 0, true
		default:
			return 0, false
		}
	}

	return 0, false
}
