package graph

import (
	"math"

	mol "github.com/RxnWeaver/iupac/molecule"
)

// determineAromaticity applies the two-tier aromaticity policy to
// every SSSR ring, then derives each ring system's whole-system verdict
// as "every constituent ring is aromatic" (the natural extension for a
// fused system like naphthalene, whose two individual rings each
// already pass the per-ring test).
func determineAromaticity(m *mol.Molecule, rings []*mol.Ring, systems []*mol.RingSystem) {
	for _, r := range rings {
		aromatic := IsRingAromatic(r, m)
		hetero := r.HeteroatomCount(m) > 0
		r.SetAromatic(m, aromatic, hetero)
	}

	for _, rs := range systems {
		sysRings := ringsOf(rs, rings)
		all := len(sysRings) > 0
		for _, r := range sysRings {
			if !r.IsAromatic() {
				all = false
				break
			}
		}
		rs.SetAromatic(all)
	}
}

// IsRingAromatic answers whether the given ring is aromatic, per the
// two-tier policy:
//
//  1. Strict: every ring-internal bond is tagged aromatic.
//  2. Relaxed: the number of bonds that are either tagged aromatic or
//     are double bonds is at least ceil(n/2), AND the fraction of ring
//     atoms flagged aromatic is at least 0.6.
//
// Failing both, a tolerant fallback accepts a ring whose explicit
// aromatic-bond count alone is at least ceil(n/2), with an atom
// fraction of at least 0.5 — a softer bar meant for inputs whose
// upstream parser kekulized some but not all of a genuinely aromatic
// ring.
func IsRingAromatic(r *mol.Ring, m *mol.Molecule) bool {
	n := r.Size()
	if n == 0 {
		return false
	}
	half := int(math.Ceil(float64(n) / 2))

	if allBondsAromatic(r, m) {
		return true
	}

	aromaticOrDouble := r.AromaticAtomOrBondScore(m)
	atomFraction := r.AromaticFlaggedAtomFraction(m)
	if aromaticOrDouble >= half && atomFraction >= 0.6 {
		return true
	}

	explicitAromatic := aromaticBondCount(r, m)
	if explicitAromatic >= half && atomFraction >= 0.5 {
		return true
	}

	return false
}

func allBondsAromatic(r *mol.Ring, m *mol.Molecule) bool {
	for _, bid := range r.Bonds() {
		b := m.BondWithId(bid)
		if b == nil || !b.IsAromatic() {
			return false
		}
	}
	return true
}

func aromaticBondCount(r *mol.Ring, m *mol.Molecule) int {
	c := 0
	for _, bid := range r.Bonds() {
		if b := m.BondWithId(bid); b != nil && b.IsAromatic() {
			c++
		}
	}
	return c
}

// RingPiElectronCount answers the sum of the per-atom delocalised
// pi-electron contributions (a chemistry enrichment kept alongside the
// flag-driven policy above): useful for
// downstream disambiguation between a genuinely conjugated ring and
// one that merely carries upstream aromaticity flags, e.g. when the
// ring-naming layer needs to tell a classical aromatic ring apart from
// a non-classical one sharing its flag pattern. Answers ok=false if
// any ring atom cannot be assigned a pi-electron count.
func RingPiElectronCount(r *mol.Ring, m *mol.Molecule) (int, bool) {
	n := 0
	for _, aid := range r.Atoms() {
		a := m.AtomWithId(aid)
		if a == nil {
			return 0, false
		}
		c, ok := a.PiElectronCount()
		if !ok {
			return 0, false
		}
		n += c
	}
	return n, true
}
