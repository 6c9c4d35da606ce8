package engine

import (
	"github.com/RxnWeaver/iupac/functionalgroup"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// parentDecision is the outcome of P-44.1.1 arbitration: either a ring
// system is the parent (RingSystemId identifies it) or the chain is
// (ChainAtoms lists it), never both.
type parentDecision struct {
	IsRing       bool
	RingSystemID uint16
	ChainAtoms   []uint16
}

// ArbitrateParentStructure implements P-44.1.1. A full implementation
// enumerates every candidate acyclic chain; this repo's simplification
// (documented in DESIGN.md) instead takes the single candidate "chain"
// to be every atom outside any ring system -- which makes the
// ">70% ring atoms" chain-exclusion rule vacuously always pass, since
// that candidate is non-ring atoms by construction.
func ArbitrateParentStructure(m *mol.Molecule, groups []*functionalgroup.Group, ringSystems []*mol.RingSystem) parentDecision {
	chainAtoms := nonRingAtoms(m)
	chainSet := atomSet(chainAtoms)
	chainCount := countAttachedToSet(m, groups, chainSet)

	var bestRing *mol.RingSystem
	bestCount := -1
	for _, rs := range ringSystems {
		c := countAttachedToRing(m, groups, rs)
		if c > bestCount {
			bestCount = c
			bestRing = rs
		}
	}

	if bestRing == nil {
		return parentDecision{IsRing: false, ChainAtoms: chainAtoms}
	}
	if len(chainAtoms) == 0 {
		return parentDecision{IsRing: true, RingSystemID: bestRing.Id()}
	}

	switch {
	case bestCount > chainCount:
		return parentDecision{IsRing: true, RingSystemID: bestRing.Id()}
	case chainCount > bestCount:
		return parentDecision{IsRing: false, ChainAtoms: chainAtoms}
	default:
		if ringWinsSeniorityTie(m, groups, bestRing) {
			return parentDecision{IsRing: true, RingSystemID: bestRing.Id()}
		}
		return parentDecision{IsRing: false, ChainAtoms: chainAtoms}
	}
}

// ringWinsSeniorityTie implements the tie-break seniority order
// carboxylic-acid/ester > heterocycle > alcohol/amine: a carboxylic
// acid or ester anywhere in the molecule is senior to any ring (it
// sits on the chain in every case this repo models, since esters and
// acids are not themselves ring-forming groups here), so the chain
// wins; otherwise a heteroatom-bearing ring outranks alcohol/amine
// competitors and wins.
func ringWinsSeniorityTie(m *mol.Molecule, groups []*functionalgroup.Group, rs *mol.RingSystem) bool {
	for _, g := range groups {
		if g.Pattern == "carboxylic_acid" || g.Pattern == "ester" {
			return false
		}
	}
	for _, aid := range rs.AtomIds() {
		if a := m.AtomWithId(aid); a != nil && a.AtomicNumber() != 6 {
			return true
		}
	}
	return false
}

func nonRingAtoms(m *mol.Molecule) []uint16 {
	var out []uint16
	for _, a := range m.Atoms() {
		if !a.IsInRing() {
			out = append(out, a.Id())
		}
	}
	return out
}

func atomSet(ids []uint16) map[uint16]bool {
	out := make(map[uint16]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// attachmentAtom answers the atom attachment is judged by: the
// group's CarbonylAtom whenever the detector set one (ketone,
// aldehyde, ester, carboxylic_acid, amide and nitrile), so for those
// patterns the carbon stands in for "attached to or contains" purposes
// and the oxygen or amide nitrogen is not consulted; otherwise the
// group's first non-carbon atom (alcohol, amine), falling back to the
// group's first atom.
func attachmentAtom(m *mol.Molecule, g *functionalgroup.Group) uint16 {
	if g.CarbonylAtom != 0 {
		return g.CarbonylAtom
	}
	for _, aid := range g.AtomIds {
		if a := m.AtomWithId(aid); a != nil && a.AtomicNumber() != 6 {
			return aid
		}
	}
	return firstOf(g.AtomIds)
}

// isAttachedToOrIn answers whether the group's attachment atom is
// itself in the given set, or directly bonded to an atom in it --
// covering both a ring-contained group (e.g. a lactam nitrogen) and an
// exocyclic-but-attached one (e.g. cyclohexanol's hydroxyl oxygen,
// which sits outside the ring but on a ring atom).
func isAttachedToOrIn(m *mol.Molecule, set map[uint16]bool, g *functionalgroup.Group) bool {
	atom := attachmentAtom(m, g)
	if set[atom] {
		return true
	}
	a := m.AtomWithId(atom)
	if a == nil {
		return false
	}
	for _, nb := range a.Neighbours() {
		if set[nb] {
			return true
		}
	}
	return false
}

func countAttachedToSet(m *mol.Molecule, groups []*functionalgroup.Group, set map[uint16]bool) int {
	n := 0
	for _, g := range groups {
		if !g.Principal {
			continue
		}
		if isAttachedToOrIn(m, set, g) {
			n++
		}
	}
	return n
}

func countAttachedToRing(m *mol.Molecule, groups []*functionalgroup.Group, rs *mol.RingSystem) int {
	set := atomSet(rs.AtomIds())
	return countAttachedToSet(m, groups, set)
}
