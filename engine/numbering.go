package engine

import (
	"strconv"

	cmn "github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/functionalgroup"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// assignLocants implements P-14.4: for a ring parent, re-derive the
// numbering only when the ring engine's own name left rotational
// freedom (a plain carbocycle with no heteroatom pinning the
// numbering already); for a chain parent, try both traversal
// directions of the chosen chain and keep whichever minimizes the
// principal-group locant, then the unsaturation locants. Prefix and
// substituent locant tiers (P-14.4 steps 3-4) are not evaluated here:
// this repo has no general substituent-enumeration subsystem, only
// the bounded substituent namer in substituent.go, so those tiers
// never have more than the single substituent this repo can already
// name -- see DESIGN.md.
func assignLocants(ctx *NamingContext, m *mol.Molecule, ring *mol.Ring) map[uint16]string {
	if ctx.ParentIsRing {
		if ring == nil || ring.HeteroatomCount(m) > 0 {
			return ctx.RingName.Locants
		}
		if ctx.Principal == nil {
			return ctx.RingName.Locants
		}
		anchor := ringAnchorAtom(ring, m, attachmentAtom(m, ctx.Principal))
		if anchor == 0 {
			return ctx.RingName.Locants
		}
		return renumberSingleRingForPrincipal(ring, m, anchor)
	}
	return numberChainParent(ctx, m)
}

func ringAnchorAtom(r *mol.Ring, m *mol.Molecule, target uint16) uint16 {
	if r.HasAtom(target) {
		return target
	}
	a := m.AtomWithId(target)
	if a == nil {
		return 0
	}
	for _, nb := range a.Neighbours() {
		if r.HasAtom(nb) {
			return nb
		}
	}
	return 0
}

func renumberSingleRingForPrincipal(r *mol.Ring, m *mol.Molecule, anchor uint16) map[uint16]string {
	anchorIdx := r.AtomIndex(anchor)
	if anchorIdx < 0 {
		return positionalLocantsOf(r)
	}

	var best *mol.Ring
	var bestScore []int
	for _, rev := range [2]bool{false, true} {
		rotated, err := r.RotatedFrom(m, anchorIdx, rev)
		if err != nil {
			continue
		}
		score := ringUnsaturationLocants(m, rotated)
		if best == nil || compareIntSlices(score, bestScore) < 0 {
			best = rotated
			bestScore = score
		}
	}
	if best == nil {
		return positionalLocantsOf(r)
	}
	return positionalLocantsOf(best)
}

func positionalLocantsOf(r *mol.Ring) map[uint16]string {
	out := make(map[uint16]string, r.Size())
	for i, aid := range r.Atoms() {
		out[aid] = strconv.Itoa(i + 1)
	}
	return out
}

func ringUnsaturationLocants(m *mol.Molecule, r *mol.Ring) []int {
	atoms := r.Atoms()
	var out []int
	for i := 0; i < len(atoms); i++ {
		j := (i + 1) % len(atoms)
		b := m.BondBetween(atoms[i], atoms[j])
		if b == nil {
			continue
		}
		if b.Type() == cmn.BondTypeDouble || b.Type() == cmn.BondTypeTriple {
			out = append(out, i+1)
		}
	}
	return out
}

func numberChainParent(ctx *NamingContext, m *mol.Molecule) map[uint16]string {
	path := longestChainPath(m, ctx.ParentChainAtoms)
	if len(path) == 0 {
		return map[uint16]string{}
	}
	backward := reverseChain(path)

	var anchor uint16
	if ctx.Principal != nil {
		anchor = chainAnchorAtom(m, path, ctx.Principal)
	}

	score := func(order []uint16) []int {
		var s []int
		if ctx.Principal != nil {
			idx := indexOfAtom(order, anchor)
			if idx < 0 {
				idx = len(order)
			}
			s = append(s, idx+1)
		}
		s = append(s, chainDoubleTripleLocants(m, order)...)
		return s
	}

	chosen := path
	if compareIntSlices(score(backward), score(path)) < 0 {
		chosen = backward
	}

	out := make(map[uint16]string, len(chosen))
	for i, aid := range chosen {
		out[aid] = strconv.Itoa(i + 1)
	}
	return out
}

// chainAnchorAtom answers the chain atom the principal group is judged
// attached to: the attachment atom directly, if it lies on the chain,
// else a chain neighbour of it.
func chainAnchorAtom(m *mol.Molecule, chain []uint16, g *functionalgroup.Group) uint16 {
	onChain := atomSet(chain)
	target := attachmentAtom(m, g)
	if onChain[target] {
		return target
	}
	a := m.AtomWithId(target)
	if a == nil {
		return 0
	}
	for _, nb := range a.Neighbours() {
		if onChain[nb] {
			return nb
		}
	}
	return 0
}

func reverseChain(path []uint16) []uint16 {
	out := make([]uint16, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}
	return out
}

func indexOfAtom(order []uint16, target uint16) int {
	for i, a := range order {
		if a == target {
			return i
		}
	}
	return -1
}

func compareIntSlices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
