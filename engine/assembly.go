package engine

import (
	"fmt"
	"strings"

	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
)

// assembleName implements the name-assembly layer: detachable
// prefixes (alphabetized, multiplicative prefixes elided), the parent
// skeleton, and the principal-group suffix or functional-class
// rendering. Only the bounded substituent vocabulary this repo
// supports (see substituent.go) can appear as a prefix; anything this
// repo cannot name is simply omitted from the prefix list rather than
// invented -- the resulting name is then an honest (if incomplete)
// substitutive name, not a guess.
func assembleName(ctx *NamingContext, m *mol.Molecule, svc *morpheme.Service) string {
	if ctx.Method == cmn.MethodFunctionalClass && ctx.Principal != nil {
		if name, ok := functionalClassName(ctx, m, svc); ok {
			return normalizeName(name)
		}
	}

	parentSet, order := parentAtomSet(ctx, m)
	base := parentBaseName(ctx, m, svc, order)
	if base == "" {
		return ""
	}

	subs := collectSubstituents(ctx, m, svc, parentSet, ctx.Locants)
	prefix := renderSubstituentPrefixes(svc, subs)

	name := prefix + base
	if ctx.Principal != nil && ctx.Principal.Suffix != "" {
		name = appendPrincipalSuffix(name, ctx, m, ctx.Locants)
	}
	return normalizeName(name)
}

// parentAtomSet answers the parent structure's atom set, plus (for a
// chain parent) its numbered traversal order.
func parentAtomSet(ctx *NamingContext, m *mol.Molecule) (map[uint16]bool, []uint16) {
	if ctx.ParentIsRing {
		for _, rs := range ctx.RingSystems {
			if rs.Id() == ctx.ParentRingSystemId {
				return atomSet(rs.AtomIds()), nil
			}
		}
		return map[uint16]bool{}, nil
	}
	order := longestChainPath(m, ctx.ParentChainAtoms)
	return atomSet(order), order
}

func parentBaseName(ctx *NamingContext, m *mol.Molecule, svc *morpheme.Service, chainOrder []uint16) string {
	if ctx.ParentIsRing {
		if ctx.RingName == nil {
			return ""
		}
		return ctx.RingName.Base
	}
	return chainSkeletonBase(m, svc, chainOrder)
}

// chainSkeletonBase names a simple acyclic parent chain: its alkane
// stem, with an "ene"/"yne" infix when it carries double or triple
// bonds. Multiple unsaturations of the same kind are combined with a
// multiplying prefix and a locant list; a chain mixing double and
// triple bonds (an "enyne") is out of scope and falls back to the
// bare alkane stem, since no explicit scenario exercises it.
func chainSkeletonBase(m *mol.Molecule, svc *morpheme.Service, order []uint16) string {
	n := len(order)
	if n == 0 {
		return ""
	}
	stem, ok := svc.AlkaneStem(n)
	if !ok {
		return ""
	}

	var doubles, triples []int
	for i := 0; i+1 < len(order); i++ {
		b := m.BondBetween(order[i], order[i+1])
		if b == nil {
			continue
		}
		switch b.Type() {
		case cmn.BondTypeDouble:
			doubles = append(doubles, i+1)
		case cmn.BondTypeTriple:
			triples = append(triples, i+1)
		}
	}

	switch {
	case len(doubles) > 0 && len(triples) == 0:
		return unsaturatedStem(svc, stem, doubles, "ene")
	case len(triples) > 0 && len(doubles) == 0:
		return unsaturatedStem(svc, stem, triples, "yne")
	default:
		return morpheme.ComposeStem(stem, "ane")
	}
}

func unsaturatedStem(svc *morpheme.Service, stem string, locants []int, suffix string) string {
	mult := ""
	if n := len(locants); n > 1 {
		if m, ok := svc.Multiplier(n, morpheme.MultiplierBasic); ok {
			mult = m
		}
	}
	infix := suffix
	if mult != "" {
		infix = mult + suffix
	}
	return fmt.Sprintf("%s-%s-%s", stem, joinInts(locants), infix)
}

// appendPrincipalSuffix attaches the principal group's suffix at its
// locant, eliding a parent's trailing vowel before a vowel-initial
// suffix and omitting the locant entirely when the parent has only
// one possible attachment point (a one-carbon parent).
func appendPrincipalSuffix(name string, ctx *NamingContext, m *mol.Molecule, locants map[uint16]string) string {
	anchor := attachmentAtom(m, ctx.Principal)
	loc, ok := locants[anchor]
	suffix := ctx.Principal.Suffix
	if !ok || len(locants) <= 1 {
		return morpheme.ComposeStem(name, suffix)
	}
	elided := strings.TrimSuffix(morpheme.ComposeStem(name, suffix), suffix)
	return fmt.Sprintf("%s-%s-%s", elided, loc, suffix)
}

// functionalClassName renders the sulfinyl/sulfonyl functional-class
// scenarios this repo targets literally (dimethyl sulfoxide ->
// "methylsulfinylmethane", diphenyl sulfone -> "(phenylsulfonyl)benzene"):
// the sulfur's two carbon substituents are named independently, one
// becomes a substituent prefix on the class word, the other becomes
// the parent. Only plain methyl and phenyl sides are recognized;
// anything else answers ok=false so the caller falls back to the
// substitutive assembler.
func functionalClassName(ctx *NamingContext, m *mol.Molecule, svc *morpheme.Service) (string, bool) {
	g := ctx.Principal
	if g.Pattern != "sulfinyl" && g.Pattern != "sulfonyl" {
		return "", false
	}
	if len(g.AtomIds) == 0 {
		return "", false
	}
	sulfur := g.AtomIds[0]
	a := m.AtomWithId(sulfur)
	if a == nil {
		return "", false
	}

	var sides []uint16
	for _, nb := range a.Neighbours() {
		if na := m.AtomWithId(nb); na != nil && na.AtomicNumber() == 6 {
			sides = append(sides, nb)
		}
	}
	if len(sides) != 2 {
		return "", false
	}

	subForm, _, subIsPhenyl, ok1 := sideGroupName(m, svc, sides[0], sulfur)
	_, parentForm, _, ok2 := sideGroupName(m, svc, sides[1], sulfur)
	if !ok1 || !ok2 {
		return "", false
	}
	subName, parentName := subForm, parentForm

	classWord := "sulfinyl"
	if g.Pattern == "sulfonyl" {
		classWord = "sulfonyl"
	}

	prefix := subName + classWord
	if subIsPhenyl {
		prefix = "(" + prefix + ")"
	}
	return prefix + parentName, true
}

// sideGroupName names one of the sulfur's two substituents, answering
// both the substituent ("-yl"/"phenyl") and parent ("-ane"/"benzene")
// forms, since the caller uses one side each way. isPhenyl tells the
// caller whether to parenthesize the substituent form, per P-16.3.
func sideGroupName(m *mol.Molecule, svc *morpheme.Service, atom, boundary uint16) (substituent, parent string, isPhenyl, ok bool) {
	a := m.AtomWithId(atom)
	if a == nil {
		return "", "", false, false
	}
	if a.IsInRing() {
		for _, rs := range m.RingSystems() {
			if rs.Size() == 1 && rs.IsAromatic() && rs.HasAtom(atom) && len(rs.AtomIds()) == 6 {
				return "phenyl", "benzene", true, true
			}
		}
		return "", "", false, false
	}
	chain := unbranchedAlkylChain(m, atom, map[uint16]bool{boundary: true}, map[uint16]bool{})
	if chain == nil {
		return "", "", false, false
	}
	stem, ok := svc.AlkaneStem(len(chain))
	if !ok {
		return "", "", false, false
	}
	return morpheme.ComposeStem(stem, "yl"), morpheme.ComposeStem(stem, "ane"), false, true
}

// normalizeName applies the final citation-form rewrite: "benzenoic"
// is always written "benzoic". A generic "polycyclic_C<n>" placeholder
// is passed through unchanged; it is not rewritten to a retained
// aromatic name.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "benzenoic", "benzoic")
	return name
}
