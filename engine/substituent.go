package engine

import (
	"fmt"
	"sort"
	"strings"

	mol "github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
)

// substituentToken is one rendered detachable prefix, already locant-
// tagged, waiting only for alphabetization and multiplicative-prefix
// collapsing.
type substituentToken struct {
	Locant  int
	Name    string // bare morpheme, e.g. "methyl", "chloro", "hydroxy"
	SortKey string
}

var halogenPrefixes = map[int]string{9: "fluoro", 17: "chloro", 35: "bromo", 53: "iodo"}

// collectSubstituents gathers this repo's bounded set of detachable
// prefixes: every non-principal functional-group occurrence (via its
// morpheme-supplied Prefix, with halide's per-halogen prefix resolved
// here since the detector tags every halogen with the single pattern
// "halide"), plus unbranched alkyl chains hanging off a parent atom
// that no functional-group detector already claimed. General branched
// or polycyclic substituent naming is out of scope -- see DESIGN.md.
func collectSubstituents(ctx *NamingContext, m *mol.Molecule, svc *morpheme.Service, parentSet map[uint16]bool, locants map[uint16]string) []substituentToken {
	var out []substituentToken
	claimed := map[uint16]bool{}
	for p := range parentSet {
		claimed[p] = true
	}

	for _, g := range ctx.Groups {
		if g == ctx.Principal || g.Prefix == "" {
			continue
		}
		anchor := attachmentAtom(m, g)
		loc, ok := locantNear(m, locants, parentSet, anchor)
		if !ok {
			continue
		}
		name := g.Prefix
		if g.Pattern == "halide" {
			if a := m.AtomWithId(anchor); a != nil {
				if p, ok := halogenPrefixes[a.AtomicNumber()]; ok {
					name = p
				}
			}
		}
		out = append(out, substituentToken{Locant: loc, Name: name, SortKey: svc.NormalizeCitationToken(name)})
		for _, aid := range g.AtomIds {
			claimed[aid] = true
		}
	}

	for pAtom := range parentSet {
		a := m.AtomWithId(pAtom)
		if a == nil {
			continue
		}
		for _, nb := range a.Neighbours() {
			if parentSet[nb] || claimed[nb] {
				continue
			}
			branch := unbranchedAlkylChain(m, nb, parentSet, claimed)
			if branch == nil {
				continue
			}
			stem, ok := svc.AlkaneStem(len(branch))
			if !ok {
				continue
			}
			name := morpheme.ComposeStem(stem, "yl")
			loc, ok := locantNear(m, locants, parentSet, pAtom)
			if !ok {
				continue
			}
			out = append(out, substituentToken{Locant: loc, Name: name, SortKey: svc.NormalizeCitationToken(name)})
			for _, aid := range branch {
				claimed[aid] = true
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortKey != out[j].SortKey {
			return out[i].SortKey < out[j].SortKey
		}
		return out[i].Locant < out[j].Locant
	})
	return out
}

// unbranchedAlkylChain walks an all-carbon, degree<=2-in-branch chain
// starting at start, answering the atom ids in walk order, or nil if
// start is not carbon, is already claimed, or the chain branches or
// re-enters the parent/claimed set partway through.
func unbranchedAlkylChain(m *mol.Molecule, start uint16, parentSet, claimed map[uint16]bool) []uint16 {
	var chain []uint16
	seen := map[uint16]bool{}
	cur := start
	for {
		a := m.AtomWithId(cur)
		if a == nil || a.AtomicNumber() != 6 || seen[cur] || claimed[cur] {
			return nil
		}
		seen[cur] = true
		chain = append(chain, cur)

		var next uint16
		nextCount := 0
		for _, nb := range a.Neighbours() {
			if parentSet[nb] && cur != start {
				return nil
			}
			if parentSet[nb] || seen[nb] {
				continue
			}
			next = nb
			nextCount++
		}
		if nextCount == 0 {
			return chain
		}
		if nextCount > 1 {
			return nil
		}
		cur = next
	}
}

// locantNear answers the locant string, parsed as an int, of either
// the given atom (if it is itself in the parent) or whichever
// parent-set neighbour of it is -- covering an exocyclic-but-attached
// atom such as an alcohol's hydroxyl oxygen.
func locantNear(m *mol.Molecule, locants map[uint16]string, parentSet map[uint16]bool, atom uint16) (int, bool) {
	if s, ok := locants[atom]; ok {
		return parseLocant(s)
	}
	a := m.AtomWithId(atom)
	if a == nil {
		return 0, false
	}
	for _, nb := range a.Neighbours() {
		if parentSet[nb] {
			if s, ok := locants[nb]; ok {
				return parseLocant(s)
			}
		}
	}
	return 0, false
}

func parseLocant(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// renderSubstituentPrefixes groups identical-name tokens under one
// multiplicative prefix (di/tri/tetra/... or bis/tris/... for a
// substituent whose own name already carries a locant) and joins them
// in alphabetical order, per P-14.5's citation-order rule.
func renderSubstituentPrefixes(svc *morpheme.Service, tokens []substituentToken) string {
	type group struct {
		name    string
		sortKey string
		locants []int
	}
	var order []string
	byName := map[string]*group{}
	for _, t := range tokens {
		g, ok := byName[t.Name]
		if !ok {
			g = &group{name: t.Name, sortKey: t.SortKey}
			byName[t.Name] = g
			order = append(order, t.Name)
		}
		g.locants = append(g.locants, t.Locant)
	}
	sort.Strings(order)
	sort.SliceStable(order, func(i, j int) bool {
		return byName[order[i]].sortKey < byName[order[j]].sortKey
	})

	var out string
	for _, name := range order {
		g := byName[name]
		sort.Ints(g.locants)
		mult := ""
		kind := morpheme.MultiplierBasic
		if strings.ContainsAny(name, "0123456789") {
			kind = morpheme.MultiplierGroup
		}
		if n := len(g.locants); n > 1 {
			if m, ok := svc.Multiplier(n, kind); ok {
				mult = m
			}
		}
		locs := joinInts(g.locants)
		out += fmt.Sprintf("%s-%s%s", locs, mult, name)
	}
	return out
}

func joinInts(ns []int) string {
	s := ""
	for i, n := range ns {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%d", n)
	}
	return s
}
