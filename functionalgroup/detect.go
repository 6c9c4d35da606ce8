package functionalgroup

import (
	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
)

// metaSource answers the morpheme service's external metadata for a
// pattern. Detect accepts it as an interface rather than a concrete
// `*morpheme.Service` purely so tests can stub in a table without
// reading a YAML file from disk.
type metaSource interface {
	FunctionalGroupMeta(pattern string) (morpheme.FunctionalGroupMeta, bool)
}

// Detect enumerates every functional group in m, rescales each one's
// priority to the engine's 0-100 scale via svc, and applies the
// required group-level post-processing: ketone acyl-chain expansion,
// carboxamide detection, and amine splitting.
func Detect(m *mol.Molecule, svc metaSource) []*Group {
	var groups []*Group

	groups = append(groups, detectCarboxylicAcids(m)...)
	groups = append(groups, detectEsters(m)...)
	groups = append(groups, detectAmides(m)...)
	groups = append(groups, detectKetones(m)...)
	groups = append(groups, detectAldehydes(m)...)
	groups = append(groups, detectAlcohols(m)...)
	groups = append(groups, detectAmines(m)...)
	groups = append(groups, detectNitriles(m)...)
	groups = append(groups, detectEthers(m)...)
	groups = append(groups, detectThioethers(m)...)
	groups = append(groups, detectHalides(m)...)
	groups = append(groups, detectNitro(m)...)
	groups = append(groups, detectSulfonylSulfinyl(m)...)
	groups = append(groups, detectBoranePhosphanyl(m)...)

	groups = expandKetoneAcylChains(m, groups)
	groups = applyCarboxamideOverride(m, groups)
	groups = splitAmines(groups)

	for _, g := range groups {
		meta, ok := svc.FunctionalGroupMeta(g.Pattern)
		if ok {
			g.Priority = rescalePriority(meta.Priority)
			if g.Suffix == "" {
				g.Suffix = meta.Suffix
			}
			if g.Prefix == "" {
				g.Prefix = meta.Prefix
			}
			if g.CanonicalName == "" {
				g.CanonicalName = meta.CanonicalName
			}
		}
		g.Principal = !nonPrincipalClasses[g.Pattern]
	}

	return groups
}

// --- carbon-oxygen family ---

func detectCarboxylicAcids(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if !a.IsCarbonylCarbon() {
			continue
		}
		for _, nid := range a.Neighbours() {
			oh := m.AtomWithId(nid)
			if oh != nil && oh.IsHydroxyl() {
				out = append(out, &Group{
					Pattern:      "carboxylic_acid",
					AtomIds:      []uint16{a.Id(), nid},
					CarbonylAtom: a.Id(),
				})
				break
			}
		}
	}
	return out
}

func detectEsters(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if !a.IsCarbonylCarbon() {
			continue
		}
		for _, nid := range a.Neighbours() {
			oa := m.AtomWithId(nid)
			if oa == nil || oa.AtomicNumber() != 8 || oa.HydrogenCount() > 0 {
				continue
			}
			// The ester oxygen must itself be singly bonded to a
			// carbon other than this carbonyl carbon.
			b := m.BondBetween(a.Id(), nid)
			if b == nil || b.Type() == cmn.BondTypeDouble {
				continue
			}
			for _, oNbr := range oa.Neighbours() {
				if oNbr == a.Id() {
					continue
				}
				if other := m.AtomWithId(oNbr); other != nil && other.AtomicNumber() == 6 {
					out = append(out, &Group{
						Pattern:      "ester",
						AtomIds:      []uint16{a.Id(), nid, oNbr},
						CarbonylAtom: a.Id(),
					})
				}
			}
		}
	}
	return out
}

func detectAmides(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if !a.IsCarbonylCarbon() {
			continue
		}
		for _, nid := range a.Neighbours() {
			na := m.AtomWithId(nid)
			if na != nil && na.AtomicNumber() == 7 {
				out = append(out, &Group{
					Pattern:      "amide",
					AtomIds:      []uint16{a.Id(), nid},
					CarbonylAtom: a.Id(),
				})
			}
		}
	}
	return out
}

func detectKetones(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if !a.IsCarbonylCarbon() {
			continue
		}
		carbons := 0
		var carbonNbrs []uint16
		hasHeteroNbr := false
		for _, nid := range a.Neighbours() {
			na := m.AtomWithId(nid)
			if na == nil {
				continue
			}
			if na.AtomicNumber() == 6 {
				carbons++
				carbonNbrs = append(carbonNbrs, nid)
			} else if na.AtomicNumber() != 8 {
				hasHeteroNbr = true
			}
		}
		if carbons == 2 && !hasHeteroNbr {
			out = append(out, &Group{
				Pattern:      "ketone",
				AtomIds:      append([]uint16{a.Id()}, carbonNbrs...),
				CarbonylAtom: a.Id(),
			})
		}
	}
	return out
}

func detectAldehydes(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if !a.IsCarbonylCarbon() {
			continue
		}
		carbons := 0
		for _, nid := range a.Neighbours() {
			if na := m.AtomWithId(nid); na != nil && na.AtomicNumber() == 6 {
				carbons++
			}
		}
		// A carbonyl carbon with at most one carbon neighbor (the rest
		// being hydrogens, which this model does not represent as
		// explicit atoms) is an aldehyde, not a ketone.
		if carbons <= 1 && a.HydrogenCount() >= 1 {
			out = append(out, &Group{Pattern: "aldehyde", AtomIds: []uint16{a.Id()}, CarbonylAtom: a.Id()})
		}
	}
	return out
}

func detectAlcohols(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if !a.IsHydroxyl() {
			continue
		}
		// Exclude the hydroxyl of a carboxylic acid: that oxygen's
		// single carbon neighbor is itself a carbonyl carbon.
		acidic := false
		for _, nid := range a.Neighbours() {
			if na := m.AtomWithId(nid); na != nil && na.IsCarbonylCarbon() {
				acidic = true
			}
		}
		if !acidic {
			out = append(out, &Group{Pattern: "alcohol", AtomIds: []uint16{a.Id()}})
		}
	}
	return out
}

func detectAmines(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if a.AtomicNumber() != 7 {
			continue
		}
		// Exclude nitrogens already accounted for as an amide,
		// nitrile, or nitro nitrogen: an amide nitrogen is adjacent
		// to a carbonyl carbon, a nitrile nitrogen's bond to carbon
		// is triple, a nitro nitrogen carries two oxygen neighbours.
		amide := false
		nitrileN := false
		oxygenNbrs := 0
		for _, bid := range a.Bonds() {
			b := m.BondWithId(bid)
			if b == nil {
				continue
			}
			oid := b.OtherAtomId(a.Id())
			oa := m.AtomWithId(oid)
			if oa == nil {
				continue
			}
			if oa.IsCarbonylCarbon() {
				amide = true
			}
			if b.Type() == cmn.BondTypeTriple && oa.AtomicNumber() == 6 {
				nitrileN = true
			}
			if oa.AtomicNumber() == 8 {
				oxygenNbrs++
			}
		}
		if !amide && !nitrileN && oxygenNbrs < 2 {
			out = append(out, &Group{Pattern: "amine", AtomIds: []uint16{a.Id()}})
		}
	}
	return out
}

func detectNitriles(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if a.AtomicNumber() != 6 {
			continue
		}
		for _, bid := range a.Bonds() {
			b := m.BondWithId(bid)
			if b == nil || b.Type() != cmn.BondTypeTriple {
				continue
			}
			oid := b.OtherAtomId(a.Id())
			if oa := m.AtomWithId(oid); oa != nil && oa.AtomicNumber() == 7 {
				out = append(out, &Group{Pattern: "nitrile", AtomIds: []uint16{a.Id(), oid}, CarbonylAtom: a.Id()})
			}
		}
	}
	return out
}

func detectEthers(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if a.AtomicNumber() != 8 || a.HydrogenCount() > 0 {
			continue
		}
		carbonNbrs := 0
		for _, nid := range a.Neighbours() {
			if na := m.AtomWithId(nid); na != nil && na.AtomicNumber() == 6 && !na.IsCarbonylCarbon() {
				carbonNbrs++
			}
		}
		if carbonNbrs == 2 {
			out = append(out, &Group{Pattern: "ether", AtomIds: []uint16{a.Id()}})
		}
	}
	return out
}

func detectThioethers(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if a.AtomicNumber() != 16 || a.HydrogenCount() > 0 {
			continue
		}
		carbonNbrs := 0
		for _, nid := range a.Neighbours() {
			if na := m.AtomWithId(nid); na != nil && na.AtomicNumber() == 6 {
				carbonNbrs++
			}
		}
		if carbonNbrs == 2 && a.DoubleBondCount() == 0 {
			out = append(out, &Group{Pattern: "thioether", AtomIds: []uint16{a.Id()}})
		}
	}
	return out
}

func detectHalides(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		switch a.AtomicNumber() {
		case 9, 17, 35, 53:
			out = append(out, &Group{Pattern: "halide", AtomIds: []uint16{a.Id()}})
		}
	}
	return out
}

func detectNitro(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if a.AtomicNumber() != 7 {
			continue
		}
		oxygens := 0
		var ids []uint16
		for _, nid := range a.Neighbours() {
			if na := m.AtomWithId(nid); na != nil && na.AtomicNumber() == 8 {
				oxygens++
				ids = append(ids, nid)
			}
		}
		if oxygens == 2 {
			out = append(out, &Group{Pattern: "nitro", AtomIds: append([]uint16{a.Id()}, ids...)})
		}
	}
	return out
}

func detectSulfonylSulfinyl(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		if a.AtomicNumber() != 16 {
			continue
		}
		doubleOxygens := 0
		var ids []uint16
		for _, bid := range a.Bonds() {
			b := m.BondWithId(bid)
			if b == nil || b.Type() != cmn.BondTypeDouble {
				continue
			}
			oid := b.OtherAtomId(a.Id())
			if oa := m.AtomWithId(oid); oa != nil && oa.AtomicNumber() == 8 {
				doubleOxygens++
				ids = append(ids, oid)
			}
		}
		switch doubleOxygens {
		case 2:
			out = append(out, &Group{Pattern: "sulfonyl", AtomIds: append([]uint16{a.Id()}, ids...)})
		case 1:
			out = append(out, &Group{Pattern: "sulfinyl", AtomIds: append([]uint16{a.Id()}, ids...)})
		}
	}
	return out
}

func detectBoranePhosphanyl(m *mol.Molecule) []*Group {
	var out []*Group
	for _, a := range m.Atoms() {
		switch a.AtomicNumber() {
		case 5:
			out = append(out, &Group{Pattern: "borane", AtomIds: []uint16{a.Id()}})
		case 15:
			// A phosphorus with no double-bonded oxygen is the
			// substituent class (phosphanyl); one with a P=O is left
			// for a dedicated phosphonyl/phosphate pattern this
			// detector set does not yet cover.
			if a.DoubleBondCount() == 0 {
				out = append(out, &Group{Pattern: "phosphanyl", AtomIds: []uint16{a.Id()}})
			}
		}
	}
	return out
}

// --- group-level post-processing ---

// expandKetoneAcylChains implements the ketone acyl-chain expansion:
// for an internal ketone (two carbon neighbors), the shorter-chain
// neighbor becomes an acyl substituent and the ketone's atom list is
// extended by a bounded walk through it, stopping at ring atoms.
// Ring-resident carbonyl carbons are skipped outright.
func expandKetoneAcylChains(m *mol.Molecule, groups []*Group) []*Group {
	for _, g := range groups {
		if g.Pattern != "ketone" {
			continue
		}
		a := m.AtomWithId(g.CarbonylAtom)
		if a == nil || a.IsCyclic() {
			continue
		}
		if len(g.AtomIds) < 3 {
			continue
		}
		c1, c2 := g.AtomIds[1], g.AtomIds[2]
		chain1 := acylChainLength(m, g.CarbonylAtom, c1)
		chain2 := acylChainLength(m, g.CarbonylAtom, c2)
		shorter := c1
		if chain2 < chain1 {
			shorter = c2
		}
		walk := bfsAcylChain(m, g.CarbonylAtom, shorter)
		for _, id := range walk {
			if !containsAtom(g.AtomIds, id) {
				g.AtomIds = append(g.AtomIds, id)
			}
		}
	}
	return groups
}

// acylChainLength answers the number of atoms, of any element,
// reachable from start (exclusive of the carbonyl carbon at exclude)
// via a BFS that counts a ring atom but does not continue past it;
// used only to compare relative chain lengths.
func acylChainLength(m *mol.Molecule, exclude, start uint16) int {
	return len(bfsAcylChain(m, exclude, start))
}

func bfsAcylChain(m *mol.Molecule, exclude, start uint16) []uint16 {
	visited := map[uint16]bool{exclude: true}
	queue := []uint16{start}
	var order []uint16
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		a := m.AtomWithId(cur)
		if a == nil {
			continue
		}
		order = append(order, cur)
		if a.IsCyclic() {
			continue // Ring atoms terminate the walk without recursing further.
		}
		for _, nid := range a.Neighbours() {
			if !visited[nid] {
				queue = append(queue, nid)
			}
		}
	}
	return order
}

// applyCarboxamideOverride implements the carboxamide override: an
// amide whose carbonyl carbon is not itself in a ring, but is bonded
// to a ring atom, is renamed to the carboxamide suffix/pattern.
func applyCarboxamideOverride(m *mol.Molecule, groups []*Group) []*Group {
	for _, g := range groups {
		if g.Pattern != "amide" {
			continue
		}
		a := m.AtomWithId(g.CarbonylAtom)
		if a == nil || a.IsCyclic() {
			continue
		}
		for _, nid := range a.Neighbours() {
			if na := m.AtomWithId(nid); na != nil && na.IsCyclic() {
				g.Pattern = "carboxamide"
				g.Suffix = "carboxamide"
				g.CanonicalName = "carboxamide"
				break
			}
		}
	}
	return groups
}

// splitAmines implements amine splitting: a single multi-atom amine
// detection spanning several nitrogens (this detector set never
// produces one, since `detectAmines` already emits one Group per
// nitrogen) is defensively split here too, so any future detector that
// does emit a combined amine stays correct without touching this
// function.
func splitAmines(groups []*Group) []*Group {
	var out []*Group
	for _, g := range groups {
		if g.Pattern != "amine" || len(g.AtomIds) <= 1 {
			out = append(out, g)
			continue
		}
		for _, id := range g.AtomIds {
			out = append(out, &Group{Pattern: "amine", AtomIds: []uint16{id}})
		}
	}
	return out
}
