package engine

import (
	"sort"

	"github.com/RxnWeaver/iupac/functionalgroup"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// SelectPrincipalGroup implements the central P-41 principal-group
// selection algorithm, in the order of its six steps.
func SelectPrincipalGroup(m *mol.Molecule, groups []*functionalgroup.Group) *functionalgroup.Group {
	eligible := filterPrincipalEligible(groups)
	eligible = excludeSulfurBridges(m, eligible)
	if len(eligible) == 0 {
		return nil
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Priority > eligible[j].Priority
	})

	if amine := diamineOverride(eligible); amine != nil {
		return amine
	}
	if ketone := ringKetoneOverride(m, groups, eligible); ketone != nil {
		return ketone
	}
	return eligible[0]
}

// filterPrincipalEligible drops the fixed non-principal classes,
// already flagged by Component C's detector.
func filterPrincipalEligible(groups []*functionalgroup.Group) []*functionalgroup.Group {
	var out []*functionalgroup.Group
	for _, g := range groups {
		if g.Principal {
			out = append(out, g)
		}
	}
	return out
}

// excludeSulfurBridges repeatedly removes sulfinyl/sulfonyl pairs
// whose sulfurs are directly bonded -- a sulfur-bridge substituent,
// not two independent principal-eligible groups -- and recurses until
// no more such pairs remain.
func excludeSulfurBridges(m *mol.Molecule, groups []*functionalgroup.Group) []*functionalgroup.Group {
	for {
		bridgeA, bridgeB := -1, -1
		for i, gi := range groups {
			if gi.Pattern != "sulfinyl" && gi.Pattern != "sulfonyl" {
				continue
			}
			for j := i + 1; j < len(groups); j++ {
				gj := groups[j]
				if gj.Pattern != "sulfinyl" && gj.Pattern != "sulfonyl" {
					continue
				}
				if gi.Pattern == gj.Pattern {
					continue
				}
				if directlyBonded(m, firstOf(gi.AtomIds), firstOf(gj.AtomIds)) {
					bridgeA, bridgeB = i, j
					break
				}
			}
			if bridgeA >= 0 {
				break
			}
		}
		if bridgeA < 0 {
			return groups
		}
		groups = removeIndices(groups, bridgeA, bridgeB)
	}
}

func directlyBonded(m *mol.Molecule, a, b uint16) bool {
	if a == 0 || b == 0 {
		return false
	}
	return m.BondBetween(a, b) != nil
}

func removeIndices(groups []*functionalgroup.Group, a, b int) []*functionalgroup.Group {
	out := make([]*functionalgroup.Group, 0, len(groups)-2)
	for i, g := range groups {
		if i == a || i == b {
			continue
		}
		out = append(out, g)
	}
	return out
}

func firstOf(ids []uint16) uint16 {
	if len(ids) == 0 {
		return 0
	}
	return ids[0]
}

// diamineOverride: if at least two amine groups exist and every
// competing (non-amine) eligible group is an alcohol or an amide, the
// amine wins regardless of raw priority ordering.
func diamineOverride(eligible []*functionalgroup.Group) *functionalgroup.Group {
	var amines []*functionalgroup.Group
	for _, g := range eligible {
		if g.Pattern == "amine" {
			amines = append(amines, g)
		} else if g.Pattern != "alcohol" && g.Pattern != "amide" {
			return nil
		}
	}
	if len(amines) < 2 {
		return nil
	}
	sort.SliceStable(amines, func(i, j int) bool { return amines[i].Priority > amines[j].Priority })
	return amines[0]
}

// ringKetoneOverride: a ketone whose carbonyl carbon lies in a ring,
// when an ether is also present anywhere in the molecule, outranks
// whatever the raw priority ordering would otherwise pick.
func ringKetoneOverride(m *mol.Molecule, allGroups, eligible []*functionalgroup.Group) *functionalgroup.Group {
	hasEther := false
	for _, g := range allGroups {
		if g.Pattern == "ether" {
			hasEther = true
			break
		}
	}
	if !hasEther {
		return nil
	}
	for _, g := range eligible {
		if g.Pattern != "ketone" {
			continue
		}
		if a := m.AtomWithId(g.CarbonylAtom); a != nil && a.IsInRing() {
			return g
		}
	}
	return nil
}
