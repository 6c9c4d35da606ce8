// Package functionalgroup enumerates the functional groups present in
// a molecule (Component C of the naming pipeline) and assigns each one
// a priority on the rule engine's 0-100 scale, so the engine's
// principal-group selection layer never has to know about the
// morpheme service's external, inverted priority scale.
package functionalgroup

import (
	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// Group is one detected functional group occurrence: the pattern that
// matched, the atoms it covers, its rendering morphemes, and whether
// it is even eligible to become the principal characteristic group of
// a name.
type Group struct {
	Pattern       string
	AtomIds       []uint16
	CarbonylAtom  uint16 // 0 (invalid atom id) when not applicable.
	Priority      int    // Engine scale: 0..100, 100 = highest.
	Suffix        string
	Prefix        string
	CanonicalName string
	Principal     bool // false for the fixed non-principal classes.
}

// nonPrincipalClasses is the fixed set of patterns permanently
// ineligible to be the principal characteristic group, regardless of
// their rescaled priority.
var nonPrincipalClasses = map[string]bool{
	"ether":      true,
	"thioether":  true,
	"halide":     true,
	"nitro":      true,
	"nitroso":    true,
	"alkoxy":     true,
	"phosphanyl": true,
}

// rescalePriority converts the morpheme service's external, inverted
// 1-19 priority scale (1 = highest) to the engine's 0-100 scale (100 =
// highest), per spec: engine = round((max+1-raw)/max * 100). A raw
// value above max+1 (20) is assumed pre-normalized and passed through
// unchanged; 20 itself is clamped to the ceiling like any other
// out-of-range value.
func rescalePriority(raw int) int {
	max := cmn.ExternalMaxPriority
	if raw > max+1 {
		return raw
	}
	if raw < 1 {
		raw = 1
	}
	if raw > max {
		raw = max
	}
	num := (max + 1 - raw) * cmn.EngineMaxPriority
	// Round to nearest, not truncate.
	return (num + max/2) / max
}

func firstAtom(ids []uint16) uint16 {
	if len(ids) == 0 {
		return 0
	}
	return ids[0]
}

func containsAtom(ids []uint16, id uint16) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func neighboursOf(m *mol.Molecule, aid uint16) []uint16 {
	a := m.AtomWithId(aid)
	if a == nil {
		return nil
	}
	return a.Neighbours()
}
