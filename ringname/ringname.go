// Package ringname is the Ring Nomenclature Engine (Component D): base
// names and locant maps for ring systems, from a single retained name
// like "benzene" up through a fully von Baeyer-numbered bridged
// polycyclic.
package ringname

import (
	"strconv"

	mol "github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
)

// tableSource is the subset of the morpheme service this package
// depends on; an interface so tests can substitute a small stub.
type tableSource interface {
	AlkaneStem(n int) (string, bool)
	HeteroatomReplacementPrefix(symbol string) (string, bool)
	RetainedRingName(patternKey string) (string, bool)
}

var _ tableSource = (*morpheme.Service)(nil)

// Name is the outcome of naming one ring system: its base name, and
// the locant (a position number, or a letter-suffixed fusion locant
// like "4a") assigned to each of its atoms.
type Name struct {
	Base        string
	Locants     map[uint16]string
	Heteroatoms map[uint16]string // atom id -> element symbol, for replacement-prefix rendering.
}

// NameRingSystem names one ring system, trying each strategy in order
// of specificity: a single retained monocyclic name, the polycyclic
// retained-name catalogue, fused-aromatic perimeter numbering, then
// von Baeyer numbering for a genuinely bridged skeleton. Failing all
// of those, it answers the generic `polycyclic_C⟨n⟩` placeholder name
// as the terminal fallback.
func NameRingSystem(rs *mol.RingSystem, rings []*mol.Ring, m *mol.Molecule, svc tableSource) *Name {
	sysRings := ringsOf(rs, rings)

	if len(sysRings) == 1 {
		if n := nameMonocyclic(sysRings[0], m, svc); n != nil {
			return n
		}
	}

	if n := matchRetainedPolycyclic(rs, sysRings, m, svc); n != nil {
		return n
	}

	if rs.IsAromatic() && len(sysRings) > 1 {
		if n := nameFusedAromaticPerimeter(rs, sysRings, m, svc); n != nil {
			return n
		}
	}

	if n := nameVonBaeyer(rs, sysRings, m, svc); n != nil {
		return n
	}

	return &Name{
		Base:    genericPolycyclicName(rs),
		Locants: identityLocants(rs.AtomIds()),
	}
}

func ringsOf(rs *mol.RingSystem, rings []*mol.Ring) []*mol.Ring {
	ids := make(map[uint16]bool, len(rs.RingIds()))
	for _, id := range rs.RingIds() {
		ids[id] = true
	}
	var out []*mol.Ring
	for _, r := range rings {
		if ids[r.Id()] {
			out = append(out, r)
		}
	}
	return out
}

// genericPolycyclicName answers the `polycyclic_C⟨n⟩` placeholder for
// a ring system that neither a retained pattern nor a von Baeyer
// assignment could name. Name assembly passes this placeholder
// through unchanged.
func genericPolycyclicName(rs *mol.RingSystem) string {
	n := len(rs.AtomIds())
	return "polycyclic_C" + strconv.Itoa(n)
}

func identityLocants(atomIds []uint16) map[uint16]string {
	out := make(map[uint16]string, len(atomIds))
	for i, aid := range atomIds {
		out[aid] = strconv.Itoa(i + 1)
	}
	return out
}
