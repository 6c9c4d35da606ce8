package engine

import (
	"fmt"

	cmn "github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/functionalgroup"
	mol "github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
	"github.com/RxnWeaver/iupac/ringname"
)

// defaultRules builds this repo's one fixed rule set: a single rule
// per layer, since none of the scenarios this repo targets need more
// than one candidate action per layer to arbitrate between. A richer
// deployment would register several competing rules per layer and
// rely on priority ordering; the contract (Rule.Priority, conditions,
// pure actions) supports that without any change here.
func defaultRules(svc *morpheme.Service) map[cmn.Phase][]Rule {
	return map[cmn.Phase][]Rule{
		cmn.PhaseAtomic: {{
			Id: "atomic.seed", Name: "seed atomic analysis", BlueBookRef: "P-10",
			Priority: 50, Condition: always, Action: ruleSeedAtomic,
		}},
		cmn.PhaseFunctionalGroups: {{
			Id: "fg.detect", Name: "detect functional groups", BlueBookRef: "P-41",
			Priority: 50, Condition: always, Action: ruleDetectFunctionalGroups(svc),
		}},
		cmn.PhaseNomenclatureMethod: {{
			Id: "method.choose", Name: "choose nomenclature method", BlueBookRef: "P-51",
			Priority: 50, Condition: always, Action: ruleChooseMethod,
		}},
		cmn.PhaseRingAnalysis: {{
			Id: "ring.populate", Name: "populate candidate ring systems", BlueBookRef: "P-23",
			Priority: 50, Condition: always, Action: ruleRingAnalysis,
		}},
		cmn.PhaseParentSelection: {{
			Id: "parent.arbitrate", Name: "arbitrate parent structure", BlueBookRef: "P-44.1.1",
			Priority: 50, Condition: always, Action: ruleParentSelection(svc),
		}},
		cmn.PhaseChainAnalysis: {{
			Id: "chain.validate", Name: "validate principal chain", BlueBookRef: "P-44.3",
			Priority: 50, Condition: condChainParent, Action: ruleChainAnalysis,
		}},
		cmn.PhaseNumbering: {{
			Id: "numbering.assign", Name: "assign locants", BlueBookRef: "P-14.4",
			Priority: 50, Condition: always, Action: ruleNumbering(svc),
		}},
		cmn.PhaseNameAssembly: {{
			Id: "assembly.compose", Name: "assemble final name", BlueBookRef: "P-14.5",
			Priority: 50, Condition: always, Action: ruleNameAssembly(svc),
		}},
	}
}

func ruleSeedAtomic(ctx *NamingContext) (*NamingContext, error) {
	if ctx.Molecule == nil || ctx.Molecule.AtomCount() == 0 {
		return ctx, fmt.Errorf("atomic: empty molecule")
	}
	return ctx.next(), nil
}

func ruleDetectFunctionalGroups(svc *morpheme.Service) func(*NamingContext) (*NamingContext, error) {
	return func(ctx *NamingContext) (*NamingContext, error) {
		groups := functionalgroup.Detect(ctx.Molecule, svc)
		principal := SelectPrincipalGroup(ctx.Molecule, groups)
		next := ctx.next()
		next.Groups = groups
		next.Principal = principal
		return next, nil
	}
}

// functionalClassPatterns is the fixed set of principal-group patterns
// that trigger functional-class nomenclature (P-51) rather than
// substitutive; every other pattern in this repo is named
// substitutively.
var functionalClassPatterns = map[string]bool{"sulfinyl": true, "sulfonyl": true}

func ruleChooseMethod(ctx *NamingContext) (*NamingContext, error) {
	next := ctx.next()
	if next.Principal != nil && functionalClassPatterns[next.Principal.Pattern] {
		next.Method = cmn.MethodFunctionalClass
	} else {
		next.Method = cmn.MethodSubstitutive
	}
	return next, nil
}

func ruleRingAnalysis(ctx *NamingContext) (*NamingContext, error) {
	next := ctx.next()
	next.RingSystems = ctx.Molecule.RingSystems()
	next.Rings = ctx.Molecule.Rings()
	return next, nil
}

func ruleParentSelection(svc *morpheme.Service) func(*NamingContext) (*NamingContext, error) {
	return func(ctx *NamingContext) (*NamingContext, error) {
		dec := ArbitrateParentStructure(ctx.Molecule, ctx.Groups, ctx.RingSystems)
		next := ctx.next()
		next.ParentIsRing = dec.IsRing
		next.ParentRingSystemId = dec.RingSystemID
		next.ParentChainAtoms = dec.ChainAtoms

		if dec.IsRing {
			rs := ringSystemById(next.RingSystems, dec.RingSystemID)
			rings := ringsOf(next.Rings, dec.RingSystemID)
			if rs != nil && len(rings) > 0 {
				next.RingName = ringname.NameRingSystem(rs, rings, ctx.Molecule, svc)
				if next.RingName != nil {
					next.Locants = next.RingName.Locants
				}
			}
		}
		return next, nil
	}
}

func ringSystemById(systems []*mol.RingSystem, id uint16) *mol.RingSystem {
	for _, rs := range systems {
		if rs.Id() == id {
			return rs
		}
	}
	return nil
}

func ringsOf(rings []*mol.Ring, ringSystemId uint16) []*mol.Ring {
	var out []*mol.Ring
	for _, r := range rings {
		if r.RingSystemId() == ringSystemId {
			out = append(out, r)
		}
	}
	return out
}

func condChainParent(ctx *NamingContext) bool { return !ctx.ParentIsRing }

func ruleChainAnalysis(ctx *NamingContext) (*NamingContext, error) {
	if len(ctx.ParentChainAtoms) == 0 {
		return ctx, fmt.Errorf("chain-analysis: no chain atoms to select from")
	}
	return ctx.next(), nil
}

func ruleNumbering(svc *morpheme.Service) func(*NamingContext) (*NamingContext, error) {
	return func(ctx *NamingContext) (*NamingContext, error) {
		var ring *mol.Ring
		if ctx.ParentIsRing {
			rings := ringsOf(ctx.Rings, ctx.ParentRingSystemId)
			if len(rings) == 1 {
				ring = rings[0]
			}
		}
		next := ctx.next()
		next.Locants = assignLocants(next, ctx.Molecule, ring)
		return next, nil
	}
}

func ruleNameAssembly(svc *morpheme.Service) func(*NamingContext) (*NamingContext, error) {
	return func(ctx *NamingContext) (*NamingContext, error) {
		next := ctx.next()
		next.Name = assembleName(next, ctx.Molecule, svc)
		return next, nil
	}
}
