// Package engine is the Rule Engine & Layer Pipeline (Component E):
// eight fixed layers of pure rules threaded over an immutable,
// versioned naming context, ending in a NamingResult.
package engine

import (
	"github.com/google/uuid"

	cmn "github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/functionalgroup"
	mol "github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/ringname"
)

// NamingContext is the value threaded through the pipeline. Every
// rule receives one and returns a new one; nothing here is mutated in
// place, so two rules can never observe one another's half-finished
// work. Version increments on every rule application (successful or
// not) purely as a debugging aid; Trace is the full append-only
// record this package calls the "trace surface".
type NamingContext struct {
	RequestID uuid.UUID
	Version   int

	Molecule *mol.Molecule

	Groups    []*functionalgroup.Group
	Principal *functionalgroup.Group
	Method    cmn.NomenclatureMethod

	RingSystems []*mol.RingSystem
	Rings       []*mol.Ring

	ParentIsRing       bool
	ParentRingSystemId uint16
	ParentChainAtoms   []uint16

	RingName *ringname.Name
	Locants  map[uint16]string

	Name string

	Trace []TraceEntry

	// Done flags record which layers actually executed (as opposed to
	// being skipped for an unmet dependency).
	AtomicDone             bool
	FunctionalGroupsDone   bool
	NomenclatureMethodDone bool
	RingAnalysisDone       bool
	ParentSelectionDone    bool
	ChainAnalysisDone      bool
	NumberingDone          bool
	NameAssemblyDone       bool
}

func newContext(m *mol.Molecule) *NamingContext {
	return &NamingContext{
		RequestID: uuid.New(),
		Molecule:  m,
	}
}

// next answers a shallow copy of c with Version incremented. Slice
// and map fields are shared with the parent until a rule's action
// reassigns them, favoring structural sharing over deep copies.
func (c *NamingContext) next() *NamingContext {
	cp := *c
	cp.Version = c.Version + 1
	return &cp
}

// withTrace answers a copy of c with one more trace entry appended.
// Appending (rather than copying the whole slice) is what gives the
// "structural sharing" versioning its name: earlier contexts' Trace
// slices still see their own prefix even after a later context
// extends the backing array.
func (c *NamingContext) withTrace(e TraceEntry) *NamingContext {
	cp := c.next()
	cp.Trace = append(c.Trace, e)
	return cp
}

func setDone(c *NamingContext, phase cmn.Phase) *NamingContext {
	cp := c.next()
	switch phase {
	case cmn.PhaseAtomic:
		cp.AtomicDone = true
	case cmn.PhaseFunctionalGroups:
		cp.FunctionalGroupsDone = true
	case cmn.PhaseNomenclatureMethod:
		cp.NomenclatureMethodDone = true
	case cmn.PhaseRingAnalysis:
		cp.RingAnalysisDone = true
	case cmn.PhaseParentSelection:
		cp.ParentSelectionDone = true
	case cmn.PhaseChainAnalysis:
		cp.ChainAnalysisDone = true
	case cmn.PhaseNumbering:
		cp.NumberingDone = true
	case cmn.PhaseNameAssembly:
		cp.NameAssemblyDone = true
	}
	return cp
}

func isDone(c *NamingContext, phase cmn.Phase) bool {
	switch phase {
	case cmn.PhaseAtomic:
		return c.AtomicDone
	case cmn.PhaseFunctionalGroups:
		return c.FunctionalGroupsDone
	case cmn.PhaseNomenclatureMethod:
		return c.NomenclatureMethodDone
	case cmn.PhaseRingAnalysis:
		return c.RingAnalysisDone
	case cmn.PhaseParentSelection:
		return c.ParentSelectionDone
	case cmn.PhaseChainAnalysis:
		return c.ChainAnalysisDone
	case cmn.PhaseNumbering:
		return c.NumberingDone
	case cmn.PhaseNameAssembly:
		return c.NameAssemblyDone
	}
	return false
}

// snapshot is the shallow, bounded-size record a trace entry carries
// for its before/after state (counts and key identifiers, never a
// deep clone). It is a pure function of c's data fields deliberately:
// one trace entry's after_snapshot must compare equal to the next
// entry's before_snapshot, which only holds if snapshotting the same
// context twice yields the same value.
func snapshot(c *NamingContext) map[string]any {
	principal := ""
	if c.Principal != nil {
		principal = c.Principal.CanonicalName
	}
	return map[string]any{
		"group_count":    len(c.Groups),
		"principal":      principal,
		"method":         c.Method.String(),
		"parent_is_ring": c.ParentIsRing,
		"name":           c.Name,
	}
}
