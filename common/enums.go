package common

// Radical represents possible radical configurations of an atom.
type Radical uint8

const (
	RadicalNone Radical = iota
	RadicalSinglet
	RadicalDoublet
	RadicalTriplet
)

// BondType defines the possible types of bonds between a pair of
// atoms.
type BondType uint8

const (
	BondTypeNone BondType = iota
	BondTypeSingle
	BondTypeDouble
	BondTypeTriple
	BondTypeQuadruple
	BondTypeAromatic
	BondTypeAltern // InChI says 'avoid by all means'!
)

// String answers a human-readable name for this bond type.
func (bt BondType) String() string {
	switch bt {
	case BondTypeSingle:
		return "single"
	case BondTypeDouble:
		return "double"
	case BondTypeTriple:
		return "triple"
	case BondTypeQuadruple:
		return "quadruple"
	case BondTypeAromatic:
		return "aromatic"
	case BondTypeAltern:
		return "altern"
	default:
		return "none"
	}
}

// BondStereo enumerates the stereo markers a bond may carry.
type BondStereo uint8

const (
	BondStereoNone BondStereo = iota
	BondStereoUp
	BondStereoDown
	BondStereoEither
)

// Unsaturation is a composite metric reflecting an atom's current
// saturation state, derived from its bonding pattern.  See
// `Atom.determineUnsaturation` for how it is computed; the relative
// ordering of these constants is significant to callers that compare
// them.
type Unsaturation uint8

const (
	UnsaturationNone Unsaturation = iota
	UnsaturationDoubleBondC
	UnsaturationDoubleBondW
	UnsaturationDoubleBondCC
	UnsaturationDoubleBondCW
	UnsaturationDoubleBondWW
	UnsaturationTripleBondC
	UnsaturationTripleBondW
	UnsaturationCharged
)

// Hybridization enumerates the orbital hybridization states the
// naming pipeline distinguishes.
type Hybridization uint8

const (
	HybridizationOther Hybridization = iota
	HybridizationSP
	HybridizationSP2
	HybridizationSP3
)

// Chirality enumerates the (structural, not stereo-descriptor) tags a
// parser may attach to an atom.  Stereo descriptor assignment itself
// (R/S, E/Z) is a named non-goal; this tag is carried through purely
// as upstream-supplied data.
type Chirality uint8

const (
	ChiralityNone Chirality = iota
	ChiralityClockwise
	ChiralityAnticlockwise
	ChiralityUndefined
)

// RingClassification is the four-way partition rings fall into once
// SSSR overlap has been examined.
type RingClassification uint8

const (
	RingIsolated RingClassification = iota
	RingFused
	RingSpiro
	RingBridged
)

// String answers a human-readable name for this ring classification.
func (rc RingClassification) String() string {
	switch rc {
	case RingFused:
		return "fused"
	case RingSpiro:
		return "spiro"
	case RingBridged:
		return "bridged"
	default:
		return "isolated"
	}
}

// NomenclatureMethod enumerates the naming strategies P-51 recognises.
type NomenclatureMethod uint8

const (
	MethodSubstitutive NomenclatureMethod = iota
	MethodFunctionalClass
	MethodMultiplicative
	MethodReplacement
)

// String answers a human-readable name for this method.
func (m NomenclatureMethod) String() string {
	switch m {
	case MethodFunctionalClass:
		return "functional-class"
	case MethodMultiplicative:
		return "multiplicative"
	case MethodReplacement:
		return "replacement"
	default:
		return "substitutive"
	}
}

// ConflictType enumerates the reasons a rule trace entry can carry a
// conflict annotation.
type ConflictType uint8

const (
	ConflictNone ConflictType = iota
	ConflictDependency
	ConflictStateInconsistency
)

// Phase enumerates the eight fixed layers of the rule engine, in
// their mandated execution order.
type Phase uint8

const (
	PhaseAtomic Phase = iota
	PhaseFunctionalGroups
	PhaseNomenclatureMethod
	PhaseRingAnalysis
	PhaseParentSelection
	PhaseChainAnalysis
	PhaseNumbering
	PhaseNameAssembly
)

// String answers the canonical name of this layer.
func (p Phase) String() string {
	switch p {
	case PhaseFunctionalGroups:
		return "functional-groups"
	case PhaseNomenclatureMethod:
		return "nomenclature-method"
	case PhaseRingAnalysis:
		return "ring-analysis"
	case PhaseParentSelection:
		return "parent-selection"
	case PhaseChainAnalysis:
		return "chain-analysis"
	case PhaseNumbering:
		return "numbering"
	case PhaseNameAssembly:
		return "name-assembly"
	default:
		return "atomic"
	}
}
