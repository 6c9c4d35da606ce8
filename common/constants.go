package common

// Program-wide configuration constants.

const (
	IoBufferSize = 64 * 1024 // For streams.

	ListSizeTiny   = 2  // For reactant and product lists, etc.
	ListSizeSmall  = 10 // For functional group lists, etc.
	ListSizeMedium = 20 // For neighbour lists, etc.
	ListSizeLarge  = 64 // For atom and bond lists, etc.

	MaxBonds    = 20            // Maximum number of bonds an atom can have.
	MaxRings    = ListSizeSmall // Maximum number of rings an atom can be a part of.
	MaxFeatures = ListSizeSmall // Maximum number functional groups on an atom.

	// MaxSSSRRingSize bounds the bounded-BFS small-ring supplement used
	// by the SSSR algorithm (P-23).
	MaxSSSRRingSize = 12

	// MaxVonBaeyerBridges bounds the number of node-disjoint bridgehead
	// paths the von Baeyer numbering optimizer will search for between
	// any candidate pair of principal bridgeheads.
	MaxVonBaeyerBridges = 3

	// EngineMaxPriority and EngineMinPriority bound the rescaled,
	// non-inverted functional-group priority scale used throughout the
	// rule engine (100 = highest).
	EngineMaxPriority = 100
	EngineMinPriority = 0

	// ExternalMaxPriority is the ceiling of the inverted external
	// priority scale (1 = highest) served by the morpheme data file.
	ExternalMaxPriority = 19

	// Confidence scoring deltas for a completed naming pipeline run:
	// a conflict recorded in the trace costs ConfidenceConflict
	// disagreements; a run that actually executed rules, a
	// recognized functional group, and a resolved parent structure
	// each earn their own fixed bonus, once per run. The running total is always
	// clamped to [ConfidenceMin, ConfidenceMax].
	ConfidenceConflict           = 0.1
	ConfidenceRulesExecuted      = 0.2
	ConfidenceFunctionalGroups   = 0.3
	ConfidenceParentStructure    = 0.2
	ConfidenceMin                = 0.1
	ConfidenceMax                = 1.0
)
