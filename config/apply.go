package config

import (
	"github.com/RxnWeaver/iupac/graph"
	"github.com/RxnWeaver/iupac/ringname"
)

// graphApplyRingAnalysis pushes the ring-analysis knobs onto the
// graph and ringname packages' process-wide tunables. Kept as its own
// function (rather than inlined into Apply) so config stays the only
// package that imports both graph and ringname for this purpose.
func graphApplyRingAnalysis(c RingAnalysisConfig) {
	graph.MaxSSSRRingSize = c.MaxRingSize
	graph.EnableBFSSupplement = c.EnableBFSSupplement
	ringname.MaxVonBaeyerBridges = c.MaxVonBaeyerBridges
}
