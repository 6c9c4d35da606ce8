package config

import cmn "github.com/RxnWeaver/iupac/common"

const (
	DefaultMorphemeDataPath = "testdata/morpheme/tables.yaml"

	DefaultMaxRingSize         = cmn.MaxSSSRRingSize
	DefaultEnableBFSSupplement = true
	DefaultMaxVonBaeyerBridges = cmn.MaxVonBaeyerBridges

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in o with its documented
// default. Fields already set by the caller (non-zero) are left
// unchanged so explicit configuration always wins.
func ApplyDefaults(o *Options) {
	if o == nil {
		return
	}
	if o.Morpheme.DataPath == "" {
		o.Morpheme.DataPath = DefaultMorphemeDataPath
	}
	if o.RingAnalysis.MaxRingSize == 0 {
		o.RingAnalysis.MaxRingSize = DefaultMaxRingSize
	}
	if o.RingAnalysis.MaxVonBaeyerBridges == 0 {
		o.RingAnalysis.MaxVonBaeyerBridges = DefaultMaxVonBaeyerBridges
	}
	if o.Log.Level == "" {
		o.Log.Level = DefaultLogLevel
	}
	if o.Log.Format == "" {
		o.Log.Format = DefaultLogFormat
	}
	// EnableBFSSupplement's zero value (false) is a legitimate explicit
	// setting, not just "unset" -- ApplyDefaults never touches it. New()
	// is the entry point that starts it at DefaultEnableBFSSupplement.
}

// New answers an *Options with every field at its default, ready for
// ApplyDefaults-free use in tests and simple embeddings.
func New() *Options {
	return &Options{
		Morpheme: MorphemeConfig{DataPath: DefaultMorphemeDataPath},
		RingAnalysis: RingAnalysisConfig{
			MaxRingSize:         DefaultMaxRingSize,
			EnableBFSSupplement: DefaultEnableBFSSupplement,
			MaxVonBaeyerBridges: DefaultMaxVonBaeyerBridges,
		},
		Log: LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}
