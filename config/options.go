// Package config defines the runtime-tunable knobs for the naming
// pipeline and loads them from YAML/env/flags. No nomenclature logic
// lives here -- only plain data types, defaults, and validation. The
// pipeline itself takes no *Options; nothing in engine reads
// configuration at naming time, except the three process-wide
// ring-analysis knobs in graph/ringname, which config.Apply sets once
// at process start.
package config

import "fmt"

// MorphemeConfig controls where and how the morpheme service's
// backing data file is loaded.
type MorphemeConfig struct {
	DataPath string `mapstructure:"data_path"`
	Watch    bool   `mapstructure:"watch"`
}

// RingAnalysisConfig controls the bounded-search knobs the ring
// analyzer and von Baeyer numbering use. These are process-wide
// startup tunables -- see graph.MaxSSSRRingSize, graph.EnableBFSSupplement,
// and ringname.MaxVonBaeyerBridges -- rather than per-request values,
// since ring perception never varies its search bounds from one
// naming call to the next.
type RingAnalysisConfig struct {
	MaxRingSize         int  `mapstructure:"max_ring_size"`
	EnableBFSSupplement bool `mapstructure:"enable_bfs_supplement"`
	MaxVonBaeyerBridges int  `mapstructure:"max_von_baeyer_bridges"`
}

// LogConfig controls the zap logger wired into the pipeline.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// Options is the root configuration value. Every component that reads
// a runtime-tunable knob reads it from here.
type Options struct {
	Morpheme     MorphemeConfig     `mapstructure:"morpheme"`
	RingAnalysis RingAnalysisConfig `mapstructure:"ring_analysis"`
	Log          LogConfig          `mapstructure:"log"`
}

// Validate performs semantic validation of a fully-populated Options.
// It returns the first error encountered; callers should treat any
// error as fatal and refuse to start.
func (o *Options) Validate() error {
	if o.Morpheme.DataPath == "" {
		return fmt.Errorf("config: morpheme.data_path is required")
	}
	if o.RingAnalysis.MaxRingSize < 3 {
		return fmt.Errorf("config: ring_analysis.max_ring_size must be >= 3, got %d", o.RingAnalysis.MaxRingSize)
	}
	if o.RingAnalysis.MaxVonBaeyerBridges < 2 {
		return fmt.Errorf("config: ring_analysis.max_von_baeyer_bridges must be >= 2, got %d", o.RingAnalysis.MaxVonBaeyerBridges)
	}
	switch o.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", o.Log.Level)
	}
	switch o.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", o.Log.Format)
	}
	return nil
}
