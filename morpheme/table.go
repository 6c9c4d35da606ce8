// Package morpheme is the read-only lexical lookup service (Component
// B of the naming pipeline): alkane stems, multiplying prefixes,
// heteroatom replacement morphemes, functional-group metadata, retained
// ring names, and citation-token normalization. Every query answers a
// zero value and ok=false on a miss; callers fall back to systematic
// construction rather than treating a miss as fatal.
package morpheme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FunctionalGroupMeta is the per-pattern metadata the data file carries
// for a functional group: its priority on the *external*, inverted
// 1-19 scale (1 = highest), the suffix and prefix morphemes used to
// render it substitutively, and its canonical (functional-class) name.
type FunctionalGroupMeta struct {
	Priority      int    `yaml:"priority"`
	Suffix        string `yaml:"suffix"`
	Prefix        string `yaml:"prefix"`
	CanonicalName string `yaml:"canonical_name"`
}

// multiplierSet holds the basic (di/tri/tetra/...) and group
// (bis/tris/tetrakis/...) multiplying-prefix tables, keyed by the
// count they multiply.
type multiplierSet struct {
	Basic map[int]string `yaml:"basic"`
	Group map[int]string `yaml:"group"`
}

// table is the fully-decoded, immutable contents of a morpheme data
// file. A `Service` never mutates a table in place; a reload builds a
// new one and swaps the pointer.
type table struct {
	Alkanes            map[int]string                 `yaml:"alkanes"`
	Multipliers        multiplierSet                   `yaml:"multipliers"`
	HeteroatomPrefixes map[string]string               `yaml:"heteroatom_prefixes"`
	FunctionalGroups    map[string]FunctionalGroupMeta `yaml:"functional_groups"`
	RetainedRingNames   map[string]string              `yaml:"retained_ring_names"`
	// CitationQualifiers are the raw tokens that `NormalizeCitationToken`
	// strips outright (sec-, tert-, iso-, and the like) when found as a
	// leading segment of a citation token.
	CitationQualifiers []string `yaml:"citation_qualifiers"`
}

// loadTable reads and decodes a morpheme data file. A malformed or
// unreadable file is always a fatal error for the caller (`Load`,
// `reload`): unlike an individual missing entry, a file that does not
// parse at all cannot be distinguished from a table that is entirely
// empty.
func loadTable(path string) (*table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("morpheme: reading %q: %w", path, err)
	}

	t := &table{}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("morpheme: parsing %q: %w", path, err)
	}
	if t.Alkanes == nil {
		t.Alkanes = map[int]string{}
	}
	if t.Multipliers.Basic == nil {
		t.Multipliers.Basic = map[int]string{}
	}
	if t.Multipliers.Group == nil {
		t.Multipliers.Group = map[int]string{}
	}
	if t.HeteroatomPrefixes == nil {
		t.HeteroatomPrefixes = map[string]string{}
	}
	if t.FunctionalGroups == nil {
		t.FunctionalGroups = map[string]FunctionalGroupMeta{}
	}
	if t.RetainedRingNames == nil {
		t.RetainedRingNames = map[string]string{}
	}
	return t, nil
}
