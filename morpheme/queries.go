package morpheme

import (
	"regexp"
	"strings"

	cmn "github.com/RxnWeaver/iupac/common"
)

// MultiplierKind distinguishes the basic multiplying prefixes
// (di/tri/tetra/...), used before a simple substituent name, from the
// group multiplying prefixes (bis/tris/tetrakis/...), used before a
// substituent name that is itself substituted or otherwise compound.
type MultiplierKind uint8

const (
	MultiplierBasic MultiplierKind = iota
	MultiplierGroup
)

// AlkaneStem answers the alkane stem for a chain of n carbons (1:
// "meth", 2: "eth", ..., 20: "eicos", 31: "hentriacont"), and whether
// n is present in the table.
func (s *Service) AlkaneStem(n int) (string, bool) {
	v, ok := s.current().Alkanes[n]
	return v, ok
}

// Multiplier answers the multiplying prefix for n of the given kind,
// and whether the table has an entry for it.
func (s *Service) Multiplier(n int, kind MultiplierKind) (string, bool) {
	t := s.current()
	var m map[int]string
	if kind == MultiplierGroup {
		m = t.Multipliers.Group
	} else {
		m = t.Multipliers.Basic
	}
	v, ok := m[n]
	return v, ok
}

// HeteroatomReplacementPrefix answers the 'a' replacement-nomenclature
// prefix (P-23) for the given element symbol. A table miss falls back
// to the small built-in table in `common`, since that table is also
// relied on directly by the ring-numbering stage and must never regress
// below it even if the data file omits an entry.
func (s *Service) HeteroatomReplacementPrefix(symbol string) (string, bool) {
	if v, ok := s.current().HeteroatomPrefixes[symbol]; ok {
		return v, true
	}
	if v := cmn.HeteroatomReplacementPrefix(symbol); v != "" {
		return v, true
	}
	return "", false
}

// FunctionalGroupMeta answers the external metadata for a detected
// functional group pattern (keyed the way the functional-group
// detector names its patterns, e.g. "carboxylic_acid", "ketone").
func (s *Service) FunctionalGroupMeta(pattern string) (FunctionalGroupMeta, bool) {
	v, ok := s.current().FunctionalGroups[pattern]
	return v, ok
}

// RetainedRingName answers the retained trivial or semi-trivial name
// for a ring-system pattern key (e.g. "benzene", "naphthalene",
// "pyridine", "indole").
func (s *Service) RetainedRingName(patternKey string) (string, bool) {
	v, ok := s.current().RetainedRingNames[patternKey]
	return v, ok
}

var locantPrefixRe = regexp.MustCompile(`^[0-9]+(,[0-9]+)*-`)

// NormalizeCitationToken strips locants, multiplicative prefixes, and
// citation qualifiers (sec-, tert-, iso-, and whatever else the table
// lists) from a raw alphabetization token, answering the bare morpheme
// a citation-ordering comparison should sort on. A token with nothing
// left to strip is returned unchanged (lower-cased).
func (s *Service) NormalizeCitationToken(raw string) string {
	tok := strings.ToLower(strings.TrimSpace(raw))
	tok = locantPrefixRe.ReplaceAllString(tok, "")

	t := s.current()
	for _, q := range t.CitationQualifiers {
		q = strings.ToLower(q)
		if strings.HasPrefix(tok, q) {
			tok = strings.TrimPrefix(tok, q)
			break
		}
	}

	for n := range t.Multipliers.Basic {
		if p, ok := t.Multipliers.Basic[n]; ok && strings.HasPrefix(tok, p) && tok != p {
			tok = strings.TrimPrefix(tok, p)
			break
		}
	}
	for n := range t.Multipliers.Group {
		if p, ok := t.Multipliers.Group[n]; ok && strings.HasPrefix(tok, p) && tok != p {
			tok = strings.TrimPrefix(tok, p)
			break
		}
	}

	return tok
}

var trailingVowel = regexp.MustCompile(`[aeiou]$`)

// ComposeStem joins an alkane (or replacement) stem to a suffix,
// applying the standard IUPAC elision rule: a stem's trailing vowel is
// dropped when the suffix itself begins with a vowel (e.g.
// "prop" + "ane" -> "propane" keeps both, but "hex" + "-ol" scanning
// through "hexanol" elides the terminal "e" of "hexane" before "-ol";
// concretely, this function drops stem's final vowel only when suffix
// starts with a vowel). Callers pass the fully-formed stem (already
// including any terminal "e" from a prior composition step) and the
// next morpheme to append.
func ComposeStem(stem, suffix string) string {
	if suffix == "" {
		return stem
	}
	if trailingVowel.MatchString(stem) && startsWithVowel(suffix) {
		return stem[:len(stem)-1] + suffix
	}
	return stem + suffix
}

func startsWithVowel(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}
