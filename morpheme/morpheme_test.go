package morpheme_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RxnWeaver/iupac/morpheme"
)

func load(t *testing.T) *morpheme.Service {
	t.Helper()
	s, err := morpheme.Load("../testdata/morpheme/tables.yaml")
	require.NoError(t, err)
	return s
}

func TestAlkaneStem(t *testing.T) {
	s := load(t)

	stem, ok := s.AlkaneStem(1)
	require.True(t, ok)
	require.Equal(t, "meth", stem)

	stem, ok = s.AlkaneStem(20)
	require.True(t, ok)
	require.Equal(t, "eicos", stem)

	stem, ok = s.AlkaneStem(31)
	require.True(t, ok)
	require.Equal(t, "hentriacont", stem)

	_, ok = s.AlkaneStem(9999)
	require.False(t, ok)
}

func TestMultiplier(t *testing.T) {
	s := load(t)

	m, ok := s.Multiplier(2, morpheme.MultiplierBasic)
	require.True(t, ok)
	require.Equal(t, "di", m)

	m, ok = s.Multiplier(4, morpheme.MultiplierGroup)
	require.True(t, ok)
	require.Equal(t, "tetrakis", m)

	_, ok = s.Multiplier(9999, morpheme.MultiplierBasic)
	require.False(t, ok)
}

func TestHeteroatomReplacementPrefixFallsBackToCommon(t *testing.T) {
	s := load(t)

	p, ok := s.HeteroatomReplacementPrefix("O")
	require.True(t, ok)
	require.Equal(t, "oxa", p)

	// "Se" is present only in the data file, not in the common
	// built-in table, proving the table is actually consulted first.
	p, ok = s.HeteroatomReplacementPrefix("Se")
	require.True(t, ok)
	require.Equal(t, "selena", p)

	_, ok = s.HeteroatomReplacementPrefix("Xx")
	require.False(t, ok)
}

func TestFunctionalGroupMeta(t *testing.T) {
	s := load(t)

	meta, ok := s.FunctionalGroupMeta("carboxylic_acid")
	require.True(t, ok)
	require.Equal(t, 1, meta.Priority)
	require.Equal(t, "oic acid", meta.Suffix)
	require.Equal(t, "carboxylic acid", meta.CanonicalName)

	_, ok = s.FunctionalGroupMeta("not_a_group")
	require.False(t, ok)
}

func TestRetainedRingName(t *testing.T) {
	s := load(t)

	name, ok := s.RetainedRingName("naphthalene")
	require.True(t, ok)
	require.Equal(t, "naphthalene", name)
}

func TestNormalizeCitationToken(t *testing.T) {
	s := load(t)

	require.Equal(t, "butyl", s.NormalizeCitationToken("tert-butyl"))
	require.Equal(t, "propyl", s.NormalizeCitationToken("2,3-dipropyl"))
	require.Equal(t, "methyl", s.NormalizeCitationToken("methyl"))
}

func TestComposeStemElidesTrailingVowel(t *testing.T) {
	require.Equal(t, "ethyl", morpheme.ComposeStem("eth", "yl"))
	require.Equal(t, "ethane", morpheme.ComposeStem("eth", "ane"))
	require.Equal(t, "methanol", morpheme.ComposeStem("methane", "ol"))
	require.Equal(t, "propane", morpheme.ComposeStem("propan", "e"))
}

func TestMissingFileIsAnError(t *testing.T) {
	_, err := morpheme.Load("../testdata/morpheme/does_not_exist.yaml")
	require.Error(t, err)
}
