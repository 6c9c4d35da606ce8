package functionalgroup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/functionalgroup"
	"github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
)

// stubMeta is a minimal metaSource stand-in so these tests don't need
// to read the on-disk morpheme data file.
type stubMeta map[string]morpheme.FunctionalGroupMeta

func (s stubMeta) FunctionalGroupMeta(pattern string) (morpheme.FunctionalGroupMeta, bool) {
	v, ok := s[pattern]
	return v, ok
}

func defaultStub() stubMeta {
	return stubMeta{
		"carboxylic_acid": {Priority: 1, Suffix: "oic acid", CanonicalName: "carboxylic acid"},
		"ester":           {Priority: 3, Suffix: "oate", CanonicalName: "ester"},
		"amide":           {Priority: 4, Suffix: "amide", CanonicalName: "amide"},
		"carboxamide":     {Priority: 4, Suffix: "carboxamide", CanonicalName: "carboxamide"},
		"ketone":          {Priority: 7, Suffix: "one", CanonicalName: "ketone"},
		"aldehyde":        {Priority: 6, Suffix: "al", CanonicalName: "aldehyde"},
		"alcohol":         {Priority: 8, Suffix: "ol", CanonicalName: "alcohol"},
		"amine":           {Priority: 9, Suffix: "amine", CanonicalName: "amine"},
		"ether":           {Priority: 16, CanonicalName: "ether"},
	}
}

func addAtom(t *testing.T, m *molecule.Molecule, symbol string, id int, hCount uint8) {
	t.Helper()
	ab := m.NewAtomBuilder()
	_, err := ab.New(symbol, id)
	require.NoError(t, err)
	ab.HydrogenCount(hCount)
	_, err = ab.Build()
	require.NoError(t, err)
}

func addBond(t *testing.T, m *molecule.Molecule, id int, a1, a2 int, bt common.BondType) {
	t.Helper()
	bb := m.NewBondBuilder()
	_, err := bb.New(id)
	require.NoError(t, err)
	_, err = bb.Atoms(a1, a2)
	require.NoError(t, err)
	_, err = bb.BondType(bt)
	require.NoError(t, err)
	_, err = bb.Build()
	require.NoError(t, err)
}

// buildAceticAcid builds CH3-C(=O)-OH: atom 0 = methyl carbon, 1 =
// carbonyl carbon, 2 = carbonyl oxygen, 3 = hydroxyl oxygen.
func buildAceticAcid(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	addAtom(t, m, "C", 0, 3)
	addAtom(t, m, "C", 1, 0)
	addAtom(t, m, "O", 2, 0)
	addAtom(t, m, "O", 3, 1)
	addBond(t, m, 0, 0, 1, common.BondTypeSingle)
	addBond(t, m, 1, 1, 2, common.BondTypeDouble)
	addBond(t, m, 2, 1, 3, common.BondTypeSingle)
	require.NoError(t, m.Freeze())
	return m
}

func TestDetectCarboxylicAcid(t *testing.T) {
	m := buildAceticAcid(t)
	groups := functionalgroup.Detect(m, defaultStub())

	var found *functionalgroup.Group
	for _, g := range groups {
		if g.Pattern == "carboxylic_acid" {
			found = g
		}
	}
	require.NotNil(t, found)
	require.True(t, found.Principal)
	require.Equal(t, 100, found.Priority)
}

// buildAcetone builds CH3-C(=O)-CH3: atom 0,2 methyls, 1 carbonyl
// carbon, 3 carbonyl oxygen.
func buildAcetone(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	addAtom(t, m, "C", 0, 3)
	addAtom(t, m, "C", 1, 0)
	addAtom(t, m, "C", 2, 3)
	addAtom(t, m, "O", 3, 0)
	addBond(t, m, 0, 0, 1, common.BondTypeSingle)
	addBond(t, m, 1, 1, 2, common.BondTypeSingle)
	addBond(t, m, 2, 1, 3, common.BondTypeDouble)
	require.NoError(t, m.Freeze())
	return m
}

func TestDetectKetone(t *testing.T) {
	m := buildAcetone(t)
	groups := functionalgroup.Detect(m, defaultStub())

	var found *functionalgroup.Group
	for _, g := range groups {
		if g.Pattern == "ketone" {
			found = g
		}
	}
	require.NotNil(t, found)
	require.Contains(t, found.AtomIds, uint16(1))
}

// buildEthanol builds CH3-CH2-OH.
func buildEthanol(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	addAtom(t, m, "C", 0, 3)
	addAtom(t, m, "C", 1, 2)
	addAtom(t, m, "O", 2, 1)
	addBond(t, m, 0, 0, 1, common.BondTypeSingle)
	addBond(t, m, 1, 1, 2, common.BondTypeSingle)
	require.NoError(t, m.Freeze())
	return m
}

func TestDetectAlcoholIsPrincipalEligible(t *testing.T) {
	m := buildEthanol(t)
	groups := functionalgroup.Detect(m, defaultStub())
	require.Len(t, groups, 1)
	require.Equal(t, "alcohol", groups[0].Pattern)
	require.True(t, groups[0].Principal)
}

// buildDimethylEther builds CH3-O-CH3, the fixed non-principal ether
// class.
func buildDimethylEther(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	addAtom(t, m, "C", 0, 3)
	addAtom(t, m, "O", 1, 0)
	addAtom(t, m, "C", 2, 3)
	addBond(t, m, 0, 0, 1, common.BondTypeSingle)
	addBond(t, m, 1, 1, 2, common.BondTypeSingle)
	require.NoError(t, m.Freeze())
	return m
}

func TestEtherIsNeverPrincipal(t *testing.T) {
	m := buildDimethylEther(t)
	groups := functionalgroup.Detect(m, defaultStub())
	require.Len(t, groups, 1)
	require.Equal(t, "ether", groups[0].Pattern)
	require.False(t, groups[0].Principal)
}

func TestRescalePriorityWeakestNearBottom(t *testing.T) {
	m := buildAceticAcid(t)
	stub := stubMeta{"carboxylic_acid": {Priority: 19, CanonicalName: "weakest"}}
	groups := functionalgroup.Detect(m, stub)
	require.Len(t, groups, 1)
	// raw=19 (weakest on the external scale) should rescale near the
	// bottom of the engine scale.
	require.Less(t, groups[0].Priority, 10)
}
