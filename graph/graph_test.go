package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/graph"
	"github.com/RxnWeaver/iupac/molecule"
)

// addAtom appends a carbon (or other element) atom with the given
// hydrogen count to the molecule under construction.
func addAtom(t *testing.T, m *molecule.Molecule, symbol string, id int, hCount uint8) *molecule.Atom {
	t.Helper()
	ab := m.NewAtomBuilder()
	_, err := ab.New(symbol, id)
	require.NoError(t, err)
	ab.HydrogenCount(hCount)
	a, err := ab.Build()
	require.NoError(t, err)
	return a
}

func addBond(t *testing.T, m *molecule.Molecule, id int, a1, a2 int, bt common.BondType) *molecule.Bond {
	t.Helper()
	bb := m.NewBondBuilder()
	_, err := bb.New(id)
	require.NoError(t, err)
	_, err = bb.Atoms(a1, a2)
	require.NoError(t, err)
	_, err = bb.BondType(bt)
	require.NoError(t, err)
	b, err := bb.Build()
	require.NoError(t, err)
	return b
}

// addAromaticAtom appends an aromatic-flagged atom, as an upstream
// SMILES-style parser would for a lowercase atom symbol.
func addAromaticAtom(t *testing.T, m *molecule.Molecule, symbol string, id int, hCount uint8) *molecule.Atom {
	t.Helper()
	ab := m.NewAtomBuilder()
	_, err := ab.New(symbol, id)
	require.NoError(t, err)
	ab.HydrogenCount(hCount)
	ab.Aromatic(true)
	a, err := ab.Build()
	require.NoError(t, err)
	return a
}

// buildSaturatedRing builds an n-membered all-carbon, all-single-bonded
// saturated ring: atom i bonded to atom (i+1)%n, each carbon carrying
// enough hydrogens to satisfy valence.
func buildSaturatedRing(t *testing.T, n int) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < n; i++ {
		addAtom(t, m, "C", i, 2)
	}
	for i := 0; i < n; i++ {
		addBond(t, m, i, i, (i+1)%n, common.BondTypeSingle)
	}
	require.NoError(t, m.Freeze())
	return m
}

// buildAromaticRing builds an n-membered carbocycle the way an
// upstream SMILES parser presents an aromatic ring: every atom
// flagged aromatic, every ring bond typed aromatic.
func buildAromaticRing(t *testing.T, n int) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < n; i++ {
		addAromaticAtom(t, m, "C", i, 1)
	}
	for i := 0; i < n; i++ {
		addBond(t, m, i, i, (i+1)%n, common.BondTypeAromatic)
	}
	require.NoError(t, m.Freeze())
	return m
}

func TestAdjacency(t *testing.T) {
	m := buildSaturatedRing(t, 6)
	adj := graph.Adjacency(m)
	require.Len(t, adj, 6)
	for _, nbrs := range adj {
		require.Len(t, nbrs, 2)
	}
}

func TestSSSRCyclohexaneIsOneSaturatedRing(t *testing.T) {
	m := buildSaturatedRing(t, 6)
	rings := graph.SSSR(m)
	require.Len(t, rings, 1)
	require.Equal(t, 6, rings[0].Size())
	require.False(t, rings[0].IsAromatic())
}

func TestSSSRBenzeneIsAromatic(t *testing.T) {
	m := buildAromaticRing(t, 6)
	rings := graph.SSSR(m)
	require.Len(t, rings, 1)
	require.True(t, rings[0].IsAromatic())

	systems := m.RingSystems()
	require.Len(t, systems, 1)
	require.Equal(t, common.RingIsolated, systems[0].Classification())
}

// buildNaphthalene builds the ten-carbon fused bicyclic aromatic
// system: two six-membered rings sharing one bond (atoms 0 and 5),
// every atom and ring bond flagged aromatic as an upstream SMILES
// parser would for "c1ccc2ccccc2c1".
func buildNaphthalene(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	// Ring A: 0-1-2-3-4-5-0. Ring B: 0-5-6-7-8-9-0 (shares bond 0-5).
	hCounts := map[int]uint8{0: 0, 5: 0, 1: 1, 2: 1, 3: 1, 4: 1, 6: 1, 7: 1, 8: 1, 9: 1}
	for i := 0; i < 10; i++ {
		addAromaticAtom(t, m, "C", i, hCounts[i])
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0},
		{5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 0},
	}
	for i, e := range edges {
		addBond(t, m, i, e[0], e[1], common.BondTypeAromatic)
	}
	require.NoError(t, m.Freeze())
	return m
}

func TestSSSRNaphthaleneIsFusedBicyclic(t *testing.T) {
	m := buildNaphthalene(t)
	rings := graph.SSSR(m)
	require.Len(t, rings, 2)
	for _, r := range rings {
		require.Equal(t, 6, r.Size())
	}

	systems := m.RingSystems()
	require.Len(t, systems, 1)
	require.Equal(t, common.RingFused, systems[0].Classification())
}

func TestRingInfoReportsMembership(t *testing.T) {
	m := buildNaphthalene(t)
	ri := graph.Analyze(m)

	require.Equal(t, 2, ri.AtomRingMembership(0))
	require.Equal(t, 2, ri.AtomRingMembership(5))
	require.Equal(t, 1, ri.AtomRingMembership(1))
	require.Len(t, ri.RingsOfSize(6), 2)
}

// buildSpiro builds spiro[4.4]nonane's skeleton: two five-membered
// saturated carbocycles sharing exactly one atom.
func buildSpiro(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < 9; i++ {
		h := uint8(2)
		if i == 0 {
			h = 0
		}
		addAtom(t, m, "C", i, h)
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 0},
	}
	for i, e := range edges {
		addBond(t, m, i, e[0], e[1], common.BondTypeSingle)
	}
	require.NoError(t, m.Freeze())
	return m
}

func TestClassifySpiro(t *testing.T) {
	m := buildSpiro(t)
	graph.SSSR(m)

	systems := m.RingSystems()
	require.Len(t, systems, 1)
	require.Equal(t, common.RingSpiro, systems[0].Classification())
	require.True(t, m.AtomWithId(0).IsSpiro())
}

func TestPerimeterOfIsolatedRingIsItsOwnAtomList(t *testing.T) {
	m := buildSaturatedRing(t, 6)
	graph.SSSR(m)
	rs := m.RingSystems()[0]
	perimeter := rs.Perimeter()
	require.Len(t, perimeter, 6)
}
