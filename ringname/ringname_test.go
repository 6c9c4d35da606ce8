package ringname_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/graph"
	"github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/ringname"
)

// stubTable is a minimal tableSource double, so these tests don't
// need the real YAML-backed morpheme service.
type stubTable struct {
	alkanes  map[int]string
	hetero   map[string]string
	retained map[string]string
}

func (s *stubTable) AlkaneStem(n int) (string, bool) {
	v, ok := s.alkanes[n]
	return v, ok
}

func (s *stubTable) HeteroatomReplacementPrefix(symbol string) (string, bool) {
	v, ok := s.hetero[symbol]
	return v, ok
}

func (s *stubTable) RetainedRingName(patternKey string) (string, bool) {
	v, ok := s.retained[patternKey]
	return v, ok
}

func defaultStubTable() *stubTable {
	return &stubTable{
		alkanes: map[int]string{
			3: "prop", 4: "but", 5: "pent", 6: "hex", 7: "hept", 8: "oct",
		},
		hetero: map[string]string{
			"O": "oxa", "N": "aza", "S": "thia",
		},
		retained: map[string]string{},
	}
}

func addAtom(t *testing.T, m *molecule.Molecule, symbol string, id int, hCount uint8, aromatic bool) *molecule.Atom {
	t.Helper()
	ab := m.NewAtomBuilder()
	_, err := ab.New(symbol, id)
	require.NoError(t, err)
	ab.HydrogenCount(hCount)
	ab.Aromatic(aromatic)
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

func buildBenzene(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < 6; i++ {
		addAtom(t, m, "C", i, 1, true)
	}
	for i := 0; i < 6; i++ {
		addBond(t, m, i, i, (i+1)%6, common.BondTypeAromatic)
	}
	require.NoError(t, m.Freeze())
	return m
}

func buildPyridine(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	addAtom(t, m, "N", 0, 0, true)
	for i := 1; i < 6; i++ {
		addAtom(t, m, "C", i, 1, true)
	}
	for i := 0; i < 6; i++ {
		addBond(t, m, i, i, (i+1)%6, common.BondTypeAromatic)
	}
	require.NoError(t, m.Freeze())
	return m
}

func buildFuran(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	addAtom(t, m, "O", 0, 0, true)
	for i := 1; i < 5; i++ {
		addAtom(t, m, "C", i, 1, true)
	}
	for i := 0; i < 5; i++ {
		addBond(t, m, i, i, (i+1)%5, common.BondTypeAromatic)
	}
	require.NoError(t, m.Freeze())
	return m
}

func buildCyclohexane(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < 6; i++ {
		addAtom(t, m, "C", i, 2, false)
	}
	for i := 0; i < 6; i++ {
		addBond(t, m, i, i, (i+1)%6, common.BondTypeSingle)
	}
	require.NoError(t, m.Freeze())
	return m
}

func buildCyclohexene(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < 6; i++ {
		h := uint8(2)
		if i == 0 || i == 1 {
			h = 1
		}
		addAtom(t, m, "C", i, h, false)
	}
	for i := 0; i < 6; i++ {
		bt := common.BondTypeSingle
		if i == 0 {
			bt = common.BondTypeDouble
		}
		addBond(t, m, i, i, (i+1)%6, bt)
	}
	require.NoError(t, m.Freeze())
	return m
}

// buildNaphthalene builds the fused bicyclic aromatic skeleton, two
// six-rings sharing one bond.
func buildNaphthalene(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	hCounts := map[int]uint8{0: 0, 5: 0, 1: 1, 2: 1, 3: 1, 4: 1, 6: 1, 7: 1, 8: 1, 9: 1}
	for i := 0; i < 10; i++ {
		addAtom(t, m, "C", i, hCounts[i], true)
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

// buildQuinoline builds naphthalene's skeleton with atom 1 (adjacent
// to the fusion atom 0) replaced by nitrogen, so the nitrogen sits
// directly next to the fusion bond as quinoline's numbering requires.
func buildQuinoline(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	symbols := map[int]string{1: "N"}
	hCounts := map[int]uint8{0: 0, 5: 0, 1: 0, 2: 1, 3: 1, 4: 1, 6: 1, 7: 1, 8: 1, 9: 1}
	for i := 0; i < 10; i++ {
		sym := symbols[i]
		if sym == "" {
			sym = "C"
		}
		addAtom(t, m, sym, i, hCounts[i], true)
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

func ringSystemOf(t *testing.T, m *molecule.Molecule) (*molecule.RingSystem, []*molecule.Ring) {
	t.Helper()
	graph.Analyze(m)
	systems := m.RingSystems()
	require.NotEmpty(t, systems)
	return systems[0], m.Rings()
}

func TestNameBenzene(t *testing.T) {
	m := buildBenzene(t)
	rs, rings := ringSystemOf(t, m)
	n := ringname.NameRingSystem(rs, rings, m, defaultStubTable())
	require.Equal(t, "benzene", n.Base)
	require.Len(t, n.Locants, 6)
}

func TestNamePyridine(t *testing.T) {
	m := buildPyridine(t)
	rs, rings := ringSystemOf(t, m)
	n := ringname.NameRingSystem(rs, rings, m, defaultStubTable())
	require.Equal(t, "pyridine", n.Base)
	require.Equal(t, "N", n.Heteroatoms[0])
}

func TestNameFuran(t *testing.T) {
	m := buildFuran(t)
	rs, rings := ringSystemOf(t, m)
	n := ringname.NameRingSystem(rs, rings, m, defaultStubTable())
	require.Equal(t, "furan", n.Base)
}

func TestNameCyclohexane(t *testing.T) {
	m := buildCyclohexane(t)
	rs, rings := ringSystemOf(t, m)
	n := ringname.NameRingSystem(rs, rings, m, defaultStubTable())
	require.Equal(t, "cyclohexane", n.Base)
}

func TestNameCyclohexene(t *testing.T) {
	m := buildCyclohexene(t)
	rs, rings := ringSystemOf(t, m)
	n := ringname.NameRingSystem(rs, rings, m, defaultStubTable())
	require.Equal(t, "cyclohexene", n.Base)
}

func TestNameNaphthalene(t *testing.T) {
	m := buildNaphthalene(t)
	rs, rings := ringSystemOf(t, m)
	n := ringname.NameRingSystem(rs, rings, m, defaultStubTable())
	require.Equal(t, "naphthalene", n.Base)
	require.Len(t, n.Locants, 10)
}

func TestNameQuinoline(t *testing.T) {
	m := buildQuinoline(t)
	rs, rings := ringSystemOf(t, m)
	n := ringname.NameRingSystem(rs, rings, m, defaultStubTable())
	require.Equal(t, "quinoline", n.Base)
}
