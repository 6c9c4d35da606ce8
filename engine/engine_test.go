package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/RxnWeaver/iupac/common"
	"github.com/RxnWeaver/iupac/engine"
	"github.com/RxnWeaver/iupac/metrics"
	"github.com/RxnWeaver/iupac/molecule"
	"github.com/RxnWeaver/iupac/morpheme"
)

func loadService(t *testing.T) *morpheme.Service {
	t.Helper()
	s, err := morpheme.Load("../testdata/morpheme/tables.yaml")
	require.NoError(t, err)
	return s
}

func addAtom(t *testing.T, m *molecule.Molecule, symbol string, id int, hCount uint8, aromatic bool) {
	t.Helper()
	ab := m.NewAtomBuilder()
	_, err := ab.New(symbol, id)
	require.NoError(t, err)
	ab.HydrogenCount(hCount)
	ab.Aromatic(aromatic)
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

// buildDMSO builds dimethyl sulfoxide: C-S(=O)-C.
func buildDMSO(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	addAtom(t, m, "C", 0, 3, false)
	addAtom(t, m, "S", 1, 0, false)
	addAtom(t, m, "C", 2, 3, false)
	addAtom(t, m, "O", 3, 0, false)
	addBond(t, m, 0, 0, 1, common.BondTypeSingle)
	addBond(t, m, 1, 1, 2, common.BondTypeSingle)
	addBond(t, m, 2, 1, 3, common.BondTypeDouble)
	require.NoError(t, m.Freeze())
	return m
}

// buildDiphenylSulfone builds two benzene rings bridged by a sulfone:
// c1ccccc1-S(=O)(=O)-c2ccccc2.
func buildDiphenylSulfone(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for i := 0; i < 6; i++ {
		h := uint8(1)
		if i == 0 {
			h = 0
		}
		addAtom(t, m, "C", i, h, true)
	}
	for i := 6; i < 12; i++ {
		h := uint8(1)
		if i == 6 {
			h = 0
		}
		addAtom(t, m, "C", i, h, true)
	}
	addAtom(t, m, "S", 12, 0, false)
	addAtom(t, m, "O", 13, 0, false)
	addAtom(t, m, "O", 14, 0, false)

	bid := 0
	ring1 := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}}
	for _, e := range ring1 {
		addBond(t, m, bid, e[0], e[1], common.BondTypeAromatic)
		bid++
	}
	ring2 := [][2]int{{6, 7}, {7, 8}, {8, 9}, {9, 10}, {10, 11}, {11, 6}}
	for _, e := range ring2 {
		addBond(t, m, bid, e[0], e[1], common.BondTypeAromatic)
		bid++
	}
	addBond(t, m, bid, 0, 12, common.BondTypeSingle)
	bid++
	addBond(t, m, bid, 6, 12, common.BondTypeSingle)
	bid++
	addBond(t, m, bid, 12, 13, common.BondTypeDouble)
	bid++
	addBond(t, m, bid, 12, 14, common.BondTypeDouble)

	require.NoError(t, m.Freeze())
	return m
}

func TestPipelineCyclohexane(t *testing.T) {
	svc := loadService(t)
	m := buildCyclohexane(t)
	p := engine.New(svc)
	result := p.Run(m)
	require.Equal(t, "cyclohexane", result.Name)
	require.Greater(t, result.Confidence, 0.0)
}

func TestPipelineNaphthalene(t *testing.T) {
	svc := loadService(t)
	m := buildNaphthalene(t)
	p := engine.New(svc)
	result := p.Run(m)
	require.Equal(t, "naphthalene", result.Name)
}

func TestPipelineDMSO(t *testing.T) {
	svc := loadService(t)
	m := buildDMSO(t)
	p := engine.New(svc)
	result := p.Run(m)
	require.Equal(t, "methylsulfinylmethane", result.Name)
	require.Equal(t, "functional-class", result.Method)
}

func TestPipelineDiphenylSulfone(t *testing.T) {
	svc := loadService(t)
	m := buildDiphenylSulfone(t)
	p := engine.New(svc)
	result := p.Run(m)
	require.Equal(t, "(phenylsulfonyl)benzene", result.Name)
}

func TestPipelineRecordsNamingMetrics(t *testing.T) {
	svc := loadService(t)
	m := buildCyclohexane(t)
	reg := prometheus.NewRegistry()
	mt, err := metrics.New(reg)
	require.NoError(t, err)

	p := engine.New(svc)
	p.SetMetrics(mt)
	p.Run(m)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawNamingTotal bool
	for _, f := range families {
		if f.GetName() == "iupac_namer_naming_total" {
			sawNamingTotal = true
			var total float64
			for _, metric := range f.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
			require.Equal(t, float64(1), total)
		}
	}
	require.True(t, sawNamingTotal)
}

func TestPipelineTraceSnapshotContinuity(t *testing.T) {
	svc := loadService(t)
	m := buildCyclohexane(t)
	p := engine.New(svc)
	result := p.Run(m)
	for i := 1; i < len(result.Trace); i++ {
		prev, cur := result.Trace[i-1], result.Trace[i]
		if prev.Conflict == nil && cur.Conflict == nil {
			require.Equal(t, prev.After, cur.Before)
		}
	}
}
