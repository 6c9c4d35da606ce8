package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/RxnWeaver/iupac/metrics"
)

func TestNewRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	require.NotNil(t, m)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestNewRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestRecordNamingUpdatesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	m.RecordNaming(10*time.Millisecond, 5, 1, false)
	m.RecordNaming(20*time.Millisecond, 0, 3, true)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawNamingTotal, sawFallbackTotal, sawConflictsTotal bool
	var namingSampleSum float64
	for _, f := range families {
		switch f.GetName() {
		case "iupac_namer_naming_total":
			sawNamingTotal = true
			for _, metric := range f.GetMetric() {
				namingSampleSum += metric.GetCounter().GetValue()
			}
		case "iupac_namer_fallback_total":
			sawFallbackTotal = true
			require.Equal(t, float64(1), f.GetMetric()[0].GetCounter().GetValue())
		case "iupac_namer_conflicts_total":
			sawConflictsTotal = true
			require.Equal(t, float64(4), f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	require.True(t, sawNamingTotal)
	require.True(t, sawFallbackTotal)
	require.True(t, sawConflictsTotal)
	require.Equal(t, float64(2), namingSampleSum)
}

func TestRecordLayerSkippedLabelsByPhase(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	m.RecordLayerSkipped("ring_analysis")
	m.RecordLayerSkipped("ring_analysis")
	m.RecordLayerSkipped("numbering")

	families, err := reg.Gather()
	require.NoError(t, err)

	var skipSeries int
	for _, f := range families {
		if f.GetName() == "iupac_namer_layer_skips_total" {
			skipSeries = len(f.GetMetric())
		}
	}
	require.Equal(t, 2, skipSeries)
}

func TestNoopMetricsDiscardsEverything(t *testing.T) {
	m := metrics.NewNoop()
	require.NotPanics(t, func() {
		m.RecordNaming(time.Second, 10, 2, true)
		m.RecordLayerSkipped("numbering")
	})
}
