package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RxnWeaver/iupac/graph"
	"github.com/RxnWeaver/iupac/ringname"
)

const validOptionsYAML = `
morpheme:
  data_path: "testdata/morpheme/tables.yaml"
ring_analysis:
  max_ring_size: 12
  enable_bfs_supplement: true
  max_von_baeyer_bridges: 3
log:
  level: "info"
  format: "json"
`

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
	t.Cleanup(func() {
		for k := range vars {
			os.Unsetenv(k)
		}
	})
}

func TestLoadValidConfig(t *testing.T) {
	path := createTempConfigFile(t, validOptionsYAML)
	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/morpheme/tables.yaml", o.Morpheme.DataPath)
	assert.Equal(t, 12, o.RingAnalysis.MaxRingSize)
	assert.True(t, o.RingAnalysis.EnableBFSSupplement)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := createTempConfigFile(t, "morpheme:\n  data_path: \"tables.yaml\"\n")
	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, o.Log.Level)
	assert.Equal(t, DefaultLogFormat, o.Log.Format)
	assert.Equal(t, DefaultMaxRingSize, o.RingAnalysis.MaxRingSize)
}

func TestLoadValidationFailure(t *testing.T) {
	path := createTempConfigFile(t, "morpheme:\n  data_path: \"tables.yaml\"\nring_analysis:\n  max_ring_size: 2\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	path := createTempConfigFile(t, validOptionsYAML)
	setEnvVars(t, map[string]string{"IUPAC_LOG_LEVEL": "debug"})
	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", o.Log.Level)
}

func TestLoadFromEnvNoFile(t *testing.T) {
	setEnvVars(t, map[string]string{
		"IUPAC_MORPHEME_DATA_PATH": "tables.yaml",
	})
	o, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "tables.yaml", o.Morpheme.DataPath)
}

func TestMustLoadPanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}

func TestNewHasValidDefaults(t *testing.T) {
	o := New()
	require.NoError(t, o.Validate())
}

func TestApplyPushesRingAnalysisBounds(t *testing.T) {
	o := New()
	o.RingAnalysis.MaxRingSize = 9
	o.RingAnalysis.MaxVonBaeyerBridges = 4
	o.RingAnalysis.EnableBFSSupplement = false
	Apply(o)
	t.Cleanup(func() { Apply(New()) })

	assert.Equal(t, 9, graph.MaxSSSRRingSize)
	assert.Equal(t, 4, ringname.MaxVonBaeyerBridges)
	assert.False(t, graph.EnableBFSSupplement)
}
