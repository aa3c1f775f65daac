package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktrail/ranktrail/config"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAMLOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	yamlBody := `
walk:
  walk_length: 40
  num_walks: 5
holdout:
  train_size: 0.7
  k: 5
  k_index: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))

	cfg, err := config.LoadFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Walk.WalkLength)
	assert.Equal(t, 5, cfg.Walk.NumWalks)
	// fields left unset in the YAML fall through to defaults.
	assert.Equal(t, 1.0, cfg.Walk.ReturnWeight)
	assert.Equal(t, 0.7, cfg.Holdout.TrainSize)
	assert.Equal(t, 5, cfg.Holdout.K)
}

func TestValidateRejectsOutOfRangeKIndex(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Holdout.K = 3
	cfg.Holdout.KIndex = 3
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveWalkLength(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Walk.WalkLength = 0
	assert.Error(t, cfg.Validate())
}

func TestAssemblyOptionsProducesExpectedCount(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := cfg.AssemblyOptions()
	assert.Len(t, opts, 6)
}
