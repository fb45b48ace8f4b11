package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "data/banned_pesticides.json", cfg.Data.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Zero(t, cfg.Batch.RatePerSecond, "throttling is off by default")
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Path = "/srv/agrisevak/banned_pesticides.json"
	cfg.Batch.RatePerSecond = 25

	raw, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, *cfg, decoded)
}
