package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  max: 500\nlog:\n  level: debug\n"), 0o644))

	cfg, err := Load(path, Default("/default/history"))
	require.NoError(t, err)

	assert.Equal(t, "/default/history", cfg.History.Path)
	assert.Equal(t, 500, cfg.History.Max)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default("h"))
	assert.Error(t, err)
}
