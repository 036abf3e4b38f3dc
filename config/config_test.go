package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "manor", cfg.Game.DefaultCase)
	assert.Equal(t, 101, cfg.Game.SuspectBuckets)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Database.DSN, "mode=memory")
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluequest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
game:
  cases_dir: /srv/cases
  suspect_buckets: 7
log:
  level: debug
`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/cases", cfg.Game.CasesDir)
	assert.Equal(t, 7, cfg.Game.SuspectBuckets)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "manor", cfg.Game.DefaultCase)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CLUEQUEST_SERVER_PORT", "7070")
	t.Setenv("CLUEQUEST_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
