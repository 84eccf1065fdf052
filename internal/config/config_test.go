package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"LEVELUP_DB_PATH", "LEVELUP_SESSION_FILE", "LEVELUP_SESSION_TTL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	wantDB, err := storage.DefaultDBPath()
	require.NoError(t, err)
	require.Equal(t, wantDB, cfg.DBPath)
	require.Contains(t, cfg.SessionFile, ".levelup-session")
	require.Equal(t, 168*time.Hour, cfg.SessionTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LEVELUP_DB_PATH", "/tmp/custom.db")
	t.Setenv("LEVELUP_SESSION_FILE", "/tmp/custom-session")
	t.Setenv("LEVELUP_SESSION_TTL", "24h")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.db", cfg.DBPath)
	require.Equal(t, "/tmp/custom-session", cfg.SessionFile)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
