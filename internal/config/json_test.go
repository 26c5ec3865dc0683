package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_dsn":    "json.db",
		"device_key_path": "json.key",
	})

	t.Run("loads from -config flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "json.db", cfg.DatabaseDSN)
		assert.Equal(t, "json.key", cfg.DeviceKeyPath)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "regvault.db", cfg.DatabaseDSN)
	})

	t.Run("empty JSON fields leave defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"postgres_dsn": "postgres://directory",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "regvault.db", cfg.DatabaseDSN)
		assert.Equal(t, "regvault.key", cfg.DeviceKeyPath)
		assert.Equal(t, "postgres://directory", cfg.PostgresDSN)
	})

	t.Run("lockout policy as duration string", func(t *testing.T) {
		policy := writeTempJSON(t, dir, "policy.json", map[string]any{
			"max_login_attempts": 3,
			"lockout_duration":   "10m",
		})
		os.Args = []string{"testbin", "-config", policy}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, 3, cfg.MaxLoginAttempts)
		assert.Equal(t, 10*time.Minute, cfg.LockoutDuration)
	})
}
