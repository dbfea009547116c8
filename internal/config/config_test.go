package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whanau.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, `
[server]
port = "9090"

[database]
url = "postgres://localhost/whanau"

[kinship]
max_depth = 20
ancestor_cache = true
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, DefaultRateLimit, cfg.Server.RateLimit)
		assert.Equal(t, "postgres://localhost/whanau", cfg.Database.URL)
		assert.Equal(t, int32(DefaultMaxConns), cfg.Database.MaxConns)
		assert.Equal(t, 20, cfg.Kinship.MaxDepth)
		assert.True(t, cfg.Kinship.AncestorCache)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "not valid toml {{{"))
		assert.Error(t, err)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Load(writeFile(t, "[server]\nprot = \"1\"\n"))
		assert.ErrorContains(t, err, "unknown keys")
	})

	t.Run("invalid depth", func(t *testing.T) {
		_, err := Load(writeFile(t, "[kinship]\nmax_depth = 0\n"))
		assert.ErrorContains(t, err, "max_depth")
	})
}

func TestExists(t *testing.T) {
	assert.True(t, Exists(writeFile(t, "")))
	assert.False(t, Exists(t.TempDir()))
	assert.False(t, Exists(filepath.Join(t.TempDir(), "missing")))
}
