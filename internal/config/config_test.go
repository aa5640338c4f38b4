package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults apply when the file is missing", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Empty(t, conf.LogFile)
		assert.Zero(t, conf.Seed)
		assert.Zero(t, conf.Mode)
		assert.Equal(t, "local", conf.Scoreboard.Name)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Values are read from the file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, `
log-level: debug
log-file: game.log
seed: 42
mode: 4
scoreboard:
  name: office
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
		assert.Equal(t, uint64(42), conf.Seed)
		assert.Equal(t, 4, conf.Mode)
		assert.Equal(t, "office", conf.Scoreboard.Name)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an environment variable for the same key
		path := writeConfig(t, "seed: 1\n")
		t.Setenv("SEED", "9")

		// When: loading
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, uint64(9), conf.Seed)
	})

	t.Run("Out of range mode is rejected", func(t *testing.T) {
		path := writeConfig(t, "mode: 7\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mode must be between 0 and 4")
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := writeConfig(t, "seed: [not a number\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
