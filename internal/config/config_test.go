package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/WelcomerTeam/Discord-Resources/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "https://discord.com/api", cfg.APIEndpoint)
	assert.Equal(t, "v10", cfg.APIVersion)
	assert.Equal(t, "https://cdn.discordapp.com", cfg.CDNHost)
	assert.Equal(t, "https://media.discordapp.net", cfg.MediaHost)
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, config.TransportHTTP, cfg.Transport)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "Bot abc")
	t.Setenv("DISCORD_TRANSPORT", "FastHTTP")
	t.Setenv("DISCORD_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "Bot abc", cfg.Token)
	assert.Equal(t, config.TransportFastHTTP, cfg.Transport)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.NoError(t, cfg.RequireToken())
}

func TestParseErrors(t *testing.T) {
	t.Run("transport", func(t *testing.T) {
		t.Setenv("DISCORD_TRANSPORT", "carrier-pigeon")

		_, err := config.Parse()
		assert.ErrorIs(t, err, config.ErrInvalidTransport)
	})

	t.Run("endpoint", func(t *testing.T) {
		t.Setenv("DISCORD_CDN_HOST", "cdn.discordapp.com")

		_, err := config.Parse()
		assert.ErrorIs(t, err, config.ErrInvalidEndpoint)
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("DISCORD_TIMEOUT", "soon")

		_, err := config.Parse()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})
}

func TestRequireToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.RequireToken(), config.ErrMissingToken)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DISCORD_API_VERSION=v9\n"), 0o600))

	// Registers cleanup of the variable godotenv sets.
	t.Setenv("DISCORD_API_VERSION", "")
	require.NoError(t, os.Unsetenv("DISCORD_API_VERSION"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "v9", cfg.APIVersion)
}

func TestLoadMissingDotenv(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
