package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	// Create a temp config file
	content := `
server:
  host: "127.0.0.1"
  port: 8080

redis:
  addr: "redis:6379"
  password: "secret"
  db: 1

game:
  bot_play_delay: 500
  trick_clear_delay: 1500
  room_timeout: 15
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.BotPlayDelayDuration())
	assert.Equal(t, 1500*time.Millisecond, cfg.Game.TrickClearDelayDuration())
	assert.Equal(t, 15*time.Minute, cfg.Game.RoomTimeoutDuration())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("server:\n  port: 9000\n"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, Default().Game, cfg.Game)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("server: [broken"), 0o600)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}
