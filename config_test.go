package visionkit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Vision Board Kit", cfg.Name)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 2*time.Hour, cfg.BoardTTL)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 1600, cfg.MaxImageEdge)
	assert.Equal(t, 6, cfg.ExportsPerMinute)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Error(t, cfg.validate(), "secrets are required")
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visionkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Dream Boards
url: https://dreams.example
board_ttl: 30m
max_image_edge: 1200
admin_password: from-file
session_secret: file-secret
`), 0o644))
	t.Setenv("VISIONKIT_ADMIN_PASSWORD", "from-env")
	t.Setenv("VISIONKIT_EXPORTS_PER_MINUTE", "2")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Dream Boards", cfg.Name)
	assert.Equal(t, "https://dreams.example", cfg.URL)
	assert.Equal(t, 30*time.Minute, cfg.BoardTTL)
	assert.Equal(t, 1200, cfg.MaxImageEdge)
	assert.Equal(t, "from-env", cfg.AdminPassword)
	assert.Equal(t, "file-secret", cfg.SessionSecret)
	assert.Equal(t, 2, cfg.ExportsPerMinute)
	assert.NoError(t, cfg.validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSetupRequiresSecrets(t *testing.T) {
	app := New(SiteConfig{DatabasePath: filepath.Join(t.TempDir(), "db")}, ViewFuncs{})
	err := app.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AdminPassword")
	assert.Contains(t, err.Error(), "SessionSecret")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("loud", false)
	assert.Error(t, err)

	l, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, l)
}
