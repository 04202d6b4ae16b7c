package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := chdirTemp(t)
	for _, key := range []string{"HTTP_ADDR", "ASSET_DIR", "ASSET_BASE_URL", "TABLE_IDLE_TIMEOUT", "ENVIRONMENT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "/static/cards", cfg.AssetBaseURL)
	assert.Equal(t, 30*time.Minute, cfg.TableIdleTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assetDir, err := filepath.EvalSymlinks(filepath.Dir(cfg.AssetDir))
	require.NoError(t, err)
	assert.Equal(t, resolved, assetDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("TABLE_IDLE_TIMEOUT", "5m")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("APP_ID", "app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.TableIdleTimeout)
	assert.False(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.ValidateDiscord())
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	// godotenv never overrides variables that are already present
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TABLE_IDLE_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "TABLE_IDLE_TIMEOUT")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		discord bool
		web     bool
	}{
		{
			name:    "complete",
			cfg:     Config{Token: "t", AppID: "a", HTTPAddr: ":8080", AssetBaseURL: "/static/cards"},
			discord: true,
			web:     true,
		},
		{
			name:    "no discord token",
			cfg:     Config{AppID: "a", HTTPAddr: ":8080", AssetBaseURL: "/static/cards"},
			discord: false,
			web:     true,
		},
		{
			name:    "no http addr",
			cfg:     Config{Token: "t", AppID: "a", AssetBaseURL: "/static/cards"},
			discord: true,
			web:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.discord, tc.cfg.ValidateDiscord() == nil)
			assert.Equal(t, tc.web, tc.cfg.ValidateWeb() == nil)
		})
	}
}
