package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/platform/config"
)

// configDir writes the named YAML files into a temp dir.
func configDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}

func TestLoad_RepositoryProfiles(t *testing.T) {
	t.Chdir("../../..")

	local, err := config.Load("local")
	require.NoError(t, err)
	assert.Equal(t, "debug", local.Log.Level)
	assert.Equal(t, config.FormatText, local.Log.Format)
	assert.Equal(t, config.StorageSQLite, local.Storage.Driver)
	assert.True(t, local.Dispatch.Strict)
	assert.False(t, local.Telemetry.Enabled)
	// Inherited from base.yaml.
	assert.Equal(t, "0.0.0.0", local.Server.Host)
	assert.Equal(t, config.ModeDirect, local.Client.Mode)
	assert.Equal(t, 5, local.Client.CircuitBreaker.MaxFailures)

	prod, err := config.Load("prod")
	require.NoError(t, err)
	assert.Equal(t, config.ModeJetpack, prod.Client.Mode)
	assert.Equal(t, 20*time.Second, prod.Client.Timeout)
	assert.Equal(t, "otlp", prod.Telemetry.Exporter)
	assert.NotEmpty(t, prod.Telemetry.Endpoint)
	assert.Equal(t, config.StoragePostgres, prod.Storage.Driver)
	assert.Equal(t, config.SettingsS3, prod.Settings.Driver)
	assert.True(t, prod.Stores.SerializeScopes)

	_, err = config.Load("dev")
	require.NoError(t, err)
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Parallel()

	dir := configDir(t, map[string]string{
		"base.yaml": "log:\n  format: text\n",
		"ci.yaml":   "settings:\n  driver: memory\n",
	})

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.FormatText, cfg.Log.Format)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, config.SettingsMemory, cfg.Settings.Driver)
	assert.Equal(t, "storesync", cfg.Telemetry.ServiceName)
}

func TestLoad_ProfileBeatsBase(t *testing.T) {
	t.Parallel()

	dir := configDir(t, map[string]string{
		"base.yaml":    "client:\n  timeout: 30s\n  site_id: 1\n",
		"staging.yaml": "client:\n  timeout: 5s\n",
	})

	cfg, err := config.Load("staging", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, int64(1), cfg.Client.SiteID)
}

func TestLoad_Environment(t *testing.T) {
	dir := configDir(t, map[string]string{
		"base.yaml": "server:\n  port: 8080\n",
		"ci.yaml":   "",
	})

	t.Setenv("STORESYNC_SERVER_PORT", "9090")
	t.Setenv("STORESYNC_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("STORESYNC_CLIENT_CIRCUIT_BREAKER_MAX_FAILURES", "7")
	t.Setenv("STORESYNC_CLIENT_RATE_LIMIT_BURST_SIZE", "3")
	t.Setenv("STORESYNC_CLIENT_AUTH_TOKEN", "wpcom-token")
	t.Setenv("STORESYNC_CLIENT_SITE_ID", "42")
	t.Setenv("STORESYNC_STORAGE_SQL_DSN", "/tmp/override.db")
	t.Setenv("STORESYNC_STORES_SERIALIZE_SCOPES", "true")
	t.Setenv("APP_SERVER_PORT", "1")

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 7, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, 3, cfg.Client.RateLimit.BurstSize)
	assert.Equal(t, "wpcom-token", cfg.Client.AuthToken)
	assert.Equal(t, int64(42), cfg.Client.SiteID)
	assert.Equal(t, "/tmp/override.db", cfg.Storage.SQL.DSN)
	assert.True(t, cfg.Stores.SerializeScopes)
}

func TestLoad_OverrideBeatsEnvironment(t *testing.T) {
	dir := configDir(t, map[string]string{"base.yaml": "", "ci.yaml": ""})
	t.Setenv("STORESYNC_LOG_LEVEL", "warn")

	cfg, err := config.Load("ci", config.WithConfigDir(dir), config.WithOverride("log.level", "debug"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigDirFromEnvironment(t *testing.T) {
	dir := configDir(t, map[string]string{
		"base.yaml": "",
		"edge.yaml": "server:\n  port: 7070\n",
	})
	t.Setenv(config.ConfigDirEnv, dir)

	cfg, err := config.Load("edge")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile string
		files   map[string]string
		wantErr string
	}{
		{"empty profile", "  ", nil, "must not be empty"},
		{"parent traversal", "../etc", nil, "bare name"},
		{"backslash", `a\b`, nil, "bare name"},
		{"slash", "a/b", nil, "bare name"},
		{"missing base", "ci", map[string]string{"ci.yaml": ""}, "base.yaml"},
		{"missing profile", "qa", map[string]string{"base.yaml": ""}, "qa.yaml"},
		{"bad yaml", "ci", map[string]string{"base.yaml": "server: [", "ci.yaml": ""}, "base.yaml"},
		{"undecodable", "ci", map[string]string{"base.yaml": "server:\n  port: eighty\n", "ci.yaml": ""}, "decoding"},
		{"invalid values", "ci", map[string]string{"base.yaml": "", "ci.yaml": "storage:\n  driver: sqlite\n"}, "storage.sql.dsn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tt.profile, config.WithConfigDir(configDir(t, tt.files)))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
