package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "FOLIO_ADDR", "HTTPS_CERT_FILE", "HTTPS_KEY_FILE", "GZIP_MODE", "LOG_LEVEL",
		"JWT_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD_HASH", "PROBE_CONCURRENCY", "PROBE_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, DefaultProbeConcurrency, cfg.ProbeConcurrency)
	assert.Equal(t, DefaultProbeTimeout, cfg.ProbeTimeout)
	assert.False(t, cfg.HasTLS())
	assert.ErrorIs(t, cfg.RequireServer(), MissingDatabaseURLError)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/folio")
	t.Setenv("FOLIO_ADDR", ":8080")
	t.Setenv("HTTPS_CERT_FILE", "cert.pem")
	t.Setenv("HTTPS_KEY_FILE", "key.pem")
	t.Setenv("GZIP_MODE", "5")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("PROBE_CONCURRENCY", "8")
	t.Setenv("PROBE_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.HasTLS())
	assert.Equal(t, 5, cfg.GzipMode)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "owner", cfg.AdminUsername)
	assert.Equal(t, 8, cfg.ProbeConcurrency)
	assert.Equal(t, 3*time.Second, cfg.ProbeTimeout)
	assert.ErrorIs(t, cfg.RequireServer(), MissingJWTSecretError)

	t.Setenv("JWT_SECRET", "secret")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.NoError(t, cfg.RequireServer())
}

func TestFromEnvInvalid(t *testing.T) {
	for key, value := range map[string]string{
		"LOG_LEVEL":         "loud",
		"GZIP_MODE":         "fast",
		"PROBE_CONCURRENCY": "0",
		"PROBE_TIMEOUT":     "soon",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DATABASE_URL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://from-file", cfg.DatabaseURL)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
