package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AQUAPURE_DATABASE__HOST", "localhost")
	t.Setenv("AQUAPURE_DATABASE__USER", "aquapure")
	t.Setenv("AQUAPURE_DATABASE__PASSWORD", "secret")
	t.Setenv("AQUAPURE_DATABASE__NAME", "aquapure")
	t.Setenv("AQUAPURE_OBJECT_STORAGE__BASE_URL", "http://localhost:9000")
	t.Setenv("AQUAPURE_OBJECT_STORAGE__SIGNING_SECRET", "signing-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "images", cfg.ObjectStorage.Bucket)
	assert.Equal(t, int64(10<<20), cfg.ObjectStorage.MaxUploadBytes)
	assert.Equal(t, 7*24*time.Hour, cfg.ObjectStorage.PresignExpiry)
	assert.Equal(t, 200*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, uint64(3), cfg.Retry.MaxRetries)
	assert.Equal(t, 256, cfg.Cache.Size)
	assert.Equal(t, 30*time.Second, cfg.Worker.Interval)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AQUAPURE_SERVER__PORT", "9090")
	t.Setenv("AQUAPURE_CACHE__SIZE", "0")
	t.Setenv("AQUAPURE_WORKER__INTERVAL", "2m")
	t.Setenv("AQUAPURE_LOGGER__LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, 2*time.Minute, cfg.Worker.Interval)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AQUAPURE_DATABASE__HOST", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AQUAPURE_LOGGER__LEVEL", "verbose")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestPgxConfig(t *testing.T) {
	cfg := DatabaseConfig{
		Host:            "db.internal",
		Port:            5433,
		User:            "u",
		Password:        "p",
		Name:            "catalog",
		SSLMode:         "disable",
		MaxOpenConns:    8,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute,
	}

	pgxCfg, err := cfg.PgxConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pgxCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pgxCfg.ConnConfig.Port)
	assert.Equal(t, "catalog", pgxCfg.ConnConfig.Database)
	assert.Equal(t, int32(8), pgxCfg.MaxConns)
	assert.Equal(t, int32(2), pgxCfg.MinConns)
}
