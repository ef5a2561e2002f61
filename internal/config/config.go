package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "AQUAPURE_"

type Config struct {
	Primary       Primary             `koanf:"primary"`
	Server        ServerConfig        `koanf:"server"`
	Database      DatabaseConfig      `koanf:"database"`
	ObjectStorage ObjectStorageConfig `koanf:"object_storage"`
	Retry         RetryConfig         `koanf:"retry"`
	Cache         CacheConfig         `koanf:"cache"`
	Logger        LoggerConfig        `koanf:"logger"`
	Worker        WorkerConfig        `koanf:"worker"`
}

type WorkerConfig struct {
	Interval  time.Duration `koanf:"interval" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// ObjectStorageConfig points at the blob store. PublicURL is the host embedded
// in presigned links and falls back to BaseURL when empty.
type ObjectStorageConfig struct {
	BaseURL        string        `koanf:"base_url" validate:"required,url"`
	PublicURL      string        `koanf:"public_url" validate:"omitempty,url"`
	Bucket         string        `koanf:"bucket" validate:"required"`
	AccessToken    string        `koanf:"access_token"`
	SigningSecret  string        `koanf:"signing_secret" validate:"required"`
	Timeout        time.Duration `koanf:"timeout" validate:"required"`
	MaxUploadBytes int64         `koanf:"max_upload_bytes" validate:"required"`
	PresignExpiry  time.Duration `koanf:"presign_expiry" validate:"required"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries uint64        `koanf:"max_retries"`
}

// CacheConfig sizes the read-through caches. A Size of zero disables caching.
type CacheConfig struct {
	Size int           `koanf:"size" validate:"gte=0"`
	TTL  time.Duration `koanf:"ttl" validate:"gte=0"`
}

type LoggerConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                     "development",
		"server.port":                     "8080",
		"server.read_timeout":             "15s",
		"server.write_timeout":            "30s",
		"server.idle_timeout":             "60s",
		"server.request_timeout":          "25s",
		"database.port":                   5432,
		"database.ssl_mode":               "disable",
		"database.max_open_conns":         10,
		"database.max_idle_conns":         2,
		"database.conn_max_lifetime":      "1h",
		"database.conn_max_idle_time":     "30m",
		"object_storage.bucket":           "images",
		"object_storage.timeout":          "10s",
		"object_storage.max_upload_bytes": 10 << 20,
		"object_storage.presign_expiry":   "168h",
		"retry.base_delay":                "200ms",
		"retry.max_retries":               3,
		"cache.size":                      256,
		"cache.ttl":                       "5m",
		"worker.interval":                 "30s",
		"worker.batch_size":               50,
		"logger.level":                    "info",
	}
}

// LoadConfig reads defaults, then AQUAPURE_ prefixed environment variables.
// A double underscore separates nesting levels: AQUAPURE_DATABASE__HOST.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default config", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
