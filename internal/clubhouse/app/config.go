package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/memory"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/postgres"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/s3"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/sqlite"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	CORSAllowOrigin     string        // Access-Control-Allow-Origin value (default: *)

	Storage StorageConfig
}

type StorageConfig struct {
	Backend      string // memory, sqlite, postgres or s3 (default: memory)
	DatabaseFile string // sqlite: path to the database file (default: clubhouse.db)
	DatabaseURL  string // postgres: connection string, required for postgres
	S3           s3.Options
}

// fileConfig is the on-disk HCL layout. Every attribute is optional and
// durations are strings ("15s").
type fileConfig struct {
	Env                 string `hcl:"env,optional"`
	LogLevel            string `hcl:"log_level,optional"`
	LogFormat           string `hcl:"log_format,optional"`
	Port                int    `hcl:"port,optional"`
	ShutdownGracePeriod string `hcl:"shutdown_grace_period,optional"`
	CORSAllowOrigin     string `hcl:"cors_allow_origin,optional"`

	StorageBackend    string `hcl:"storage_backend,optional"`
	DatabaseFile      string `hcl:"database_file,optional"`
	DatabaseURL       string `hcl:"database_url,optional"`
	S3Bucket          string `hcl:"s3_bucket,optional"`
	S3Region          string `hcl:"s3_region,optional"`
	S3Endpoint        string `hcl:"s3_endpoint,optional"`
	S3Prefix          string `hcl:"s3_prefix,optional"`
	S3AccessKeyID     string `hcl:"s3_access_key_id,optional"`
	S3SecretAccessKey string `hcl:"s3_secret_access_key,optional"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: "10s",
		CORSAllowOrigin:     "*",
		StorageBackend:      memory.Backend,
		DatabaseFile:        "clubhouse.db",
		S3Region:            "us-east-1",
		S3Prefix:            s3.DefaultPrefix,
	}
}

// LoadConfig builds the configuration from defaults, then the HCL file named
// by CONFIG_FILE (if any), then environment variables.
func LoadConfig() (Config, error) {
	fc := defaultFileConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := decodeConfigFile(path, &fc); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Env:                 getEnvOrDefault("ENV", fc.Env),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", fc.LogLevel),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", fc.LogFormat),
		Port:                getEnvIntOrDefault("PORT", fc.Port),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", parseDurationOr(fc.ShutdownGracePeriod, 10*time.Second)),
		CORSAllowOrigin:     getEnvOrDefault("CORS_ALLOW_ORIGIN", fc.CORSAllowOrigin),
		Storage: StorageConfig{
			Backend:      strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", fc.StorageBackend)),
			DatabaseFile: getEnvOrDefault("DATABASE_FILE", fc.DatabaseFile),
			DatabaseURL:  getEnvOrDefault("DATABASE_URL", fc.DatabaseURL),
			S3: s3.Options{
				Bucket:          getEnvOrDefault("S3_BUCKET", fc.S3Bucket),
				Region:          getEnvOrDefault("S3_REGION", fc.S3Region),
				Endpoint:        getEnvOrDefault("S3_ENDPOINT", fc.S3Endpoint),
				Prefix:          getEnvOrDefault("S3_PREFIX", fc.S3Prefix),
				AccessKeyID:     getEnvOrDefault("S3_ACCESS_KEY_ID", fc.S3AccessKeyID),
				SecretAccessKey: getEnvOrDefault("S3_SECRET_ACCESS_KEY", fc.S3SecretAccessKey),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown backends and backends missing their connection
// settings.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}

	switch c.Storage.Backend {
	case memory.Backend:
	case sqlite.Backend:
		if c.Storage.DatabaseFile == "" {
			return fmt.Errorf("%w: DATABASE_FILE is required for the sqlite backend", ErrInvalidConfig)
		}
	case postgres.Backend:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres backend", ErrInvalidConfig)
		}
	case s3.Backend:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("%w: S3_BUCKET is required for the s3 backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	return nil
}

// decodeConfigFile overlays the attributes set in path onto fc.
func decodeConfigFile(path string, fc *fileConfig) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	if diags := gohcl.DecodeBody(file.Body, nil, fc); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return nil
}

func parseDurationOr(value string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
