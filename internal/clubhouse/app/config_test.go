package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable LoadConfig reads for the rest of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT",
		"SHUTDOWN_GRACE_PERIOD", "CORS_ALLOW_ORIGIN", "STORAGE_BACKEND",
		"DATABASE_FILE", "DATABASE_URL", "S3_BUCKET", "S3_REGION",
		"S3_ENDPOINT", "S3_PREFIX", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clubhouse.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "*", cfg.CORSAllowOrigin)
	require.Equal(t, "memory", cfg.Storage.Backend)
	require.Equal(t, "clubhouse.db", cfg.Storage.DatabaseFile)
	require.Equal(t, "registrations/", cfg.Storage.S3.Prefix)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("DATABASE_FILE", "/tmp/club.db")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://club.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.Equal(t, "/tmp/club.db", cfg.Storage.DatabaseFile)
	require.Equal(t, "https://club.example", cfg.CORSAllowOrigin)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeConfig(t, `
env                   = "prod"
port                  = 7000
shutdown_grace_period = "30s"
storage_backend       = "s3"
s3_bucket             = "members"
s3_endpoint           = "http://minio:9000"
`))
	// Environment wins over the file.
	t.Setenv("PORT", "7001")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, 7001, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "s3", cfg.Storage.Backend)
	require.Equal(t, "members", cfg.Storage.S3.Bucket)
	require.Equal(t, "http://minio:9000", cfg.Storage.S3.Endpoint)

	// Attributes absent from the file keep their defaults.
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "us-east-1", cfg.Storage.S3.Region)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "unknown backend", env: map[string]string{"STORAGE_BACKEND": "redis"}},
		{name: "postgres without url", env: map[string]string{"STORAGE_BACKEND": "postgres"}},
		{name: "s3 without bucket", env: map[string]string{"STORAGE_BACKEND": "s3"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "unknown file attribute", file: `colour = "red"`},
		{name: "malformed file", file: `port = `},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if tc.file != "" {
				t.Setenv("CONFIG_FILE", writeConfig(t, tc.file))
			}

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.hcl"))

		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestValidateWrapsErrInvalidConfig(t *testing.T) {
	cfg := Config{Port: 8080, Storage: StorageConfig{Backend: "etcd"}}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
