package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	setTestEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "recipex.db", cfg.SQLitePath)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 8, cfg.BatchConcurrency)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadConfig(t *testing.T) {
	setTestEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "recipex")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "host=db port=6543 user=recipex password=secret dbname=recipes sslmode=disable", cfg.DSN())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadConfigReadsSecrets(t *testing.T) {
	setTestEnv(t)
	dir := os.Getenv("SECRETS_DIR")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("from-secret\n"), 0644))
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.DBPassword)
}

func TestLoadConfigCI(t *testing.T) {
	setTestEnv(t)
	t.Setenv("CI", "true")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("TEST_DB_PASSWORD", "")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("TEST_DB_PASSWORD", "ci-pass")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ci-pass", cfg.DBPassword)
}

func TestValidateConfig(t *testing.T) {
	setTestEnv(t)

	err := ValidateConfig(&Config{StoreDriver: "mongo", BatchConcurrency: 1})
	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "STORE_DRIVER", vErr.Field)

	err = ValidateConfig(&Config{StoreDriver: DriverFile, BatchConcurrency: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FILE_STORE_PATH: is required")
	assert.Contains(t, err.Error(), "BATCH_CONCURRENCY: must be at least 1")

	assert.NoError(t, ValidateConfig(&Config{StoreDriver: DriverFile, FilePath: "data", BatchConcurrency: 2}))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "PRODUCTION")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "staging")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.True(t, IsCI())
}
