package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envMap(nil))

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultCatalogSource, cfg.CatalogSource)
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, DefaultCatalogKey, cfg.S3.CatalogKey)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"PORT":              "9000",
		"CATALOG_SOURCE":    "s3://bucket/data.json",
		"S3_BUCKET":         "shelf",
		"S3_PREFIX":         "/exports/",
		"S3_USE_PATH_STYLE": "TRUE",
		"REDIS_ADDR":        "redis:6379",
		"REDIS_DB":          "2",
		"CACHE_TTL_SECONDS": "60",
	}))

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3://bucket/data.json", cfg.CatalogSource)
	assert.True(t, cfg.S3.Enabled())
	assert.True(t, cfg.S3.UsePathStyle)
	assert.Equal(t, "exports/data.json", cfg.S3.Key(cfg.S3.CatalogKey))
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestFromEnvIgnoresInvalidNumbers(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"REDIS_DB":          "x",
		"CACHE_TTL_SECONDS": "-5",
	}))

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
}
