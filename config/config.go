package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration assembled from .env and the environment.
type Config struct {
	Port          string
	CatalogSource string

	S3 S3Settings

	// RedisAddr is empty when caching is disabled
	RedisAddr string
	RedisPass string
	RedisDB   int
	CacheTTL  time.Duration
}

// S3Settings selects the bucket used for catalog sources and publishing.
type S3Settings struct {
	Bucket       string
	Region       string
	Profile      string
	Prefix       string
	UsePathStyle bool
	CatalogKey   string
}

// Enabled reports whether a bucket was configured.
func (s S3Settings) Enabled() bool { return s.Bucket != "" }

// Key joins the configured prefix with name.
func (s S3Settings) Key(name string) string {
	return s.Prefix + name
}

// Load reads .env if present (non-fatal if missing) and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests don't touch the process environment.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Port:          orDefault(getenv("PORT"), DefaultPort),
		CatalogSource: orDefault(strings.TrimSpace(getenv("CATALOG_SOURCE")), DefaultCatalogSource),
		S3: S3Settings{
			Bucket:       strings.TrimSpace(getenv("S3_BUCKET")),
			Region:       strings.TrimSpace(getenv("S3_REGION")),
			Profile:      strings.TrimSpace(getenv("S3_PROFILE")),
			UsePathStyle: strings.EqualFold(strings.TrimSpace(getenv("S3_USE_PATH_STYLE")), "true"),
			CatalogKey:   orDefault(strings.TrimSpace(getenv("S3_CATALOG_KEY")), DefaultCatalogKey),
		},
		RedisAddr: strings.TrimSpace(getenv("REDIS_ADDR")),
		RedisPass: getenv("REDIS_PASS"),
		CacheTTL:  DefaultCacheTTL,
	}

	if prefix := strings.TrimSpace(getenv("S3_PREFIX")); prefix != "" {
		cfg.S3.Prefix = strings.Trim(prefix, "/") + "/"
	}
	if db, err := strconv.Atoi(getenv("REDIS_DB")); err == nil && db >= 0 {
		cfg.RedisDB = db
	}
	if t := getenv("CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.CacheTTL = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
