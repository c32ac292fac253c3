package config

import "time"

// Server Constants
const (
	// DefaultPort is the HTTP port used when PORT is not set
	DefaultPort = "8080"

	// ShutdownTimeout bounds graceful HTTP shutdown
	ShutdownTimeout = 10 * time.Second
)

// Catalog Constants
const (
	// DefaultCatalogSource is the catalog document loaded when CATALOG_SOURCE is not set
	DefaultCatalogSource = "data.json"

	// CatalogFetchTimeout bounds the single catalog fetch
	CatalogFetchTimeout = 30 * time.Second

	// DefaultCatalogKey is the S3 object key the normalizer publishes to
	DefaultCatalogKey = "data.json"
)

// Cache Constants
const (
	// DefaultRedisAddr is used when serve --cache forces caching and REDIS_ADDR is unset
	DefaultRedisAddr = "localhost:6379"

	// DefaultCacheTTL is how long a normalized result stays cached
	DefaultCacheTTL = 24 * time.Hour

	// CacheKeyPrefix namespaces normalizer entries in redis
	CacheKeyPrefix = "pocketshelf:normalize:"
)

// Clipboard Constants
const (
	// CopyConfirmDuration is how long the "copied" indicator stays visible
	CopyConfirmDuration = 3 * time.Second
)
