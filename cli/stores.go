package cli

import (
	"context"
	"strings"

	"pocketshelf/catalog"
	"pocketshelf/common"
	"pocketshelf/config"
)

// openS3 returns an S3 client when a bucket is configured or location names
// an s3:// object. Failures are logged and leave S3 disabled.
func openS3(ctx context.Context, location string) *common.S3 {
	if !cfg.S3.Enabled() && !strings.HasPrefix(location, "s3://") {
		return nil
	}
	client, err := common.NewS3(ctx, common.S3Config{
		Region:       cfg.S3.Region,
		Profile:      cfg.S3.Profile,
		UsePathStyle: cfg.S3.UsePathStyle,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to init S3 client, S3 disabled")
		return nil
	}
	return client
}

// catalogSource resolves location, passing a nil getter when S3 is off.
func catalogSource(location string, s3c *common.S3) (catalog.Source, error) {
	var store catalog.ObjectGetter
	if s3c != nil {
		store = s3c
	}
	return catalog.OpenSource(location, store)
}

// openCache connects to redis when REDIS_ADDR is set or caching was forced.
// A connection failure disables the cache.
func openCache(force bool) *common.RedisCache {
	addr := cfg.RedisAddr
	if addr == "" {
		if !force {
			return nil
		}
		addr = config.DefaultRedisAddr
	}
	cache, err := common.NewRedisCache(common.CacheConfig{
		Addr:     addr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		Prefix:   config.CacheKeyPrefix,
		TTL:      cfg.CacheTTL,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("normalize cache disabled")
		return nil
	}
	return cache
}
