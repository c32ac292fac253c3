package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pocketshelf/api"
	"pocketshelf/catalog"
	"pocketshelf/config"
	"pocketshelf/normalizer"
)

func newServeCmd() *cobra.Command {
	var (
		port     string
		source   string
		useCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog page, the converter and the JSON API",
		Long: `Serve loads the catalog once and serves:

  GET  /                       catalog page (?status= or ?tag=)
  GET  /normalize              CSV converter
  GET  /api/catalog            filtered records as JSON
  GET  /api/tags               derived tags and statuses
  POST /api/normalize          convert CSV to JSON
  POST /api/normalize/publish  convert and upload to S3
  GET  /api/health`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = cfg.Port
			}
			if source == "" {
				source = cfg.CatalogSource
			}
			return runServe(cmd.Context(), port, source, useCache)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (default $PORT or "+config.DefaultPort+")")
	cmd.Flags().StringVarP(&source, "source", "s", "", "Catalog location: file path, http(s) URL or s3://bucket/key (default $CATALOG_SOURCE)")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Cache conversions in redis even when REDIS_ADDR is not set")
	return cmd
}

func runServe(ctx context.Context, port, location string, useCache bool) error {
	s3c := openS3(ctx, location)

	deps := api.Deps{
		Normalizer: normalizer.New(normalizer.WithLogger(logger)),
		Log:        logger,
	}

	src, err := catalogSource(location, s3c)
	if err != nil {
		return err
	}
	loadCtx, cancel := context.WithTimeout(ctx, config.CatalogFetchTimeout)
	deps.Catalog, deps.LoadErr = catalog.Load(loadCtx, src)
	cancel()
	if deps.LoadErr != nil {
		// The page shows the diagnostic; the server still starts.
		logger.Error().Err(deps.LoadErr).Msg("catalog load failed")
	} else {
		logger.Info().Str("source", src.String()).Int("records", deps.Catalog.Len()).Msg("catalog loaded")
	}

	if cache := openCache(useCache); cache != nil {
		defer cache.Close()
		deps.Cache = cache
	}

	if s3c != nil && cfg.S3.Enabled() {
		deps.Publisher = s3c
		deps.PublishBucket = cfg.S3.Bucket
		deps.PublishKey = cfg.S3.Key(cfg.S3.CatalogKey)
	}

	server := api.NewServer(port, deps)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
