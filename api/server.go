package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pocketshelf/catalog"
	"pocketshelf/common"
	"pocketshelf/normalizer"
)

// Publisher uploads a normalized catalog document.
type Publisher interface {
	PutJSON(ctx context.Context, bucket, key string, body []byte) error
	Exists(ctx context.Context, bucket, key string) (bool, error)
}

// Deps are the collaborators the handlers use. Cache and Publisher may be nil.
type Deps struct {
	// Catalog is nil when the load failed; LoadErr then holds the failure.
	Catalog *catalog.Catalog
	LoadErr error

	Normalizer *normalizer.Normalizer
	Cache      common.Cache

	Publisher     Publisher
	PublishBucket string
	PublishKey    string

	Log zerolog.Logger
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Normalizer == nil {
		deps.Normalizer = normalizer.New(normalizer.WithLogger(deps.Log))
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(deps.Log))

	RegisterHealthRoutes(r, deps)
	RegisterCatalogRoutes(r, deps)
	RegisterNormalizeRoutes(r, deps)
	return r
}

const requestIDKey = "request_id"

// requestID tags every request with an id, reusing the caller's X-Request-ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Server is the HTTP server for the catalog page, converter and JSON API.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
}

// NewServer creates a server on port.
func NewServer(port string, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: deps.Log,
	}
}

// ListenAndServe blocks until the server stops. A graceful shutdown returns nil.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("starting http server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}
