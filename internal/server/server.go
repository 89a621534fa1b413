package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/pkg/cache"
	"github.com/dmitrymomot/campaignify/pkg/health"
	"github.com/dmitrymomot/campaignify/pkg/logger"
)

const (
	defaultBodyLimit = 1 << 20

	livenessPath  = "/health/live"
	readinessPath = "/health/ready"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. If nil, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCache caches rewrite results. Without it every request is computed.
func WithCache(l *cache.Loader[campaignify.Result]) Option {
	return func(s *Server) {
		s.cache = l
	}
}

// WithChecker sets the readiness checks served on /health/ready.
func WithChecker(c *health.Checker) Option {
	return func(s *Server) {
		if c != nil {
			s.checker = c
		}
	}
}

// WithBodyLimit bounds request bodies, in bytes. Default: 1MB.
func WithBodyLimit(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.bodyLimit = n
		}
	}
}

// Server serves the rewrite API.
type Server struct {
	engine    *campaignify.Campaignifier
	cache     *cache.Loader[campaignify.Result]
	checker   *health.Checker
	logger    *slog.Logger
	bodyLimit int64
}

// New creates a Server around engine.
func New(engine *campaignify.Campaignifier, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    logger.NewNope(),
		bodyLimit: defaultBodyLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.checker == nil {
		s.checker = health.NewChecker(nil)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, RequestLogger(s.logger), Recoverer(s.logger))

	r.Get(livenessPath, health.LivenessHandler())
	r.Get(readinessPath, s.checker.ReadinessHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/campaignify", s.handleCampaignify)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, NewHTTPError(http.StatusNotFound, "not found", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, NewHTTPError(http.StatusMethodNotAllowed, "method not allowed", nil))
	})

	return r
}
