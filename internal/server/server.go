// Package server exposes the pricing engine as a JSON HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"indigo-pricing/internal/pricing"
)

type Server struct {
	engine  *pricing.Engine
	logger  *zap.Logger
	limiter *RateLimiter
}

func New(engine *pricing.Engine, logger *zap.Logger, limiter *RateLimiter) *Server {
	if limiter == nil {
		limiter = &RateLimiter{}
	}
	return &Server{engine: engine, logger: logger, limiter: limiter}
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Get("/papers", s.handlePapers)
		r.Post("/quotes/{product}", s.handleQuote)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}
