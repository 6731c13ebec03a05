package handlers

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/user/yt-summarizer/config"
	"github.com/user/yt-summarizer/middleware"
	"github.com/user/yt-summarizer/services/summary"
	"github.com/user/yt-summarizer/static"
	"github.com/user/yt-summarizer/validation"
)

// Server wires the HTTP surface: API routes, static assets, and the
// middleware chain configured per environment.
type Server struct {
	config         *config.Config
	logger         *logrus.Logger
	validator      *validation.Validator
	summaryService summary.Service
	httpServer     *http.Server
	startTime      time.Time
}

type ServerOption func(*Server)

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func WithServices(summaryService summary.Service) ServerOption {
	return func(s *Server) {
		s.summaryService = summaryService
	}
}

func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		config:    cfg,
		logger:    logrus.StandardLogger(),
		validator: validation.NewValidator(cfg),
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// routes builds the full handler tree with the configured middleware.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/summarize", s.SummarizeHandler)
	mux.HandleFunc("GET /api/agent/status", s.AgentStatusHandler)
	mux.HandleFunc("POST /api/agent/reset", s.AgentResetHandler)
	mux.HandleFunc("GET /health", s.HealthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/", http.FileServerFS(static.Files))

	var chain []func(http.Handler) http.Handler
	mw := s.config.Middleware

	if mw.EnableRecover {
		chain = append(chain, middleware.Recovery(s.logger))
	}
	if mw.EnableRequestID {
		chain = append(chain, middleware.RequestID())
	}
	if mw.EnableLogger {
		chain = append(chain, middleware.Logging(s.logger))
	}
	if mw.EnableMetrics {
		chain = append(chain, middleware.Metrics())
	}
	if mw.EnableCORS && s.config.CORS.Enabled {
		chain = append(chain, middleware.CORS(s.config.CORS))
	}
	if mw.EnableTimeout {
		chain = append(chain, middleware.Timeout(s.config.RequestTimeout))
	}
	if mw.EnableRateLimit && s.config.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			s.config.RateLimit.RequestsPerMinute,
			s.config.RateLimit.BurstSize,
		)
		chain = append(chain, limiter.Middleware)
	}

	return middleware.Chain(mux, chain...)
}

// HealthHandler reports process liveness and basic runtime stats.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"version":    s.config.Version,
		"uptime":     time.Since(s.startTime).String(),
		"debug":      s.config.Debug,
		"goroutines": runtime.NumGoroutine(),
		"memory_mb":  fmt.Sprintf("%.1f", float64(mem.Alloc)/1024/1024),
	})
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.logger.WithFields(logrus.Fields{
		"port":  s.config.ServerPort,
		"debug": s.config.Debug,
	}).Info("Starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed handler tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
