// Package http serves the phase artwork over HTTP.
package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/phaseart/internal/logging"
	"github.com/fyrsmithlabs/phaseart/internal/render"
	"github.com/fyrsmithlabs/phaseart/internal/telemetry"
)

const instrumentationName = "github.com/fyrsmithlabs/phaseart/internal/http"

// VisualizerFactory returns a fresh Visualizer for one request.
type VisualizerFactory func() *render.Visualizer

// Server serves the rendered pipeline, per-phase fragments and metadata.
type Server struct {
	echo          *echo.Echo
	logger        *logging.Logger
	config        *Config
	newVisualizer VisualizerFactory

	telemetry   *telemetry.Telemetry
	tracer      trace.Tracer
	httpMetrics *HTTPMetrics
	registry    *prometheus.Registry
	rendered    *prometheus.CounterVec
	serviceName string
}

// Config holds HTTP server configuration.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration

	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64
	RateBurst int
}

// Option configures a Server.
type Option func(*Server)

// WithTelemetry routes spans and HTTP metrics through tel.
func WithTelemetry(tel *telemetry.Telemetry) Option {
	return func(s *Server) { s.telemetry = tel }
}

// WithRegistry exposes reg on /metrics instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// WithServiceName sets the service name reported by /health.
func WithServiceName(name string) Option {
	return func(s *Server) { s.serviceName = name }
}

// NewServer creates a new HTTP server.
func NewServer(newViz VisualizerFactory, logger *logging.Logger, cfg *Config, opts ...Option) (*Server, error) {
	if newViz == nil {
		return nil, fmt.Errorf("visualizer factory cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host:            "127.0.0.1",
			Port:            5000,
			ShutdownTimeout: 10 * time.Second,
		}
	}

	s := &Server{
		logger:        logger.Named("http"),
		config:        cfg,
		newVisualizer: newViz,
		serviceName:   "phaseart",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tracer = s.telemetry.Tracer(instrumentationName)
	s.httpMetrics = NewHTTPMetrics(s.telemetry.Meter(instrumentationName), s.logger)
	if s.registry == nil {
		s.registry = NewRegistry()
	}
	rendered, err := newRenderCounter(s.registry)
	if err != nil {
		return nil, fmt.Errorf("registering render counter: %w", err)
	}
	s.rendered = rendered

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newPageRenderer()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(logging.WithRequestID(req.Context(), id)))
		},
	}))
	e.Use(s.httpMetrics.MetricsMiddleware())
	e.Use(s.requestLogger())
	if cfg.RateLimit > 0 {
		e.Use(s.rateLimiter())
	}

	s.echo = e
	s.registerRoutes()

	return s, nil
}

// requestLogger logs one line per request and stores a route-scoped logger
// in the request context for handlers. Errors are handed to echo's error
// handler first so the logged status is the one the client sees.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqLogger := s.logger.With(zap.String("route", normalizePath(c.Path())))
			r := c.Request()
			c.SetRequest(r.WithContext(logging.WithLogger(r.Context(), reqLogger)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
				zap.Int64("bytes", c.Response().Size),
			}
			switch {
			case status >= http.StatusInternalServerError:
				reqLogger.Error(req.Context(), "http request", append(fields, zap.Error(err))...)
			case status >= http.StatusBadRequest:
				reqLogger.Warn(req.Context(), "http request", fields...)
			default:
				reqLogger.Info(req.Context(), "http request", fields...)
			}
			return err
		}
	}
}

// rateLimiter limits each client IP with a token bucket. /health is exempt.
func (s *Server) rateLimiter() echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(s.config.RateLimit),
		Burst:     s.config.RateBurst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/health" },
		Store:   store,
	})
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleIndex)
	s.echo.GET("/svg", s.handleSVG)
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler(s.registry)))

	api := s.echo.Group("/api")
	api.GET("/phases", s.handlePhases)
	api.GET("/phases/:name", s.handlePhase)
	api.GET("/phases/:name/svg", s.handlePhaseSVG)
	api.GET("/audit", s.handleAudit)
}

// ServeHTTP lets the server be mounted or driven by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Start serves until ctx is cancelled, then shuts down within the
// configured timeout and returns http.ErrServerClosed.
func (s *Server) Start(ctx context.Context) error {
	addr := s.Addr()
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "starting http server", zap.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server start: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return http.ErrServerClosed
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "shutting down http server")
	return s.echo.Shutdown(ctx)
}
