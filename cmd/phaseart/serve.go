package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/phaseart/internal/config"
	httpserver "github.com/fyrsmithlabs/phaseart/internal/http"
	"github.com/fyrsmithlabs/phaseart/internal/logging"
	"github.com/fyrsmithlabs/phaseart/internal/render"
	"github.com/fyrsmithlabs/phaseart/internal/telemetry"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the artwork over HTTP",
		Long: `Serve the artwork, the phase metadata API, /health and /metrics.

The server runs until SIGINT or SIGTERM and then shuts down gracefully.

Examples:
  # Serve with defaults (127.0.0.1:5000)
  phaseart serve

  # Serve on another port
  PHASEART_SERVER_HTTP_PORT=8080 phaseart serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithFile(root.configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, cmd.ErrOrStderr())
		},
	}
}

// serve runs the HTTP server until ctx is cancelled. Logs go to logOut.
func serve(ctx context.Context, cfg *config.Config, logOut io.Writer) error {
	tel, err := telemetry.New(ctx, telemetry.FromSettings(cfg.Observability, version))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tel.Shutdown(shutdownCtx)
	}()

	logCfg, err := logging.FromSettings(cfg.Logging)
	if err != nil {
		return err
	}
	logCfg.Output.Writer = logOut
	logCfg.Output.OTEL = tel.LoggerProvider() != nil

	logger, err := logging.NewLogger(logCfg, tel.LoggerProvider())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if h := tel.Health(); h.Degraded {
		logger.Warn(ctx, "telemetry degraded", zap.String("reason", h.Reason))
	}

	canvas := cfg.Canvas
	srv, err := httpserver.NewServer(
		func() *render.Visualizer { return render.NewFromConfig(canvas) },
		logger,
		&httpserver.Config{
			Host:            cfg.Server.Host,
			Port:            cfg.Server.Port,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
			RateLimit:       cfg.Server.RateLimit,
			RateBurst:       cfg.Server.RateBurst,
		},
		httpserver.WithTelemetry(tel),
		httpserver.WithServiceName(cfg.Observability.ServiceName),
	)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info(ctx, "phaseart starting",
		zap.String("version", version),
		zap.String("addr", srv.Addr()),
		zap.Int("canvas.width", canvas.Width),
		zap.Int("canvas.height", canvas.Height),
		zap.Bool("telemetry", tel.IsEnabled()),
	)

	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info(context.Background(), "phaseart stopped")
	return nil
}
