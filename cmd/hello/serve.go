package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http"
	"github.com/jsamuelsen/hello-packages/internal/adapters/http/handlers"
	"github.com/jsamuelsen/hello-packages/internal/platform/logging"
	"github.com/jsamuelsen/hello-packages/internal/platform/telemetry"
	"github.com/jsamuelsen/hello-packages/internal/ports"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.bootstrap(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, d)
		},
	}
}

func serve(ctx context.Context, d *deps) error {
	cfg, logger := d.cfg, d.logger

	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.Any("packages", d.service.Packages(ctx)),
	)

	// Telemetry is a noop when disabled.
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	healthRegistry := ports.NewHealthRegistry()
	for _, checker := range d.service.HealthCheckers(cfg.Packaging.ReadinessStrict) {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	greetingHandler := handlers.NewGreetingHandler(d.service, prometheus.DefaultRegisterer)
	packageHandler := handlers.NewPackageHandler(d.service)

	server := http.New(&cfg.Server, logger)

	routerCfg := http.NewDefaultRouterConfig(logger, &cfg.App, healthHandler, greetingHandler, packageHandler)
	routerCfg.Timeout = cfg.Server.RequestTimeout
	http.SetupRouter(server.Engine(), routerCfg)

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until ctx is done or the server fails, then drains
// in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case <-ctx.Done():
		logger.Info("received shutdown signal", slog.Any("cause", context.Cause(ctx)))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
