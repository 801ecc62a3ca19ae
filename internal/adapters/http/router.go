package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http/handlers"
	"github.com/jsamuelsen/hello-packages/internal/adapters/http/middleware"
	"github.com/jsamuelsen/hello-packages/internal/platform/config"
	"github.com/jsamuelsen/hello-packages/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 5 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig

	HealthHandler   *handlers.HealthHandler
	GreetingHandler *handlers.GreetingHandler
	PackageHandler  *handlers.PackageHandler

	// Timeout is the /api/v1 request deadline. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and metrics
//  5. Logging (skips /-/ endpoints)
//  6. Timeout (/api/v1 only)
//
// Route groups:
//   - /-/      probes, build info, Prometheus metrics
//   - /api/v1/ greetings and packages
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "hello-packages"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.GreetingHandler != nil {
		cfg.GreetingHandler.RegisterGreetingRoutes(apiV1)
	}

	if cfg.PackageHandler != nil {
		cfg.PackageHandler.RegisterPackageRoutes(apiV1)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with DefaultRequestTimeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	greetingHandler *handlers.GreetingHandler,
	packageHandler *handlers.PackageHandler,
) RouterConfig {
	return RouterConfig{
		Logger:          logger,
		AppConfig:       appCfg,
		HealthHandler:   healthHandler,
		GreetingHandler: greetingHandler,
		PackageHandler:  packageHandler,
		Timeout:         DefaultRequestTimeout,
	}
}
