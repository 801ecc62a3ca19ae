//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/hello-packages/internal/adapters/http"
	"github.com/jsamuelsen/hello-packages/internal/adapters/http/handlers"
	"github.com/jsamuelsen/hello-packages/internal/app"
	"github.com/jsamuelsen/hello-packages/internal/platform/config"
	"github.com/jsamuelsen/hello-packages/internal/ports"
)

// newInProcessServer serves the full router over a real listener. Versions
// are resolved from the process environment at request time.
func newInProcessServer(strict bool) (*httptest.Server, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := app.NewGreetingService(app.GreetingServiceConfig{Logger: logger})

	registry := ports.NewHealthRegistry()
	for _, checker := range service.HealthCheckers(strict) {
		if err := registry.Register(checker); err != nil {
			return nil, err
		}
	}

	reg := prometheus.NewRegistry()

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "hello-packages", Version: "integration", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "now"), handlers.WithGatherer(reg)),
		handlers.NewGreetingHandler(service, reg),
		handlers.NewPackageHandler(service),
	))

	return httptest.NewServer(engine), nil
}
