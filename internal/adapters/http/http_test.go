package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http/dto"
	"github.com/jsamuelsen/hello-packages/internal/adapters/http/handlers"
	"github.com/jsamuelsen/hello-packages/internal/adapters/http/middleware"
	"github.com/jsamuelsen/hello-packages/internal/app"
	"github.com/jsamuelsen/hello-packages/internal/packaging"
	"github.com/jsamuelsen/hello-packages/internal/platform/config"
	"github.com/jsamuelsen/hello-packages/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 10,
	}
}

// newTestRouter wires the real application service. env plays the role of
// the process environment for version lookup.
func newTestRouter(t *testing.T, env map[string]string, strict bool) *gin.Engine {
	t.Helper()

	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	service := app.NewGreetingService(app.GreetingServiceConfig{
		BuildOptions: []packaging.Option{packaging.WithLookupEnv(lookup)},
		Logger:       discardLogger(),
	})

	registry := ports.NewHealthRegistry()
	for _, checker := range service.HealthCheckers(strict) {
		require.NoError(t, registry.Register(checker))
	}

	reg := prometheus.NewRegistry()

	engine := gin.New()
	SetupRouter(engine, NewDefaultRouterConfig(
		discardLogger(),
		&config.AppConfig{Name: "hello-packages", Version: "test", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "abc123", "now"), handlers.WithGatherer(reg)),
		handlers.NewGreetingHandler(service, reg),
		handlers.NewPackageHandler(service),
	))

	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestRouter_Greetings(t *testing.T) {
	engine := newTestRouter(t, nil, false)

	w := get(engine, "/api/v1/greetings")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"greetings":[
		{"package":"pyhello","message":"Hello, Python!"},
		{"package":"pystatmath","message":"Hello, statmath!"}
	]}`, w.Body.String())

	w = get(engine, "/api/v1/greetings/pyhello")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"package":"pyhello","message":"Hello, Python!"}`, w.Body.String())

	w = get(engine, "/api/v1/greetings/PyStatMath")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello, statmath!")
}

func TestRouter_UnknownPackage(t *testing.T) {
	engine := newTestRouter(t, nil, false)

	w := get(engine, "/api/v1/greetings/pyjokes")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
	assert.NotEmpty(t, resp.TraceID, "falls back to the request ID")
	assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), resp.TraceID)
}

func TestRouter_Describe(t *testing.T) {
	t.Run("version from CI_JOB_ID", func(t *testing.T) {
		engine := newTestRouter(t, map[string]string{"CI_JOB_ID": "4242"}, false)

		w := get(engine, "/api/v1/packages/pyhello")
		require.Equal(t, http.StatusOK, w.Code)

		var desc handlers.DescriptorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &desc))
		assert.Equal(t, "pyhello", desc.Name)
		assert.Equal(t, "4242", desc.Version)
		assert.Equal(t, "Our awesome package", desc.Description)
		assert.Equal(t, packaging.ContentTypeMarkdown, desc.LongDescriptionContentType)
		assert.True(t, strings.HasPrefix(desc.LongDescription, "# pyhello"))
		assert.Equal(t, []string{"numpy"}, desc.Requires)
	})

	t.Run("CI_JOB_ID unset", func(t *testing.T) {
		engine := newTestRouter(t, nil, false)

		w := get(engine, "/api/v1/packages/pyhello")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrorCodeUnavailable)
	})

	t.Run("static version", func(t *testing.T) {
		engine := newTestRouter(t, nil, false)

		w := get(engine, "/api/v1/packages/pystatmath")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"version":"0.1.0"`)
	})
}

func TestRouter_PackagesList(t *testing.T) {
	engine := newTestRouter(t, nil, false)

	w := get(engine, "/api/v1/packages?limit=1")
	require.Equal(t, http.StatusOK, w.Code)

	var page dto.PaginatedResponse[handlers.PackageSummary]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "pyhello", page.Items[0].Name)
	assert.True(t, page.HasMore)

	w = get(engine, "/api/v1/packages?limit=1&cursor="+page.NextCursor)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "pystatmath", page.Items[0].Name)
	assert.False(t, page.HasMore)
}

func TestRouter_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		strict bool
		want   int
	}{
		{"lenient ignores version", nil, false, http.StatusOK},
		{"strict needs CI_JOB_ID", nil, true, http.StatusServiceUnavailable},
		{"strict with CI_JOB_ID", map[string]string{"CI_JOB_ID": "1"}, true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestRouter(t, tt.env, tt.strict)

			w := get(engine, "/-/ready")
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), "package:pyhello")
			assert.Contains(t, w.Body.String(), "package:pystatmath")
		})
	}
}

func TestRouter_ProbesAndMetrics(t *testing.T) {
	engine := newTestRouter(t, nil, false)

	assert.Equal(t, http.StatusOK, get(engine, "/-/live").Code)

	w := get(engine, "/-/build")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"commit":"abc123"`)

	require.Equal(t, http.StatusOK, get(engine, "/api/v1/greetings/pyhello").Code)

	w = get(engine, "/-/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hello_greetings_total{package="pyhello"} 1`)
}

func TestRouter_IDHeaders(t *testing.T) {
	engine := newTestRouter(t, nil, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/greetings", nil)
	req.Header.Set(middleware.HeaderCorrelationID, "corr-1")
	engine.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-1", w.Header().Get(middleware.HeaderCorrelationID))
}

func TestSetupRouter_NilHandlers(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{Logger: discardLogger()})
	})

	assert.Equal(t, http.StatusNotFound, get(engine, "/-/live").Code)
}

func TestNewDefaultRouterConfig(t *testing.T) {
	appCfg := &config.AppConfig{Name: "hello-packages"}

	cfg := NewDefaultRouterConfig(discardLogger(), appCfg, nil, nil, nil)

	assert.Equal(t, appCfg, cfg.AppConfig)
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout)
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig()
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 8080, "localhost:8080"},
		{"0.0.0.0", 3000, "0.0.0.0:3000"},
		{"::1", 9090, "[::1]:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := testServerConfig()
			cfg.Host = tt.host
			cfg.Port = tt.port

			assert.Equal(t, tt.want, New(cfg, discardLogger()).Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	errCh := srv.Start()

	addr := srv.Addr()
	require.NotEqual(t, "127.0.0.1:0", addr, "bound address replaces port 0")

	resp, err := http.Get("http://" + addr + "/ping")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, ok := <-errCh:
		assert.False(t, ok, "error channel should be closed, got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for server to stop")
	}
}

func TestServerStart_BindError(t *testing.T) {
	first := New(testServerConfig(), discardLogger())
	_ = first.Start()

	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	host, port := splitAddr(t, first.Addr())
	cfg := testServerConfig()
	cfg.Host = host
	cfg.Port = port

	errCh := New(cfg, discardLogger()).Start()

	err, ok := <-errCh
	require.True(t, ok)
	assert.ErrorContains(t, err, "http server listen")
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	t.Run("under limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hello")))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("declared length over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		big := strings.NewReader(strings.Repeat("x", 2<<10))
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", big))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeTooLarge, resp.Error.Code)
	})

	t.Run("streamed body over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2<<10)))
		req.ContentLength = -1

		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func splitAddr(t *testing.T, addr string) (string, int) {
	t.Helper()

	u, err := url.Parse("tcp://" + addr)
	require.NoError(t, err)

	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return u.Hostname(), port
}
