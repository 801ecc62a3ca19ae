package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/hello-packages/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion.
// Paths under /-/ and any exact skipPaths are not logged. Routes with a
// :package parameter get the package name attached to the context logger.
//
// The request logger is derived from logger, or from the context logger when
// logger is nil, and carries the request and correlation IDs.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := newPathSet(skipPaths)

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if skip.has(path) || strings.HasPrefix(path, "/-/") {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		base := logger
		if base == nil {
			base = logging.FromContext(ctx)
		}

		ctx = logging.WithContext(ctx, base)

		if id := RequestIDFromContext(ctx); id != "" {
			ctx = logging.WithRequestID(ctx, id)
		}

		if id := CorrelationIDFromContext(ctx); id != "" {
			ctx = logging.WithCorrelationID(ctx, id)
		}

		if pkg := c.Param("package"); pkg != "" {
			ctx = logging.WithPackage(ctx, pkg)
		}

		c.Request = c.Request.WithContext(ctx)
		ctxLogger := logging.FromContext(ctx)

		start := time.Now()

		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		ctxLogger.Debug("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		ctxLogger.Log(ctx, levelForStatus(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

// levelForStatus logs 5xx as errors and 4xx as warnings.
func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// pathSet matches exact request paths.
type pathSet map[string]struct{}

func newPathSet(paths []string) pathSet {
	set := make(pathSet, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}

	return set
}

func (s pathSet) has(path string) bool {
	_, ok := s[path]
	return ok
}
