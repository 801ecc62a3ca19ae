// Package http is the gin adapter of the greeting service: the server, the
// router and its handler and middleware subpackages.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http/dto"
	"github.com/jsamuelsen/hello-packages/internal/platform/config"
)

// Server owns the gin engine and the net/http server in front of it.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger
	bound      atomic.Pointer[string]
}

// New builds a server for cfg. Routes are added through Engine before Start.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           engine,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Engine returns the gin engine routes are registered on.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Config returns the configuration the server was built from.
func (s *Server) Config() *config.ServerConfig { return s.config }

// Addr returns the bound address after Start and the configured one before.
// With port 0 the two differ.
func (s *Server) Addr() string {
	if addr := s.bound.Load(); addr != nil {
		return *addr
	}

	return s.httpServer.Addr
}

// Start binds synchronously and serves in the background. The returned
// channel yields at most one error, a bind or serve failure, and is closed
// when serving ends.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		errCh <- fmt.Errorf("http server listen: %w", err)
		close(errCh)

		return errCh
	}

	addr := ln.Addr().String()
	s.bound.Store(&addr)

	s.logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.Duration("read_timeout", s.config.ReadTimeout),
		slog.Duration("write_timeout", s.config.WriteTimeout),
		slog.Duration("request_timeout", s.config.RequestTimeout),
	)

	go func() {
		defer close(errCh)

		if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	return errCh
}

// Shutdown stops accepting connections and waits, until ctx ends, for
// in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server", slog.String("addr", s.Addr()))

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// maxBodySize rejects bodies over maxBytes: up front when Content-Length
// already exceeds it, otherwise when the handler reads past the limit.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			dto.RespondWithErrorCode(c, dto.ErrorCodeTooLarge, "request body exceeds "+strconv.FormatInt(maxBytes, 10)+" bytes")
			c.Abort()

			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
