package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/jsamuelsen/hello-packages/telemetry"

	// TraceIDHeader carries the active trace ID back to the caller.
	TraceIDHeader = "X-Trace-ID"

	// PackageAttr labels request metrics for a single package route.
	PackageAttr = attribute.Key("hello.package")
)

// Metrics are the HTTP server instruments recorded by Middleware.
type Metrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationName)

	duration, errDuration := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"))
	total, errTotal := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"))
	active, errActive := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"))

	if err := errors.Join(errDuration, errTotal, errActive); err != nil {
		return nil, err
	}

	return &Metrics{duration: duration, total: total, active: active}, nil
}

func (m *Metrics) begin(ctx context.Context, c *gin.Context) func() {
	attrs := metric.WithAttributes(
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	)
	m.active.Add(ctx, 1, attrs)

	return func() { m.active.Add(ctx, -1, attrs) }
}

func (m *Metrics) finish(ctx context.Context, c *gin.Context, elapsed time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
		attribute.Int("http.status_code", c.Writer.Status()),
	}
	if pkg := c.Param("package"); pkg != "" {
		attrs = append(attrs, PackageAttr.String(pkg))
	}

	set := metric.WithAttributes(attrs...)
	m.duration.Record(ctx, elapsed.Seconds(), set)
	m.total.Add(ctx, 1, set)
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	meterProvider metric.MeterProvider
}

// WithMeterProvider records on mp instead of the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) MiddlewareOption {
	return func(c *middlewareConfig) { c.meterProvider = mp }
}

// Middleware records request metrics and echoes the active trace ID in
// X-Trace-ID. Single-package routes carry the hello.package attribute.
// Instrument creation errors go to the otel error handler and disable metrics.
func Middleware(opts ...MiddlewareOption) gin.HandlerFunc {
	cfg := middlewareConfig{meterProvider: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}

	metrics, err := NewMetrics(cfg.meterProvider)
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			c.Header(TraceIDHeader, sc.TraceID().String())
		}

		if metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		defer metrics.begin(ctx, c)()

		c.Next()

		metrics.finish(ctx, c, time.Since(start))
	}
}

// TracingMiddleware returns the otelgin tracing middleware for serviceName.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
