package app

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/hello-packages/internal/domain"
	"github.com/jsamuelsen/hello-packages/internal/packaging"
	"github.com/jsamuelsen/hello-packages/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/hello-packages/app"

// GreetingService serves greetings and package descriptors from a Catalog.
// It is safe for concurrent use.
type GreetingService struct {
	catalog      *Catalog
	buildOptions []packaging.Option
	logger       *slog.Logger
	tracer       trace.Tracer
	greetings    metric.Int64Counter
}

// GreetingServiceConfig contains configuration for the greeting service.
type GreetingServiceConfig struct {
	// Catalog defaults to DefaultCatalog when nil.
	Catalog *Catalog

	// BuildOptions are passed to packaging.Build by Describe.
	BuildOptions []packaging.Option

	Logger *slog.Logger
}

// NewGreetingService creates a greeting service.
func NewGreetingService(cfg GreetingServiceConfig) *GreetingService {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	greetings, err := otel.Meter(instrumentationName).Int64Counter(
		"hello.greetings",
		metric.WithDescription("Number of greetings served"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &GreetingService{
		catalog:      catalog,
		buildOptions: cfg.BuildOptions,
		logger:       logger.With(slog.String("component", "app.GreetingService")),
		tracer:       otel.Tracer(instrumentationName),
		greetings:    greetings,
	}
}

// Catalog returns the catalog the service reads from.
func (s *GreetingService) Catalog() *Catalog {
	return s.catalog
}

// Greet returns the greeting of the named package.
func (s *GreetingService) Greet(ctx context.Context, name string) (domain.Greeting, error) {
	ctx, span := s.tracer.Start(ctx, "GreetingService.Greet",
		trace.WithAttributes(attribute.String("package.name", name)),
	)
	defer span.End()

	p, err := s.lookup(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Greeting{}, err
	}

	greeting := s.greet(ctx, p)

	s.logger.DebugContext(ctx, "greeted",
		slog.String("package", greeting.Package),
		slog.String("message", greeting.Message),
	)

	return greeting, nil
}

// GreetAll returns the greeting of every package, sorted by package name.
func (s *GreetingService) GreetAll(ctx context.Context) []domain.Greeting {
	ctx, span := s.tracer.Start(ctx, "GreetingService.GreetAll")
	defer span.End()

	names := s.catalog.Names()
	greetings := make([]domain.Greeting, 0, len(names))

	for _, name := range names {
		p, _ := s.catalog.Lookup(name)
		greetings = append(greetings, s.greet(ctx, p))
	}

	span.SetAttributes(attribute.Int("package.count", len(greetings)))

	return greetings
}

// Describe builds the descriptor of the named package.
// Packaging failures (missing README, unset version) surface as domain.UnavailableError.
func (s *GreetingService) Describe(ctx context.Context, name string) (*packaging.Descriptor, error) {
	ctx, span := s.tracer.Start(ctx, "GreetingService.Describe",
		trace.WithAttributes(attribute.String("package.name", name)),
	)
	defer span.End()

	p, err := s.lookup(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	desc, err := packaging.Build(p.Declaration, s.buildOptions...)
	if err != nil {
		s.logger.WarnContext(ctx, "package descriptor unavailable",
			slog.String("package", p.Name()),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "descriptor unavailable")

		return nil, domain.NewUnavailableErrorWithCause("package "+p.Name()+" metadata", err)
	}

	return desc, nil
}

// Packages returns the registered package names in sorted order.
func (s *GreetingService) Packages(_ context.Context) []string {
	return s.catalog.Names()
}

func (s *GreetingService) lookup(name string) (Package, error) {
	if strings.TrimSpace(name) == "" {
		return Package{}, domain.NewValidationError("package", "is required")
	}

	p, ok := s.catalog.Lookup(name)
	if !ok {
		return Package{}, domain.NewNotFoundError("package", name)
	}

	return p, nil
}

func (s *GreetingService) greet(ctx context.Context, p Package) domain.Greeting {
	greeting := domain.NewGreeting(p.Name(), p.Greeter.SayHello())

	if s.greetings != nil {
		s.greetings.Add(ctx, 1, metric.WithAttributes(attribute.String("package.name", greeting.Package)))
	}

	return greeting
}

var _ ports.GreetingService = (*GreetingService)(nil)
