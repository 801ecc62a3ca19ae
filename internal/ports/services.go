package ports

import (
	"context"

	"github.com/jsamuelsen/hello-packages/internal/domain"
	"github.com/jsamuelsen/hello-packages/internal/packaging"
)

// GreetingService is the application port the HTTP and CLI adapters drive.
type GreetingService interface {
	// Greet returns the greeting of the named package.
	// Returns domain.ErrNotFound for an unknown package and domain.ErrValidation for a blank name.
	Greet(ctx context.Context, name string) (domain.Greeting, error)

	// GreetAll returns every package's greeting, sorted by package name.
	GreetAll(ctx context.Context) []domain.Greeting

	// Describe builds the named package's descriptor.
	// Returns domain.ErrUnavailable when the descriptor cannot be built.
	Describe(ctx context.Context, name string) (*packaging.Descriptor, error)

	// Packages returns the registered package names in sorted order.
	Packages(ctx context.Context) []string
}
