package app

import (
	"context"

	"github.com/jsamuelsen/hello-packages/internal/packaging"
	"github.com/jsamuelsen/hello-packages/internal/ports"
)

// packageChecker reports whether a package's metadata can be produced.
type packageChecker struct {
	pkg    Package
	strict bool
	opts   []packaging.Option
}

// Name implements ports.HealthChecker.
func (c *packageChecker) Name() string {
	return "package:" + c.pkg.Name()
}

// Check implements ports.HealthChecker. In strict mode the full descriptor
// must build; otherwise only the README has to be readable.
func (c *packageChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.strict {
		_, err := packaging.Build(c.pkg.Declaration, c.opts...)
		return err
	}

	_, err := packaging.ReadReadme(c.pkg.Declaration)

	return err
}

// HealthCheckers returns one checker per catalog package.
func (s *GreetingService) HealthCheckers(strict bool) []ports.HealthChecker {
	names := s.catalog.Names()
	checkers := make([]ports.HealthChecker, 0, len(names))

	for _, name := range names {
		p, _ := s.catalog.Lookup(name)
		checkers = append(checkers, &packageChecker{pkg: p, strict: strict, opts: s.buildOptions})
	}

	return checkers
}
