// Package app contains application services that orchestrate use cases.
// It wires packaged greeters and their declarations behind port interfaces;
// transport adapters (HTTP, CLI) only talk to the services defined here.
package app

import (
	"slices"

	"github.com/jsamuelsen/hello-packages/internal/domain"
	"github.com/jsamuelsen/hello-packages/internal/packaging"
	"github.com/jsamuelsen/hello-packages/internal/ports"
	"github.com/jsamuelsen/hello-packages/pkg/pyhello"
	"github.com/jsamuelsen/hello-packages/pkg/pystatmath"
)

// Package binds a greeter to the declaration it is published with.
type Package struct {
	Greeter     ports.Greeter
	Declaration packaging.Declaration
}

// Name returns the package's distribution name.
func (p Package) Name() string {
	return p.Declaration.Name
}

// Catalog is an immutable set of packages keyed by normalized name.
type Catalog struct {
	entries map[string]Package
	names   []string
}

// NewCatalog builds a catalog. Names are compared after normalization,
// so "py_hello" and "Py-Hello" collide.
func NewCatalog(pkgs ...Package) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]Package, len(pkgs)),
		names:   make([]string, 0, len(pkgs)),
	}

	for _, p := range pkgs {
		if p.Name() == "" {
			return nil, domain.NewValidationError("package.name", "is required")
		}

		if p.Greeter == nil {
			return nil, domain.NewValidationError("package.greeter", "is required for "+p.Name())
		}

		key := packaging.NormalizeName(p.Name())
		if _, exists := c.entries[key]; exists {
			return nil, domain.NewConflictError("package", p.Name()+" already registered")
		}

		c.entries[key] = p
		c.names = append(c.names, p.Name())
	}

	slices.Sort(c.names)

	return c, nil
}

// DefaultCatalog returns the catalog of every package shipped in this module.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Package{Greeter: pyhello.New(), Declaration: pyhello.Package()},
		Package{Greeter: pystatmath.New(), Declaration: pystatmath.Package()},
	)
	if err != nil {
		panic("app: invalid default catalog: " + err.Error())
	}

	return c
}

// Lookup finds a package by name.
func (c *Catalog) Lookup(name string) (Package, bool) {
	p, ok := c.entries[packaging.NormalizeName(name)]
	return p, ok
}

// Names returns the registered package names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of registered packages.
func (c *Catalog) Len() int {
	return len(c.names)
}
