package pystatmath

import (
	"embed"

	"github.com/jsamuelsen/hello-packages/internal/packaging"
)

// Name is the distribution name of the package.
const Name = "pystatmath"

// Version is the static package version.
const Version = "0.1.0"

//go:embed README.md
var files embed.FS

// Package returns the packaging declaration for pystatmath.
func Package() packaging.Declaration {
	return packaging.Declaration{
		Name:              Name,
		Version:           Version,
		Description:       "Our awesome package",
		Files:             files,
		Readme:            "README.md",
		ReadmeContentType: packaging.ContentTypeMarkdown,
		Requires:          []string{"numpy"},
	}
}
