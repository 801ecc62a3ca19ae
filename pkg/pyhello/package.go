package pyhello

import (
	"embed"

	"github.com/jsamuelsen/hello-packages/internal/packaging"
)

// Name is the distribution name of the package.
const Name = "pyhello"

// VersionEnv names the environment variable that stamps the version at packaging time.
const VersionEnv = "CI_JOB_ID"

//go:embed README.md
var files embed.FS

// Package returns the packaging declaration for pyhello.
func Package() packaging.Declaration {
	return packaging.Declaration{
		Name:              Name,
		VersionEnv:        VersionEnv,
		Description:       "Our awesome package",
		Files:             files,
		Readme:            "README.md",
		ReadmeContentType: packaging.ContentTypeMarkdown,
		Requires:          []string{"numpy"},
	}
}
