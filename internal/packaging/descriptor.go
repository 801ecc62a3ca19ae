// Package packaging builds package descriptors from static declarations.
// A descriptor carries the metadata a package is published with: name,
// version, description, a long description read verbatim from a README,
// and the declared runtime requirements.
package packaging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Content types accepted for the long description.
const (
	ContentTypeMarkdown = "text/markdown"
	ContentTypePlain    = "text/plain"
	ContentTypeRST      = "text/x-rst"
)

// Packaging errors.
var (
	// ErrReadmeMissing is returned when the declared README cannot be found.
	ErrReadmeMissing = errors.New("readme missing")

	// ErrVersionUnset is returned when no version can be resolved.
	ErrVersionUnset = errors.New("version unset")

	// ErrInvalidRequirement is returned for a malformed requirement string.
	ErrInvalidRequirement = errors.New("invalid requirement")

	// ErrInvalidDeclaration is returned when the built descriptor fails validation.
	ErrInvalidDeclaration = errors.New("invalid declaration")
)

// Declaration holds the static inputs of a package descriptor.
type Declaration struct {
	// Name is the distribution name.
	Name string

	// Version is the static version. Ignored when VersionEnv is set.
	Version string

	// VersionEnv names an environment variable read at build time for the version.
	VersionEnv string

	// Description is the one-line summary.
	Description string

	// Files is the file system the README is read from.
	Files fs.FS

	// Readme is the README path inside Files. Empty means no long description.
	Readme string

	// ReadmeContentType is the media type of the README.
	// Inferred from the file extension when empty.
	ReadmeContentType string

	// Requires lists runtime requirement strings such as "numpy" or "numpy>=1.26".
	Requires []string
}

// Descriptor is the resolved package metadata.
type Descriptor struct {
	Name                       string        `json:"name"                       validate:"required,pkgname"`
	Version                    string        `json:"version"                    validate:"required"`
	Description                string        `json:"description"                validate:"max=512"`
	LongDescription            string        `json:"longDescription,omitempty"`
	LongDescriptionContentType string        `json:"longDescriptionContentType,omitempty" validate:"omitempty,oneof=text/markdown text/plain text/x-rst"`
	Requires                   []Requirement `json:"requires"                   validate:"dive"`
}

type options struct {
	lookupEnv       func(string) (string, bool)
	fallbackVersion string
}

// Option configures Build.
type Option func(*options)

// WithLookupEnv replaces os.LookupEnv for version resolution.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(o *options) {
		if fn != nil {
			o.lookupEnv = fn
		}
	}
}

// WithFallbackVersion sets the version used when neither the environment
// variable nor the static version yields one.
func WithFallbackVersion(version string) Option {
	return func(o *options) {
		o.fallbackVersion = strings.TrimSpace(version)
	}
}

// Build resolves a declaration into a validated Descriptor.
func Build(decl Declaration, opts ...Option) (*Descriptor, error) {
	o := options{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}

	version, err := resolveVersion(decl, &o)
	if err != nil {
		return nil, fmt.Errorf("package %q: %w", decl.Name, err)
	}

	readme, err := ReadReadme(decl)
	if err != nil {
		return nil, fmt.Errorf("package %q: %w", decl.Name, err)
	}

	requires := make([]Requirement, 0, len(decl.Requires))
	for _, raw := range decl.Requires {
		req, err := ParseRequirement(raw)
		if err != nil {
			return nil, fmt.Errorf("package %q: %w", decl.Name, err)
		}

		requires = append(requires, req)
	}

	desc := &Descriptor{
		Name:            decl.Name,
		Version:         version,
		Description:     decl.Description,
		LongDescription: readme,
		Requires:        requires,
	}
	if decl.Readme != "" {
		desc.LongDescriptionContentType = contentType(decl)
	}

	if err := validateDescriptor(desc); err != nil {
		return nil, fmt.Errorf("package %q: %w", decl.Name, err)
	}

	return desc, nil
}

// ReadReadme returns the README contents verbatim.
// Returns an empty string when the declaration has no README.
func ReadReadme(decl Declaration) (string, error) {
	if decl.Readme == "" {
		return "", nil
	}

	if decl.Files == nil {
		return "", fmt.Errorf("%w: %s", ErrReadmeMissing, decl.Readme)
	}

	data, err := fs.ReadFile(decl.Files, decl.Readme)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrReadmeMissing, decl.Readme)
	}

	if err != nil {
		return "", fmt.Errorf("reading readme %s: %w", decl.Readme, err)
	}

	return string(data), nil
}

func resolveVersion(decl Declaration, o *options) (string, error) {
	if decl.VersionEnv != "" {
		if v, ok := o.lookupEnv(decl.VersionEnv); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}

		if o.fallbackVersion != "" {
			return o.fallbackVersion, nil
		}

		return "", fmt.Errorf("%w: environment variable %s is not set", ErrVersionUnset, decl.VersionEnv)
	}

	if v := strings.TrimSpace(decl.Version); v != "" {
		return v, nil
	}

	if o.fallbackVersion != "" {
		return o.fallbackVersion, nil
	}

	return "", ErrVersionUnset
}

func contentType(decl Declaration) string {
	if decl.ReadmeContentType != "" {
		return decl.ReadmeContentType
	}

	switch strings.ToLower(path.Ext(decl.Readme)) {
	case ".md", ".markdown":
		return ContentTypeMarkdown
	case ".rst":
		return ContentTypeRST
	default:
		return ContentTypePlain
	}
}
