package packaging

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	requirementPattern = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(.*)$`)

	specifierClause  = `(?:===|==|!=|<=|>=|~=|<|>)\s*[A-Za-z0-9.*+!_-]+`
	specifierPattern = regexp.MustCompile(`^` + specifierClause + `(?:\s*,\s*` + specifierClause + `)*$`)
)

// Requirement is a declared runtime dependency.
// Requirements are metadata only; nothing resolves or installs them.
type Requirement struct {
	Name      string `json:"name"                validate:"required,pkgname"`
	Specifier string `json:"specifier,omitempty"`
}

// String renders the requirement in its declared form.
func (r Requirement) String() string {
	return r.Name + r.Specifier
}

// ParseRequirement parses "name" or "name<specifier>" such as "numpy>=1.26,<2".
func ParseRequirement(raw string) (Requirement, error) {
	s := strings.TrimSpace(raw)

	m := requirementPattern.FindStringSubmatch(s)
	if m == nil {
		return Requirement{}, fmt.Errorf("%w: %q", ErrInvalidRequirement, raw)
	}

	spec := strings.TrimSpace(m[2])
	if spec != "" && !specifierPattern.MatchString(spec) {
		return Requirement{}, fmt.Errorf("%w: %q", ErrInvalidRequirement, raw)
	}

	return Requirement{
		Name:      m[1],
		Specifier: strings.ReplaceAll(spec, " ", ""),
	}, nil
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizeName returns the canonical form of a package name: lower case,
// with runs of '-', '_' and '.' collapsed to a single '-'.
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
