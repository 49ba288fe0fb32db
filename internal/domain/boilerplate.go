package domain

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kind identifies a registered boilerplate. The set is closed: resolving
// happens once at startup, there is no string dispatch past the CLI edge.
type Kind string

const (
	KindWebapp    Kind = "webapp"
	KindWebsite   Kind = "website"
	KindPythonCLI Kind = "python-cli"
	KindUnknown   Kind = ""
)

// Kinds lists the valid boilerplate kinds in registration order.
var Kinds = []Kind{KindWebapp, KindWebsite, KindPythonCLI}

// ParseKind resolves a user-supplied type name to a registered Kind.
func ParseKind(raw string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == raw {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown boilerplate type %q (valid: webapp, website, python-cli)", raw)
}

// Manifest returns the ecosystem manifest file that marks a project of this
// kind. Kind detection and the ST001 structure rule both key off it.
func (k Kind) Manifest() string {
	switch k {
	case KindWebapp, KindWebsite:
		return "package.json"
	case KindPythonCLI:
		return "pyproject.toml"
	}
	return ""
}

// InstallCommand returns the package-manager invocation for this kind's
// ecosystem. The engine shells out to it and treats failure as a warning.
func (k Kind) InstallCommand() []string {
	switch k {
	case KindWebapp, KindWebsite:
		return []string{"npm", "install"}
	case KindPythonCLI:
		return []string{"python3", "-m", "pip", "install", "-e", "."}
	}
	return nil
}

// DetectKind infers the boilerplate kind of an existing project from its
// root manifest. Returns KindUnknown when no manifest is recognized.
func DetectKind(projectPath string) Kind {
	if _, err := os.Stat(filepath.Join(projectPath, "pyproject.toml")); err == nil {
		return KindPythonCLI
	}
	if _, err := os.Stat(filepath.Join(projectPath, "package.json")); err == nil {
		// webapp and website share a manifest; webapp is the stricter
		// superset so validation assumes it.
		return KindWebapp
	}
	return KindUnknown
}

// ProjectInstance is the materialized result of one Init call.
type ProjectInstance struct {
	Path     string
	Name     string
	Kind     Kind
	Report   *ValidationReport
	Warnings []string
}
