// Package boilerplate serves the built-in template trees. Boilerplates are
// compiled into the binary; a directory-backed store exists for custom
// template sets and tests.
package boilerplate

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

// The all: prefix keeps dotfiles (e.g. .gitignore) in the embedded tree.
//
//go:embed all:templates
var templatesFS embed.FS

// Store resolves a boilerplate kind to its read-only source tree.
type Store struct {
	root fs.FS
}

// New returns the store backed by the embedded boilerplates.
func New() *Store {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The embedded tree is fixed at build time; a missing templates
		// directory is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded boilerplates missing: %v", err))
	}
	return &Store{root: sub}
}

// NewFromDir returns a store reading boilerplates from a directory whose
// subdirectories are named after kinds.
func NewFromDir(dir string) *Store {
	return &Store{root: os.DirFS(dir)}
}

// Resolve returns the source tree for kind. The tree is read-only; the
// copier materializes it, never mutates it.
func (s *Store) Resolve(kind domain.Kind) (fs.FS, error) {
	sub, err := fs.Sub(s.root, string(kind))
	if err != nil {
		return nil, fmt.Errorf("resolving boilerplate %q: %w", kind, err)
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, fmt.Errorf("boilerplate %q has no template tree: %w", kind, err)
	}
	return sub, nil
}
