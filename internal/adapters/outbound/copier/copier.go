// Package copier materializes a boilerplate file tree onto disk.
// One recursive walk copies everything, dotfiles included; the engine owns
// rollback of partial targets.
package copier

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TreeCopier copies an fs.FS tree into a non-existing target directory.
type TreeCopier struct{}

func New() *TreeCopier { return &TreeCopier{} }

// Copy writes every entry of src under targetPath. Preconditions: the
// target must not exist. On error the partially-written target is left in
// place for the caller to roll back.
func (c *TreeCopier) Copy(src fs.FS, targetPath string) error {
	if _, err := os.Stat(targetPath); err == nil {
		return fmt.Errorf("target %s already exists", targetPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking target %s: %w", targetPath, err)
	}

	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return fmt.Errorf("creating target %s: %w", targetPath, err)
	}

	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		dest := filepath.Join(targetPath, filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		// Carry the source's execute bit so directory-backed stores can
		// ship scripts; everything else gets a plain writable mode
		// (embedded trees report read-only permissions).
		perm := os.FileMode(0o644)
		if info, err := d.Info(); err == nil && info.Mode().Perm()&0o111 != 0 {
			perm = 0o755
		}
		if err := os.WriteFile(dest, data, perm); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		return nil
	})
}
