// Package pkgmgr shells out to the ecosystem package manager after
// instantiation. It is a collaborator, not core: the engine only checks
// the exit code and downgrades any failure to a warning.
package pkgmgr

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

const installTimeout = 5 * time.Minute

// Installer runs the kind's install command inside the project directory.
type Installer struct{}

func New() *Installer { return &Installer{} }

// Install runs the package manager for the project's ecosystem. A missing
// package manager binary is not an error condition worth failing init for;
// it surfaces as a warning like any other install failure.
func (i *Installer) Install(ctx context.Context, projectPath string, kind domain.Kind) error {
	argv := kind.InstallCommand()
	if len(argv) == 0 {
		return nil
	}

	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%s not found on PATH, skipping dependency install", argv[0])
	}

	ctx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = projectPath
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w (output: %s)", argv[0], err, truncate(string(out), 400))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
