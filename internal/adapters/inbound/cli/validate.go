package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/tui"
	"github.com/groundwork-cli/groundwork/internal/application"
)

func newValidateCmd() *cobra.Command {
	var (
		strict bool
		ciMode bool
		fix    bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a project against the full rule catalog",
		Long: `Evaluate every structure rule and anti-pattern heuristic against a project.

Exit codes: 0 clean, 1 any P0/P1 violation, 2 only P2/P3 violations in
strict mode. --ci prints a single JSON report object instead of text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			run, err := newValidateService().Validate(path, application.ValidateOptions{
				Strict: strict,
				Fix:    fix,
			})
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			return renderRun(cmd, run, ciMode)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Escalate P2/P3 findings to a non-zero exit code")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: machine-readable JSON report")
	cmd.Flags().BoolVar(&fix, "fix", false, "Apply available remediations")

	return cmd
}

// renderRun writes the report in the requested mode and converts the
// severity policy into the process exit code.
func renderRun(cmd *cobra.Command, run *application.ValidationRun, ciMode bool) error {
	out := cmd.OutOrStdout()
	if ciMode {
		rendered, err := tui.RenderCI(run.Report)
		if err != nil {
			return fmt.Errorf("encoding CI report: %w", err)
		}
		fmt.Fprint(out, rendered)
	} else {
		fmt.Fprint(out, tui.RenderReport(run.Report))
	}

	if code := run.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
