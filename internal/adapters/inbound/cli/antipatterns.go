package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groundwork-cli/groundwork/internal/application"
	"github.com/groundwork-cli/groundwork/internal/domain"
)

func newAntiPatternsCmd() *cobra.Command {
	var (
		strict   bool
		ciMode   bool
		fix      bool
		priority string
	)

	cmd := &cobra.Command{
		Use:   "anti-patterns [path]",
		Short: "Scan a project for anti-pattern heuristics",
		Long: `Evaluate only the anti-pattern heuristics (file absence, content ratios,
git history, freshness), optionally filtered to one priority tier.

Exit codes follow the validate policy: 0 clean, 1 any P0/P1 violation,
2 only P2/P3 violations in strict mode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			opts := application.ValidateOptions{
				Strict:           strict,
				Fix:              fix,
				AntiPatternsOnly: true,
			}
			if priority != "" {
				sev, err := domain.ParseSeverity(priority)
				if err != nil {
					return err
				}
				opts.Priority = &sev
			}

			run, err := newValidateService().Validate(path, opts)
			if err != nil {
				return fmt.Errorf("anti-pattern scan failed: %w", err)
			}

			return renderRun(cmd, run, ciMode)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Escalate P2/P3 findings to a non-zero exit code")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: machine-readable JSON report")
	cmd.Flags().BoolVar(&fix, "fix", false, "Apply available remediations")
	cmd.Flags().StringVar(&priority, "priority", "", "Only evaluate rules of one severity (P0, P1, P2, P3)")

	return cmd
}
