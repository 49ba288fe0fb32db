package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/tui"
	"github.com/groundwork-cli/groundwork/internal/application"
)

func newInitCmd() *cobra.Command {
	var skipDeps bool

	cmd := &cobra.Command{
		Use:   "init <type> <path> [description]",
		Short: "Create a new project from a boilerplate",
		Long: `Create a new project from a named boilerplate: copy the template tree,
substitute placeholders, initialize a git repository with one commit,
install dependencies, and run a validation sanity pass.

Boilerplate types: webapp, website, python-cli.
The project name (the last path segment) must be lowercase kebab-case.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, targetPath := args[0], args[1]
			var description string
			if len(args) > 2 {
				description = args[2]
			}

			svc := newInitService()
			instance, err := svc.Init(cmd.Context(), typeName, targetPath, application.InitOptions{
				Description: description,
				SkipDeps:    skipDeps,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s project at %s\n", instance.Kind, instance.Path)
			fmt.Fprint(out, tui.RenderWarnings(instance.Warnings))
			if instance.Report != nil {
				fmt.Fprint(out, tui.RenderReport(instance.Report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipDeps, "skip-deps", false, "Skip the dependency install step")

	return cmd
}
