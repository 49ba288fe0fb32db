package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

// absenceRules flag missing supporting files and directories. These are
// anti-patterns rather than hard structure: the project builds without
// them, it just rots faster.
func absenceRules() []domain.Rule {
	return []domain.Rule{
		{
			Code:         "AP001",
			Name:         "missing-gitignore",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP1,
			Description:  ".gitignore is missing; build artifacts and secrets will end up committed",
			SuggestedFix: "Run with --fix to write a minimal .gitignore",
			Detect:       absenceDetect(".gitignore"),
			Fix: func(ctx *domain.RuleContext) error {
				var lines string
				switch ctx.Kind {
				case domain.KindPythonCLI:
					lines = "__pycache__/\n*.pyc\n.venv/\ndist/\n*.egg-info/\n"
				default:
					lines = "node_modules/\ndist/\n.env\n.env.local\n"
				}
				return writeStub(ctx, ".gitignore", lines)
			},
		},
		{
			Code:         "AP002",
			Name:         "no-tests",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP1,
			Description:  "No test files or tests/ directory found",
			SuggestedFix: "Create a tests/ directory with at least one test",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Kind == domain.KindWebsite {
					// Static sites have no test harness to require.
					return domain.OutcomeSkip
				}
				if dirExists(ctx, "tests") || dirExists(ctx, "test") || dirExists(ctx, "__tests__") {
					return domain.OutcomePass
				}
				if ctx.Scan != nil {
					for _, f := range ctx.Scan.SourceFiles {
						base := filepath.Base(f)
						if strings.HasPrefix(base, "test_") ||
							strings.Contains(base, ".test.") ||
							strings.Contains(base, ".spec.") ||
							strings.HasSuffix(base, "_test.go") {
							return domain.OutcomePass
						}
					}
				}
				return domain.OutcomeViolation
			},
		},
		{
			Code:         "AP003",
			Name:         "missing-architecture-doc",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP2,
			Description:  "docs/ARCHITECTURE.md is missing",
			SuggestedFix: "Run with --fix to generate an architecture doc stub",
			Detect:       absenceDetect("docs/ARCHITECTURE.md"),
			Fix: func(ctx *domain.RuleContext) error {
				return writeStub(ctx, "docs/ARCHITECTURE.md", fmt.Sprintf(
					"# Architecture\n\nTODO: describe the components of %s and how they interact.\n", projectName(ctx)))
			},
		},
		{
			Code:         "AP004",
			Name:         "missing-decision-log",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP3,
			Description:  "docs/DECISIONS.md (decision log) is missing",
			SuggestedFix: "Run with --fix to generate a decision log stub",
			Detect:       absenceDetect("docs/DECISIONS.md"),
			Fix: func(ctx *domain.RuleContext) error {
				return writeStub(ctx, "docs/DECISIONS.md",
					"# Decision Log\n\n| Date | Decision | Context |\n|------|----------|---------|\n")
			},
		},
		{
			Code:         "AP005",
			Name:         "missing-session-notes",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP2,
			Description:  "No session notes file (SESSION_NOTES.md or docs/SESSION_NOTES.md)",
			SuggestedFix: "Run with --fix to create docs/SESSION_NOTES.md",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if firstExisting(ctx, "SESSION_NOTES.md", "docs/SESSION_NOTES.md") != "" {
					return domain.OutcomePass
				}
				return domain.OutcomeViolation
			},
			Fix: func(ctx *domain.RuleContext) error {
				return writeStub(ctx, "docs/SESSION_NOTES.md",
					"# Session Notes\n\nAppend a dated entry per working session: what changed, what is next.\n")
			},
		},
		{
			Code:         "AP006",
			Name:         "missing-license",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP3,
			Description:  "No LICENSE file",
			SuggestedFix: "Add a LICENSE file appropriate for the project",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if firstExisting(ctx, "LICENSE", "LICENSE.md", "LICENSE.txt") != "" {
					return domain.OutcomePass
				}
				return domain.OutcomeViolation
			},
		},
		{
			Code:         "AP007",
			Name:         "missing-changelog",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP3,
			Description:  "CHANGELOG.md is missing",
			SuggestedFix: "Run with --fix to generate a changelog stub",
			Detect:       absenceDetect("CHANGELOG.md"),
			Fix: func(ctx *domain.RuleContext) error {
				return writeStub(ctx, "CHANGELOG.md",
					"# Changelog\n\n## Unreleased\n\n- Initial project setup\n")
			},
		},
		{
			Code:         "AP008",
			Name:         "empty-docs-dir",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP2,
			Description:  "docs/ exists but contains no files",
			SuggestedFix: "Write at least an index under docs/",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if !dirExists(ctx, "docs") {
					// Covered by ST004; absence is not emptiness.
					return domain.OutcomeSkip
				}
				entries, err := os.ReadDir(filepath.Join(ctx.ProjectPath, "docs"))
				if err != nil {
					return domain.OutcomeSkip
				}
				if len(entries) == 0 {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
	}
}
