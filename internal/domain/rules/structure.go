package rules

import (
	"fmt"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

// structureRules are the hard structural requirements: a project missing
// any of these is broken (P0) or strongly discouraged (P1).
func structureRules() []domain.Rule {
	return []domain.Rule{
		{
			Code:         "ST001",
			Name:         "missing-manifest",
			Family:       domain.FamilyStructure,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP0,
			Description:  "Project has no ecosystem manifest (package.json or pyproject.toml) at the root",
			SuggestedFix: "Create the manifest for your ecosystem, or re-run init from a boilerplate",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Kind == domain.KindUnknown {
					// No recognized ecosystem at all: that IS the violation.
					return domain.OutcomeViolation
				}
				if fileExists(ctx, ctx.Kind.Manifest()) {
					return domain.OutcomePass
				}
				return domain.OutcomeViolation
			},
		},
		{
			Code:         "ST002",
			Name:         "missing-instructions",
			Family:       domain.FamilyStructure,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP0,
			Description:  "Primary instructions file CLAUDE.md is missing",
			SuggestedFix: "Run with --fix to generate a minimal CLAUDE.md stub",
			Detect:       absenceDetect("CLAUDE.md"),
			Fix: func(ctx *domain.RuleContext) error {
				name := projectName(ctx)
				return writeStub(ctx, "CLAUDE.md", fmt.Sprintf(`# %s

## Overview

TODO: describe what %s does and how it is structured.

## Conventions

- Keep this file current; it is the first thing read in every session.
- Record decisions in docs/DECISIONS.md as they happen.
- Append a dated entry to docs/SESSION_NOTES.md per working session.

## Commands

- TODO: list the build, test and run commands.

## Gotchas

- TODO: note anything surprising about the setup.
`, name, name))
			},
		},
		{
			Code:         "ST003",
			Name:         "missing-readme",
			Family:       domain.FamilyStructure,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP1,
			Description:  "README.md is missing",
			SuggestedFix: "Run with --fix to generate a minimal README.md stub",
			Detect:       absenceDetect("README.md"),
			Fix: func(ctx *domain.RuleContext) error {
				name := projectName(ctx)
				return writeStub(ctx, "README.md", fmt.Sprintf(
					"# %s\n\nTODO: one-paragraph description.\n\n## Getting started\n\nTODO: install and run instructions.\n", name))
			},
		},
		{
			Code:         "ST004",
			Name:         "missing-docs-dir",
			Family:       domain.FamilyStructure,
			Category:     domain.CategoryStructure,
			Severity:     domain.SeverityP1,
			Description:  "docs/ directory is missing",
			SuggestedFix: "Run with --fix to create docs/ with an index",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if dirExists(ctx, "docs") {
					return domain.OutcomePass
				}
				return domain.OutcomeViolation
			},
			Fix: func(ctx *domain.RuleContext) error {
				return writeStub(ctx, "docs/README.md",
					"# Documentation\n\nProject documentation lives here. Start with ARCHITECTURE.md and DECISIONS.md.\n")
			},
		},
		{
			Code:         "ST005",
			Name:         "leftover-template-tokens",
			Family:       domain.FamilyStructure,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP0,
			Description:  "Files still contain unsubstituted {{TOKEN}} template placeholders",
			SuggestedFix: "Replace the listed placeholders with real values",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Scan == nil {
					return domain.OutcomeSkip
				}
				for _, f := range ctx.Scan.AllFiles {
					content, ok := readFile(ctx, f)
					if !ok || domain.IsBinary([]byte(content)) {
						continue
					}
					if len(domain.LeftoverTokens(content)) > 0 {
						return domain.OutcomeViolation
					}
				}
				return domain.OutcomePass
			},
		},
	}
}
