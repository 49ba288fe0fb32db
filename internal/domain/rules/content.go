package rules

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/groundwork-cli/groundwork/internal/domain"
)

const (
	todoRatioThreshold       = 0.50
	debugPrintRatioThreshold = 0.30
	commentedCodeThreshold   = 0.25
	anyTypeRatioThreshold    = 0.25
	oversizedFileLines       = 800
	thinInstructionsLines    = 10
)

// ratioDetect builds a Detect predicate that fires when more than
// threshold of the candidate files match pattern. Skips when the searcher
// is unavailable or there is nothing to inspect.
func ratioDetect(pattern string, threshold float64, pick func(*domain.RuleContext) []string) func(*domain.RuleContext) domain.Outcome {
	return func(ctx *domain.RuleContext) domain.Outcome {
		if ctx.Searcher == nil || !ctx.Searcher.Available() || ctx.Scan == nil {
			return domain.OutcomeSkip
		}
		files := pick(ctx)
		if len(files) == 0 {
			return domain.OutcomeSkip
		}
		matched, inspected, err := ctx.Searcher.CountMatching(ctx.ProjectPath, files, pattern)
		if err != nil || inspected == 0 {
			return domain.OutcomeSkip
		}
		if float64(matched)/float64(inspected) > threshold {
			return domain.OutcomeViolation
		}
		return domain.OutcomePass
	}
}

// contentRules are ratio and pattern heuristics over file contents.
func contentRules() []domain.Rule {
	allSource := func(ctx *domain.RuleContext) []string { return sourceFiles(ctx) }

	return []domain.Rule{
		{
			Code:         "AP009",
			Name:         "todo-density",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP2,
			Description:  "More than half of the source files carry TODO/FIXME markers",
			SuggestedFix: "Burn down the TODO backlog or move items into docs/DECISIONS.md",
			Detect:       ratioDetect(`(TODO|FIXME)\b`, todoRatioThreshold, allSource),
		},
		{
			Code:         "AP010",
			Name:         "debug-print-density",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP2,
			Description:  "Debug print statements are spread across a large share of the source files",
			SuggestedFix: "Remove console.log/print debugging or switch to a logger",
			Detect: ratioDetect(`(console\.(log|debug)\(|^\s*print\()`, debugPrintRatioThreshold,
				func(ctx *domain.RuleContext) []string {
					return sourceFiles(ctx, ".js", ".jsx", ".ts", ".tsx", ".py")
				}),
		},
		{
			Code:         "AP011",
			Name:         "placeholder-text",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP2,
			Description:  "Placeholder copy (lorem ipsum, coming soon, TBD) is still present",
			SuggestedFix: "Replace placeholder copy with real content",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Searcher == nil || !ctx.Searcher.Available() || ctx.Scan == nil {
					return domain.OutcomeSkip
				}
				files := append([]string{}, ctx.Scan.DocFiles...)
				files = append(files, sourceFiles(ctx, ".html", ".jsx", ".tsx")...)
				if len(files) == 0 {
					return domain.OutcomeSkip
				}
				matched, _, err := ctx.Searcher.CountMatching(ctx.ProjectPath, files, `(?i)(lorem ipsum|coming soon|\bTBD\b)`)
				if err != nil {
					return domain.OutcomeSkip
				}
				if matched > 0 {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP012",
			Name:         "commented-out-code",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP3,
			Description:  "A large share of source files contain commented-out code blocks",
			SuggestedFix: "Delete dead code; git history keeps it",
			Detect: ratioDetect(`^\s*(//|#)\s*(if|for|while|return|def |function |const |let |var )`,
				commentedCodeThreshold, allSource),
		},
		{
			Code:         "AP013",
			Name:         "mixed-file-naming",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP3,
			Description:  "Source file names mix camelCase with snake/kebab-case",
			SuggestedFix: "Pick one file naming convention and rename the outliers",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Scan == nil || len(ctx.Scan.SourceFiles) < 2 {
					return domain.OutcomeSkip
				}
				var camel, lower int
				for _, f := range ctx.Scan.SourceFiles {
					base := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
					if base == "" {
						continue
					}
					if isCamelCaseName(base) {
						camel++
					} else {
						lower++
					}
				}
				if camel > 0 && lower > 0 {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP014",
			Name:         "oversized-source-file",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP2,
			Description:  "A source file exceeds 800 lines",
			SuggestedFix: "Split the file along its responsibilities",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Scan == nil || len(ctx.Scan.SourceFiles) == 0 {
					return domain.OutcomeSkip
				}
				for _, f := range ctx.Scan.SourceFiles {
					content, ok := readFile(ctx, f)
					if !ok {
						continue
					}
					if strings.Count(content, "\n") >= oversizedFileLines {
						return domain.OutcomeViolation
					}
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP015",
			Name:         "hardcoded-credentials",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP0,
			Description:  "Source files contain what looks like a hardcoded secret or API key",
			SuggestedFix: "Move secrets to environment variables and rotate the exposed ones",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Searcher == nil || !ctx.Searcher.Available() || ctx.Scan == nil {
					return domain.OutcomeSkip
				}
				files := sourceFiles(ctx)
				if len(files) == 0 {
					return domain.OutcomeSkip
				}
				matched, _, err := ctx.Searcher.CountMatching(ctx.ProjectPath, files,
					`(?i)(api[_-]?key|secret|password|token)\s*[:=]\s*["'][A-Za-z0-9+/_-]{16,}["']`)
				if err != nil {
					return domain.OutcomeSkip
				}
				if matched > 0 {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP016",
			Name:         "typescript-any-density",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP2,
			Description:  "More than a quarter of TypeScript files fall back to the any type",
			SuggestedFix: "Replace any with concrete types or unknown",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Kind != domain.KindWebapp {
					return domain.OutcomeSkip
				}
				return ratioDetect(`:\s*any\b`, anyTypeRatioThreshold,
					func(ctx *domain.RuleContext) []string {
						return sourceFiles(ctx, ".ts", ".tsx")
					})(ctx)
			},
		},
		{
			Code:         "AP017",
			Name:         "thin-instructions",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryContent,
			Severity:     domain.SeverityP1,
			Description:  "CLAUDE.md exists but is too thin to guide anyone",
			SuggestedFix: "Document overview, conventions and commands in CLAUDE.md",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				content, ok := readFile(ctx, "CLAUDE.md")
				if !ok {
					// Absence is ST002's finding.
					return domain.OutcomeSkip
				}
				var lines int
				for _, l := range strings.Split(content, "\n") {
					if strings.TrimSpace(l) != "" {
						lines++
					}
				}
				if lines < thinInstructionsLines {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
	}
}

// isCamelCaseName reports whether a file base name is a multi-word
// camelCase identifier (e.g. "userService"), as opposed to snake_case,
// kebab-case or a single lowercase word.
func isCamelCaseName(name string) bool {
	if strings.ContainsAny(name, "-_.") {
		return false
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			return len(camelcase.Split(name)) >= 2
		}
	}
	return false
}
