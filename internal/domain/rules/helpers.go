package rules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

func fileExists(ctx *domain.RuleContext, rel string) bool {
	info, err := os.Stat(filepath.Join(ctx.ProjectPath, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}

func dirExists(ctx *domain.RuleContext, rel string) bool {
	info, err := os.Stat(filepath.Join(ctx.ProjectPath, filepath.FromSlash(rel)))
	return err == nil && info.IsDir()
}

func readFile(ctx *domain.RuleContext, rel string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(ctx.ProjectPath, filepath.FromSlash(rel)))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func writeStub(ctx *domain.RuleContext, rel, content string) error {
	abs := filepath.Join(ctx.ProjectPath, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	return os.WriteFile(abs, []byte(content), 0o644)
}

// projectName is the display name used in generated stubs.
func projectName(ctx *domain.RuleContext) string {
	return filepath.Base(ctx.ProjectPath)
}

// absenceDetect builds a Detect predicate for a required file.
func absenceDetect(rel string) func(*domain.RuleContext) domain.Outcome {
	return func(ctx *domain.RuleContext) domain.Outcome {
		if fileExists(ctx, rel) {
			return domain.OutcomePass
		}
		return domain.OutcomeViolation
	}
}

// firstExisting returns the first of the candidate paths present in the
// project, or "" when none exists.
func firstExisting(ctx *domain.RuleContext, candidates ...string) string {
	for _, c := range candidates {
		if fileExists(ctx, c) {
			return c
		}
	}
	return ""
}

// sourceFiles filters the scan's source inventory to the given extensions;
// with no extensions it returns all source files.
func sourceFiles(ctx *domain.RuleContext, exts ...string) []string {
	if ctx.Scan == nil {
		return nil
	}
	if len(exts) == 0 {
		return ctx.Scan.SourceFiles
	}
	var out []string
	for _, f := range ctx.Scan.SourceFiles {
		for _, ext := range exts {
			if strings.HasSuffix(f, ext) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
