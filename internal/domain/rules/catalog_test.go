package rules_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundwork-cli/groundwork/internal/domain"
	"github.com/groundwork-cli/groundwork/internal/domain/rules"
)

func findRule(t *testing.T, code string) domain.Rule {
	t.Helper()
	for _, r := range rules.Catalog() {
		if r.Code == code {
			return r
		}
	}
	t.Fatalf("rule %s not in catalog", code)
	return domain.Rule{}
}

// ctxFor builds a minimal rule context over a real directory tree.
func ctxFor(t *testing.T, root string, kind domain.Kind) *domain.RuleContext {
	t.Helper()
	var scan domain.ScanResult
	scan.RootPath = root
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)
		scan.AllFiles = append(scan.AllFiles, rel)
		switch filepath.Ext(rel) {
		case ".js", ".jsx", ".ts", ".tsx", ".py", ".go", ".css":
			scan.SourceFiles = append(scan.SourceFiles, rel)
		case ".md":
			scan.DocFiles = append(scan.DocFiles, rel)
		}
		return nil
	})
	require.NoError(t, err)

	return &domain.RuleContext{
		ProjectPath: root,
		Scan:        &scan,
		Kind:        kind,
		Now:         time.Now(),
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestCatalog_ShapeAndOrder(t *testing.T) {
	catalog := rules.Catalog()
	assert.Len(t, catalog, 30)

	seen := make(map[string]bool)
	structureDone := false
	for _, r := range catalog {
		assert.False(t, seen[r.Code], "duplicate code %s", r.Code)
		seen[r.Code] = true
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Description)
		assert.NotNil(t, r.Detect, r.Code)

		if r.Family == domain.FamilyAntiPattern {
			structureDone = true
		} else {
			assert.False(t, structureDone, "structure rule %s after anti-patterns", r.Code)
		}
	}
}

func TestCatalog_AntiPatternsFilter(t *testing.T) {
	aps := rules.AntiPatterns()
	assert.Len(t, aps, 25)
	for _, r := range aps {
		assert.Equal(t, domain.FamilyAntiPattern, r.Family, r.Code)
	}
}

func TestCatalog_Codes(t *testing.T) {
	codes := rules.Codes()
	assert.True(t, codes["ST001"])
	assert.True(t, codes["AP025"])
	assert.False(t, codes["AP026"])
}

func TestStructureRules_EmptyProject(t *testing.T) {
	dir := t.TempDir()
	ctx := ctxFor(t, dir, domain.KindUnknown)

	for _, code := range []string{"ST001", "ST002", "ST003", "ST004"} {
		assert.Equal(t, domain.OutcomeViolation, findRule(t, code).Detect(ctx), code)
	}
}

func TestStructureRules_CompleteProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "x"}`)
	writeFile(t, dir, "CLAUDE.md", "# x\n")
	writeFile(t, dir, "README.md", "# x\n")
	writeFile(t, dir, "docs/README.md", "# docs\n")
	ctx := ctxFor(t, dir, domain.KindWebapp)

	for _, code := range []string{"ST001", "ST002", "ST003", "ST004", "ST005"} {
		assert.Equal(t, domain.OutcomePass, findRule(t, code).Detect(ctx), code)
	}
}

func TestLeftoverTokenRule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# {{PROJECT_NAME}}\n")
	ctx := ctxFor(t, dir, domain.KindUnknown)

	assert.Equal(t, domain.OutcomeViolation, findRule(t, "ST005").Detect(ctx))
}

func TestStructureFixes_WriteStubs(t *testing.T) {
	dir := t.TempDir()
	ctx := ctxFor(t, dir, domain.KindWebapp)

	for _, code := range []string{"ST002", "ST003", "ST004"} {
		rule := findRule(t, code)
		require.NotNil(t, rule.Fix, code)
		require.NoError(t, rule.Fix(ctx), code)
	}

	// Re-scan: stubs must satisfy their own detection.
	ctx = ctxFor(t, dir, domain.KindWebapp)
	for _, code := range []string{"ST002", "ST003", "ST004"} {
		assert.Equal(t, domain.OutcomePass, findRule(t, code).Detect(ctx), code)
	}
}

func TestAbsenceRules(t *testing.T) {
	dir := t.TempDir()
	ctx := ctxFor(t, dir, domain.KindWebapp)

	for _, code := range []string{"AP001", "AP002", "AP003", "AP004", "AP005", "AP006", "AP007"} {
		assert.Equal(t, domain.OutcomeViolation, findRule(t, code).Detect(ctx), code)
	}
	// docs/ does not exist: emptiness rule is not applicable.
	assert.Equal(t, domain.OutcomeSkip, findRule(t, "AP008").Detect(ctx))
}

func TestAbsenceRules_Satisfied(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "node_modules/\n")
	writeFile(t, dir, "tests/app.test.js", "test()\n")
	writeFile(t, dir, "docs/ARCHITECTURE.md", "# arch\n")
	writeFile(t, dir, "docs/DECISIONS.md", "# log\n")
	writeFile(t, dir, "docs/SESSION_NOTES.md", "# notes\n")
	writeFile(t, dir, "LICENSE", "MIT\n")
	writeFile(t, dir, "CHANGELOG.md", "# changes\n")
	ctx := ctxFor(t, dir, domain.KindWebapp)

	for _, code := range []string{"AP001", "AP002", "AP003", "AP004", "AP005", "AP006", "AP007", "AP008"} {
		assert.Equal(t, domain.OutcomePass, findRule(t, code).Detect(ctx), code)
	}
}

func TestNoTestsRule_SkipsWebsite(t *testing.T) {
	dir := t.TempDir()
	ctx := ctxFor(t, dir, domain.KindWebsite)
	assert.Equal(t, domain.OutcomeSkip, findRule(t, "AP002").Detect(ctx))
}

func TestEmptyDocsDirRule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	ctx := ctxFor(t, dir, domain.KindWebapp)

	assert.Equal(t, domain.OutcomeViolation, findRule(t, "AP008").Detect(ctx))
}

func TestAbsenceFixes_Converge(t *testing.T) {
	dir := t.TempDir()
	ctx := ctxFor(t, dir, domain.KindPythonCLI)

	for _, code := range []string{"AP001", "AP003", "AP004", "AP005", "AP007"} {
		rule := findRule(t, code)
		require.NotNil(t, rule.Fix, code)
		require.NoError(t, rule.Fix(ctx), code)
	}

	ctx = ctxFor(t, dir, domain.KindPythonCLI)
	for _, code := range []string{"AP001", "AP003", "AP004", "AP005", "AP007"} {
		assert.Equal(t, domain.OutcomePass, findRule(t, code).Detect(ctx), code)
	}
}
