package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

func ruleWithSeverity(code string, sev domain.Severity) domain.Rule {
	return domain.Rule{
		Code:     code,
		Name:     "test-rule",
		Severity: sev,
	}
}

func TestParseSeverity(t *testing.T) {
	for raw, want := range map[string]domain.Severity{
		"P0": domain.SeverityP0,
		"p1": domain.SeverityP1,
		"P2": domain.SeverityP2,
		"p3": domain.SeverityP3,
	} {
		got, err := domain.ParseSeverity(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseSeverity("P4")
	assert.Error(t, err)
	_, err = domain.ParseSeverity("")
	assert.Error(t, err)
}

func TestReport_Record(t *testing.T) {
	r := domain.NewValidationReport("/tmp/p")

	r.Record(ruleWithSeverity("A", domain.SeverityP0), domain.OutcomePass)
	r.Record(ruleWithSeverity("B", domain.SeverityP1), domain.OutcomeSkip)
	entry := r.Record(ruleWithSeverity("C", domain.SeverityP2), domain.OutcomeViolation)

	require.NotNil(t, entry)
	assert.Equal(t, "C", entry.Code)
	assert.Equal(t, 1, r.Passed)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Total())
	assert.Equal(t, 1, r.Counts[domain.SeverityP2])
}

func TestReport_ExitCodeMatrix(t *testing.T) {
	cases := []struct {
		name       string
		severities []domain.Severity
		strict     bool
		want       int
	}{
		{"clean non-strict", nil, false, 0},
		{"clean strict", nil, true, 0},
		{"p0 only", []domain.Severity{domain.SeverityP0}, false, 1},
		{"p0 and p3 non-strict", []domain.Severity{domain.SeverityP0, domain.SeverityP3}, false, 1},
		{"p0 and p3 strict: p0 dominates", []domain.Severity{domain.SeverityP0, domain.SeverityP3}, true, 1},
		{"p1 only", []domain.Severity{domain.SeverityP1}, false, 1},
		{"p3 only non-strict", []domain.Severity{domain.SeverityP3}, false, 0},
		{"p3 only strict", []domain.Severity{domain.SeverityP3}, true, 2},
		{"p2 only strict", []domain.Severity{domain.SeverityP2}, true, 2},
		{"p2 only non-strict", []domain.Severity{domain.SeverityP2}, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := domain.NewValidationReport("/tmp/p")
			for i, sev := range tc.severities {
				r.Record(ruleWithSeverity(string(rune('A'+i)), sev), domain.OutcomeViolation)
			}
			assert.Equal(t, tc.want, r.ExitCode(tc.strict))
		})
	}
}

func TestReport_CIShape(t *testing.T) {
	r := domain.NewValidationReport("/tmp/p")
	r.Record(ruleWithSeverity("X1", domain.SeverityP0), domain.OutcomeViolation)
	r.Record(ruleWithSeverity("X2", domain.SeverityP3), domain.OutcomeViolation)

	data, err := json.Marshal(r.CI())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// The CI object shape is a contract consumed by downstream tooling.
	for _, key := range []string{"total", "p0", "p1", "p2", "p3", "patterns"} {
		assert.Contains(t, decoded, key)
	}
	assert.EqualValues(t, 2, decoded["total"])
	assert.EqualValues(t, 1, decoded["p0"])
	assert.EqualValues(t, 0, decoded["p1"])
	assert.EqualValues(t, 1, decoded["p3"])

	patterns := decoded["patterns"].([]interface{})
	require.Len(t, patterns, 2)
	first := patterns[0].(map[string]interface{})
	for _, key := range []string{"priority", "code", "name", "description", "fix"} {
		assert.Contains(t, first, key)
	}
	assert.Equal(t, "X1", first["code"])
	assert.Equal(t, "P0", first["priority"])
}

func TestReport_CIEmptyPatternsNotNull(t *testing.T) {
	r := domain.NewValidationReport("/tmp/p")
	data, err := json.Marshal(r.CI())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"patterns":[]`)
}
