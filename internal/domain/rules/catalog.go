// Package rules holds the fixed, ordered catalog of validation rules:
// hard structure requirements first, then the anti-pattern heuristics
// grouped by detection technique. Report ordering follows catalog order,
// so the catalog itself is the single source of output determinism.
package rules

import "github.com/groundwork-cli/groundwork/internal/domain"

// Catalog returns the full rule list in evaluation order.
func Catalog() []domain.Rule {
	var out []domain.Rule
	out = append(out, structureRules()...)
	out = append(out, absenceRules()...)
	out = append(out, contentRules()...)
	out = append(out, gitHistoryRules()...)
	out = append(out, freshnessRules()...)
	return out
}

// AntiPatterns returns only the heuristic rules, in catalog order.
func AntiPatterns() []domain.Rule {
	var out []domain.Rule
	for _, r := range Catalog() {
		if r.Family == domain.FamilyAntiPattern {
			out = append(out, r)
		}
	}
	return out
}

// Codes returns the set of known rule codes, for config validation.
func Codes() map[string]bool {
	codes := make(map[string]bool)
	for _, r := range Catalog() {
		codes[r.Code] = true
	}
	return codes
}
