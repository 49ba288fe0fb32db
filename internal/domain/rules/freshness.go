package rules

import (
	"time"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

const (
	instructionsMaxAge = 30 * 24 * time.Hour
	sessionNotesMaxAge = 14 * 24 * time.Hour
	readmeMaxAge       = 90 * 24 * time.Hour
)

// staleDocDetect builds a predicate that fires when the tracked doc's last
// commit is older than maxAge AND code has been committed since (a stale
// doc in a dormant project is not a finding).
func staleDocDetect(maxAge time.Duration, candidates ...string) func(*domain.RuleContext) domain.Outcome {
	return func(ctx *domain.RuleContext) domain.Outcome {
		if ctx.Git == nil || !ctx.Git.IsRepo(ctx.ProjectPath) {
			return domain.OutcomeSkip
		}
		rel := firstExisting(ctx, candidates...)
		if rel == "" {
			// Absence belongs to the structure/absence rules.
			return domain.OutcomeSkip
		}
		docTime, ok, err := ctx.Git.LastCommitTime(ctx.ProjectPath, rel)
		if err != nil || !ok {
			return domain.OutcomeSkip
		}
		if ctx.Now.Sub(docTime) <= maxAge {
			return domain.OutcomePass
		}
		// Strictly after the doc's own commit: the window is inclusive
		// and commit times have second granularity, so the commit that
		// touched the doc must not count as "code moved since".
		stats, err := ctx.Git.RecentStats(ctx.ProjectPath, docTime.Add(time.Second))
		if err != nil || stats == nil {
			return domain.OutcomeSkip
		}
		if stats.Commits > 0 {
			return domain.OutcomeViolation
		}
		return domain.OutcomePass
	}
}

// freshnessRules flag tracked documentation that has fallen behind the code.
func freshnessRules() []domain.Rule {
	return []domain.Rule{
		{
			Code:         "AP023",
			Name:         "stale-instructions",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryFreshness,
			Severity:     domain.SeverityP1,
			Description:  "CLAUDE.md has not been touched in 30 days while the code kept moving",
			SuggestedFix: "Re-read CLAUDE.md against the current code and update it",
			Detect:       staleDocDetect(instructionsMaxAge, "CLAUDE.md"),
		},
		{
			Code:         "AP024",
			Name:         "stale-session-notes",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryFreshness,
			Severity:     domain.SeverityP3,
			Description:  "Session notes are more than two weeks behind the latest work",
			SuggestedFix: "Append a dated entry to the session notes",
			Detect:       staleDocDetect(sessionNotesMaxAge, "SESSION_NOTES.md", "docs/SESSION_NOTES.md"),
		},
		{
			Code:         "AP025",
			Name:         "stale-readme",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryFreshness,
			Severity:     domain.SeverityP2,
			Description:  "README.md is more than 90 days behind the latest work",
			SuggestedFix: "Refresh README.md to match the current state of the project",
			Detect:       staleDocDetect(readmeMaxAge, "README.md"),
		},
	}
}
