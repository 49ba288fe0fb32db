package rules

import (
	"regexp"
	"time"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

const (
	historyWindow      = 14 * 24 * time.Hour
	vagueSubjectRatio  = 0.40
	monsterCommitFiles = 20
	churnRatio         = 3.0
	dirtyFileLimit     = 25
)

var vagueSubjectRe = regexp.MustCompile(`(?i)^(wip|fix|fixes|update|updates|stuff|misc|changes|tmp)\b`)

// recentStats fetches the recent-history summary, mapping every
// unavailability (no git port, not a repo, empty history, errors) to nil.
func recentStats(ctx *domain.RuleContext) *domain.GitStats {
	if ctx.Git == nil || !ctx.Git.IsRepo(ctx.ProjectPath) {
		return nil
	}
	stats, err := ctx.Git.RecentStats(ctx.ProjectPath, ctx.Now.Add(-historyWindow))
	if err != nil || stats == nil || stats.Commits == 0 {
		return nil
	}
	return stats
}

// gitHistoryRules read recent commit history. Every rule degrades to Skip
// when the project is not a repository or has no commits in the window:
// missing history is not a violation.
func gitHistoryRules() []domain.Rule {
	return []domain.Rule{
		{
			Code:         "AP018",
			Name:         "docs-never-updated",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryGit,
			Severity:     domain.SeverityP1,
			Description:  "Recent commits change code but never touch documentation",
			SuggestedFix: "Update CLAUDE.md/docs alongside code changes",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				stats := recentStats(ctx)
				if stats == nil {
					return domain.OutcomeSkip
				}
				if stats.Commits >= 3 && stats.DocsModified == 0 {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP019",
			Name:         "vague-commit-messages",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryGit,
			Severity:     domain.SeverityP2,
			Description:  "A large share of recent commit subjects are vague (wip, fix, update...)",
			SuggestedFix: "Write commit subjects that say what changed and why",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				stats := recentStats(ctx)
				if stats == nil || len(stats.Subjects) == 0 {
					return domain.OutcomeSkip
				}
				var vague int
				for _, s := range stats.Subjects {
					if vagueSubjectRe.MatchString(s) {
						vague++
					}
				}
				if float64(vague)/float64(len(stats.Subjects)) > vagueSubjectRatio {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP020",
			Name:         "monster-commit",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryGit,
			Severity:     domain.SeverityP2,
			Description:  "A recent commit touches more than 20 files",
			SuggestedFix: "Commit in smaller, reviewable steps",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				stats := recentStats(ctx)
				if stats == nil {
					return domain.OutcomeSkip
				}
				if stats.MaxCommitFiles > monsterCommitFiles {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP021",
			Name:         "add-heavy-churn",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryGit,
			Severity:     domain.SeverityP3,
			Description:  "Recent history adds far more files than it modifies; nothing is being maintained",
			SuggestedFix: "Revisit and consolidate existing files instead of only adding new ones",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				stats := recentStats(ctx)
				if stats == nil || stats.ModifiedFiles == 0 {
					return domain.OutcomeSkip
				}
				if float64(stats.AddedFiles)/float64(stats.ModifiedFiles) > churnRatio {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
		{
			Code:         "AP022",
			Name:         "dirty-worktree",
			Family:       domain.FamilyAntiPattern,
			Category:     domain.CategoryGit,
			Severity:     domain.SeverityP2,
			Description:  "The worktree carries a large pile of uncommitted changes",
			SuggestedFix: "Commit or stash the pending changes",
			Detect: func(ctx *domain.RuleContext) domain.Outcome {
				if ctx.Git == nil || !ctx.Git.IsRepo(ctx.ProjectPath) {
					return domain.OutcomeSkip
				}
				dirty, err := ctx.Git.DirtyFiles(ctx.ProjectPath)
				if err != nil {
					return domain.OutcomeSkip
				}
				if dirty > dirtyFileLimit {
					return domain.OutcomeViolation
				}
				return domain.OutcomePass
			},
		},
	}
}
