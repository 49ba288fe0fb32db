package application

import (
	"fmt"
	"os"
	"time"

	"github.com/groundwork-cli/groundwork/internal/domain"
	"github.com/groundwork-cli/groundwork/internal/domain/rules"
)

// ConfigLoader loads the per-project policy file.
type ConfigLoader interface {
	Load(projectPath string) (domain.PolicyConfig, error)
}

// ValidateOptions controls one validation run.
type ValidateOptions struct {
	Strict bool
	Fix    bool
	// Priority restricts evaluation to a single severity tier.
	Priority *domain.Severity
	// AntiPatternsOnly restricts the catalog to heuristic rules.
	AntiPatternsOnly bool
	// Kind overrides manifest-based kind detection when the caller already
	// knows it (the instantiation engine does).
	Kind domain.Kind
}

// ValidationRun couples a report with the effective strictness so callers
// get the exit code from one place.
type ValidationRun struct {
	Report *domain.ValidationReport
	Strict bool
}

func (r *ValidationRun) ExitCode() int { return r.Report.ExitCode(r.Strict) }

// ValidateService evaluates the rule catalog against a project tree.
// Evaluation is single-threaded in catalog declaration order, which makes
// report ordering deterministic by construction.
type ValidateService struct {
	scanner  domain.ProjectScanner
	searcher domain.ContentSearcher
	git      domain.GitInspector
	configs  ConfigLoader
	now      func() time.Time
}

func NewValidateService(
	scanner domain.ProjectScanner,
	searcher domain.ContentSearcher,
	git domain.GitInspector,
	configs ConfigLoader,
) *ValidateService {
	return &ValidateService{
		scanner:  scanner,
		searcher: searcher,
		git:      git,
		configs:  configs,
		now:      time.Now,
	}
}

// WithClock fixes the evaluation timestamp; freshness heuristics compare
// against it. Intended for tests.
func (s *ValidateService) WithClock(now func() time.Time) *ValidateService {
	s.now = now
	return s
}

// Validate runs the catalog. Violations never abort evaluation: every rule
// runs so the report is a complete picture. Fix failures are recorded on
// the violation entry, and a fixed violation stays in the report as an
// honest record of what was found.
func (s *ValidateService) Validate(projectPath string, opts ValidateOptions) (*ValidationRun, error) {
	if _, err := os.Stat(projectPath); err != nil {
		return nil, fmt.Errorf("project path %s: %w", projectPath, err)
	}

	cfg, err := s.configs.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading policy config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg.ExcludePaths)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	kind := opts.Kind
	if kind == domain.KindUnknown {
		kind = domain.DetectKind(projectPath)
	}

	ctx := &domain.RuleContext{
		ProjectPath: projectPath,
		Scan:        scan,
		Kind:        kind,
		Searcher:    s.searcher,
		Git:         s.git,
		Now:         s.now(),
	}

	catalog := rules.Catalog()
	if opts.AntiPatternsOnly {
		catalog = rules.AntiPatterns()
	}

	report := domain.NewValidationReport(projectPath)
	for _, rule := range catalog {
		if opts.Priority != nil && rule.Severity != *opts.Priority {
			continue
		}
		if cfg.Disabled(rule.Code) {
			report.Record(rule, domain.OutcomeSkip)
			continue
		}

		entry := report.Record(rule, rule.Detect(ctx))
		if entry == nil || !opts.Fix || rule.Fix == nil {
			continue
		}
		// Fixes run serially so two rules can never race on one path.
		if err := rule.Fix(ctx); err != nil {
			entry.FixError = err.Error()
		} else {
			entry.FixApplied = true
		}
	}

	return &ValidationRun{Report: report, Strict: opts.Strict || cfg.Strict}, nil
}
