package domain

// Violation is one detected rule violation, in catalog declaration order.
type Violation struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
	Fix         string `json:"fix"`
	FixApplied  bool   `json:"fix_applied,omitempty"`
	FixError    string `json:"fix_error,omitempty"`
	severity    Severity
}

// NewViolation records a violation of the given rule.
func NewViolation(r Rule) Violation {
	return Violation{
		Code:        r.Code,
		Name:        r.Name,
		Priority:    r.Severity.String(),
		Description: r.Description,
		Fix:         r.SuggestedFix,
		severity:    r.Severity,
	}
}

func (v Violation) Severity() Severity { return v.severity }

// ValidationReport aggregates one validation run. Built fresh per run,
// rendered, then discarded; never persisted.
type ValidationReport struct {
	ProjectPath string
	Passed      int
	Skipped     int
	Counts      map[Severity]int
	Violations  []Violation
}

func NewValidationReport(projectPath string) *ValidationReport {
	return &ValidationReport{
		ProjectPath: projectPath,
		Counts:      make(map[Severity]int),
	}
}

// Record folds one rule outcome into the report.
func (r *ValidationReport) Record(rule Rule, outcome Outcome) *Violation {
	switch outcome {
	case OutcomePass:
		r.Passed++
	case OutcomeSkip:
		r.Skipped++
	case OutcomeViolation:
		r.Counts[rule.Severity]++
		r.Violations = append(r.Violations, NewViolation(rule))
		return &r.Violations[len(r.Violations)-1]
	}
	return nil
}

func (r *ValidationReport) Total() int { return len(r.Violations) }

// ExitCode implements the three-tier CI policy:
// 0 = clean (or only P2/P3 findings outside strict mode),
// 1 = any P0 or P1 violation,
// 2 = only P2/P3 violations, strict mode enabled.
func (r *ValidationReport) ExitCode(strict bool) int {
	if r.Counts[SeverityP0] > 0 || r.Counts[SeverityP1] > 0 {
		return 1
	}
	if strict && (r.Counts[SeverityP2] > 0 || r.Counts[SeverityP3] > 0) {
		return 2
	}
	return 0
}

// CIReport is the machine-readable report shape. Downstream tooling parses
// this object; field names and order are a stable contract.
type CIReport struct {
	Total    int         `json:"total"`
	P0       int         `json:"p0"`
	P1       int         `json:"p1"`
	P2       int         `json:"p2"`
	P3       int         `json:"p3"`
	Patterns []Violation `json:"patterns"`
}

// CI projects the report onto the CI contract. Patterns is never null in
// the JSON encoding.
func (r *ValidationReport) CI() CIReport {
	patterns := r.Violations
	if patterns == nil {
		patterns = []Violation{}
	}
	return CIReport{
		Total:    r.Total(),
		P0:       r.Counts[SeverityP0],
		P1:       r.Counts[SeverityP1],
		P2:       r.Counts[SeverityP2],
		P3:       r.Counts[SeverityP3],
		Patterns: patterns,
	}
}
