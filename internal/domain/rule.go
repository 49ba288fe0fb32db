package domain

import "time"

// Family separates hard structural requirements from heuristic anti-patterns.
// The anti-patterns command evaluates only FamilyAntiPattern rules.
type Family string

const (
	FamilyStructure   Family = "structure"
	FamilyAntiPattern Family = "anti-pattern"
)

// Category is the detection technique a rule uses.
type Category string

const (
	CategoryStructure Category = "structure"
	CategoryContent   Category = "content-pattern"
	CategoryGit       Category = "git-heuristic"
	CategoryFreshness Category = "freshness"
)

// Outcome is the tri-state result of a detection predicate. Unavailable
// tooling or missing input maps to OutcomeSkip, never OutcomeViolation.
type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeViolation
	OutcomeSkip
)

// Rule is one declarative validation check. Detect returns OutcomeViolation
// when the problem is PRESENT. Fix is nil when no remediation exists.
// Rules are stateless; Fix is the only operation allowed side effects.
type Rule struct {
	Code         string
	Name         string
	Family       Family
	Category     Category
	Severity     Severity
	Description  string
	SuggestedFix string
	Detect       func(*RuleContext) Outcome
	Fix          func(*RuleContext) error
}

// RuleContext carries everything a rule may consult: the scanned tree and
// the injected capability ports. Ports may be nil or unavailable; rules
// must degrade to OutcomeSkip in that case.
type RuleContext struct {
	ProjectPath string
	Scan        *ScanResult
	Kind        Kind
	Searcher    ContentSearcher
	Git         GitInspector
	Now         time.Time
}

// ProjectScanner walks a project tree and returns the file inventory rules
// evaluate against.
type ProjectScanner interface {
	Scan(projectPath string, excludePaths []string) (*ScanResult, error)
}

// ScanResult is the file inventory of one project tree. Paths are relative
// to the root, slash-separated, in walk order.
type ScanResult struct {
	RootPath    string
	AllFiles    []string
	SourceFiles []string
	DocFiles    []string
}

// ContentSearcher is the capability port for content-pattern heuristics.
// Available reports whether searching can run at all; rules skip when it
// returns false.
type ContentSearcher interface {
	Available() bool
	// CountMatching returns how many of the given files (relative to root)
	// contain at least one match of the regex pattern, along with the number
	// of files actually inspected.
	CountMatching(root string, files []string, pattern string) (matched, inspected int, err error)
}

// GitInspector is the capability port for git-history and freshness
// heuristics, plus repository initialization during instantiation.
type GitInspector interface {
	IsRepo(projectPath string) bool
	// RecentStats summarizes commits newer than since.
	RecentStats(projectPath string, since time.Time) (*GitStats, error)
	// LastCommitTime returns the committer time of the newest commit touching
	// relPath. ok is false when no commit touches the file.
	LastCommitTime(projectPath, relPath string) (t time.Time, ok bool, err error)
	// DirtyFiles counts worktree entries that differ from HEAD.
	DirtyFiles(projectPath string) (int, error)
}

// GitStats summarizes a window of repository history.
type GitStats struct {
	Commits        int
	AddedFiles     int
	ModifiedFiles  int
	DocsModified   int
	MaxCommitFiles int
	Subjects       []string
}
