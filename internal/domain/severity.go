package domain

import "fmt"

// Severity is the four-tier priority scale driving report grouping and the
// exit-code policy. Lower value = more severe.
type Severity int

const (
	SeverityP0 Severity = iota // never-do, build-breaking
	SeverityP1                 // very important
	SeverityP2                 // important
	SeverityP3                 // nice-to-have
)

var severityNames = [...]string{"P0", "P1", "P2", "P3"}

func (s Severity) String() string {
	if s < SeverityP0 || s > SeverityP3 {
		return fmt.Sprintf("P?(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity parses "P0".."P3" (case-insensitive on the letter).
func ParseSeverity(raw string) (Severity, error) {
	switch raw {
	case "P0", "p0":
		return SeverityP0, nil
	case "P1", "p1":
		return SeverityP1, nil
	case "P2", "p2":
		return SeverityP2, nil
	case "P3", "p3":
		return SeverityP3, nil
	}
	return 0, fmt.Errorf("unknown severity %q (valid: P0, P1, P2, P3)", raw)
}

// Severities lists all tiers in order, for deterministic iteration.
var Severities = []Severity{SeverityP0, SeverityP1, SeverityP2, SeverityP3}
