// Package tui renders validation reports: a lipgloss-styled text view for
// humans and a stable JSON object for CI.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fixStyle      = lipgloss.NewStyle().Foreground(info)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityP0: lipgloss.NewStyle().Foreground(danger).Bold(true),
		domain.SeverityP1: lipgloss.NewStyle().Foreground(danger),
		domain.SeverityP2: lipgloss.NewStyle().Foreground(warning),
		domain.SeverityP3: lipgloss.NewStyle().Foreground(info),
	}
)

// RenderReport renders the human-readable view of one validation run.
func RenderReport(report *domain.ValidationReport) string {
	var b strings.Builder

	title := headerStyle.Render("groundwork")
	subtitle := dimStyle.Render("Project Validation")
	verdict := verdictLine(report)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	// ── Tallies ──
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d passed", report.Passed)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d skipped", report.Skipped)))
	for _, sev := range domain.Severities {
		if n := report.Counts[sev]; n > 0 {
			b.WriteString("  ")
			b.WriteString(severityStyles[sev].Render(fmt.Sprintf("%d %s", n, sev)))
		}
	}
	b.WriteString("\n\n")
	b.WriteString("  " + separatorLine + "\n\n")

	// ── Violations, catalog order ──
	if len(report.Violations) == 0 {
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
		return b.String()
	}

	for _, v := range report.Violations {
		renderViolation(&b, v)
	}
	return b.String()
}

func renderViolation(b *strings.Builder, v domain.Violation) {
	tag := severityStyles[v.Severity()].Render(fmt.Sprintf("[%s]", v.Priority))
	b.WriteString(fmt.Sprintf("  %s %s %s\n", tag, titleStyle.Render(v.Code), v.Name))
	b.WriteString("      " + dimStyle.Render(v.Description) + "\n")
	if v.Fix != "" {
		b.WriteString("      " + fixStyle.Render("fix: "+v.Fix) + "\n")
	}
	switch {
	case v.FixApplied:
		b.WriteString("      " + passStyle.Render("✓ remediated") + "\n")
	case v.FixError != "":
		b.WriteString("      " + severityStyles[domain.SeverityP1].Render("✗ fix failed: "+v.FixError) + "\n")
	}
	b.WriteString("\n")
}

func verdictLine(report *domain.ValidationReport) string {
	if len(report.Violations) == 0 {
		return passStyle.Bold(true).Render("PASS")
	}
	if report.Counts[domain.SeverityP0] > 0 || report.Counts[domain.SeverityP1] > 0 {
		return severityStyles[domain.SeverityP0].Render(fmt.Sprintf("FAIL  %d violations", len(report.Violations)))
	}
	return severityStyles[domain.SeverityP2].Render(fmt.Sprintf("WARN  %d violations", len(report.Violations)))
}

// RenderCI encodes the report as the machine-readable CI object. The shape
// is a contract consumed by downstream tooling; output is deterministic.
func RenderCI(report *domain.ValidationReport) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.CI()); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderWarnings renders instantiation warnings (git or dependency-install
// failures that did not abort init).
func RenderWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString("  " + severityStyles[domain.SeverityP2].Render("warning: ") + dimStyle.Render(w) + "\n")
	}
	return b.String()
}
