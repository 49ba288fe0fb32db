package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	projectNameRe = regexp.MustCompile(`^[a-z0-9-]+$`)
	tokenRe       = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)
)

// ValidateProjectName enforces the kebab-case naming contract shared by
// boilerplate paths, package names and the initial commit message.
func ValidateProjectName(name string) error {
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match ^[a-z0-9-]+$ (lowercase, digits, hyphens)", name)
	}
	return nil
}

// PascalCase derives the PascalCase form of a kebab-case name:
// "my-app" -> "MyApp".
func PascalCase(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// VariableMap maps token names to their literal replacement values.
// Keys are fixed at build time; replacement values never contain tokens,
// so application order cannot matter.
type VariableMap map[string]string

// NewVariableMap builds the substitution map for one instantiation.
// The project name must already be validated.
func NewVariableMap(name, description string, now time.Time) (VariableMap, error) {
	if description == "" {
		description = fmt.Sprintf("%s project", name)
	}
	m := VariableMap{
		"PROJECT_NAME":        name,
		"PROJECT_NAME_PASCAL": PascalCase(name),
		"PROJECT_DESCRIPTION": description,
		"DATE":                now.Format("2006-01-02"),
		"YEAR":                now.Format("2006"),
	}
	for k, v := range m {
		if strings.Contains(v, "{{") {
			return nil, fmt.Errorf("replacement value for %s contains a token delimiter: %q", k, v)
		}
	}
	return m, nil
}

// Apply replaces every {{KEY}} occurrence for every key in the map.
// Applying to already-substituted content is a no-op.
func (m VariableMap) Apply(content string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		content = strings.ReplaceAll(content, "{{"+k+"}}", m[k])
	}
	return content
}

// LeftoverTokens returns the distinct {{TOKEN}} placeholders remaining in
// content, in order of first appearance. A non-empty result after
// instantiation is surfaced as a validation violation, not an error here.
func LeftoverTokens(content string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range tokenRe.FindAllString(content, -1) {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}

const binarySniffLen = 8 * 1024

// IsBinary reports whether data looks like a binary file (NUL byte within
// the first 8 KiB). Binary files are copied verbatim and never opened for
// substitution.
func IsBinary(data []byte) bool {
	n := len(data)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	for _, b := range data[:n] {
		if b == 0 {
			return true
		}
	}
	return false
}
