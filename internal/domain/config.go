package domain

import "fmt"

// PolicyConfig is the optional per-project policy file (.groundwork.yaml).
// Zero value = defaults: every rule enabled, nothing excluded, non-strict.
type PolicyConfig struct {
	ExcludePaths  []string `yaml:"exclude_paths"`
	DisabledRules []string `yaml:"disabled_rules"`
	Strict        bool     `yaml:"strict"`
}

// DefaultPolicyConfig returns the configuration used when no policy file
// exists in the project.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{}
}

// Validate catches typos in the raw user input before it is applied.
// knownCodes is the set of catalog rule codes.
func (c PolicyConfig) Validate(knownCodes map[string]bool) error {
	for _, code := range c.DisabledRules {
		if !knownCodes[code] {
			return fmt.Errorf("disabled_rules: unknown rule code %q", code)
		}
	}
	return nil
}

// Disabled reports whether a rule code is switched off by this config.
func (c PolicyConfig) Disabled(code string) bool {
	for _, d := range c.DisabledRules {
		if d == code {
			return true
		}
	}
	return false
}
