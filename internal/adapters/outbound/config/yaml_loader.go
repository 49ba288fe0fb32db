// Package config loads the optional per-project policy file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/groundwork-cli/groundwork/internal/domain"
	"github.com/groundwork-cli/groundwork/internal/domain/rules"
)

const fileName = ".groundwork.yaml"

// YAMLLoader reads .groundwork.yaml from a project root.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the policy file from projectPath. Returns the default policy
// when the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.PolicyConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultPolicyConfig(), nil
		}
		return domain.PolicyConfig{}, err
	}

	var cfg domain.PolicyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.PolicyConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before use; catches typos in the user's raw input.
	if err := cfg.Validate(rules.Codes()); err != nil {
		return domain.PolicyConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
