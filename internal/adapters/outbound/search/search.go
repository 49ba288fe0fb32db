// Package search implements the domain.ContentSearcher capability.
// FileSearcher is the default pure-Go implementation; Noop stands in when
// content searching is unavailable so heuristics degrade to skip instead
// of reporting false violations.
package search

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

// maxFileSize caps how much of a file is inspected per pattern.
const maxFileSize = 1 << 20 // 1 MiB

// FileSearcher scans file contents with Go regexps.
type FileSearcher struct{}

func New() *FileSearcher { return &FileSearcher{} }

func (s *FileSearcher) Available() bool { return true }

func (s *FileSearcher) CountMatching(root string, files []string, pattern string) (int, int, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return 0, 0, err
	}

	var matched, inspected int
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			continue
		}
		if len(data) > maxFileSize {
			data = data[:maxFileSize]
		}
		if domain.IsBinary(data) {
			continue
		}
		inspected++
		if re.Match(data) {
			matched++
		}
	}
	return matched, inspected, nil
}

// Noop is the skip implementation injected when searching is disabled.
type Noop struct{}

func (Noop) Available() bool { return false }

func (Noop) CountMatching(string, []string, string) (int, int, error) {
	return 0, 0, nil
}
