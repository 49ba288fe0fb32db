// Package scanner walks a project tree and builds the file inventory the
// rule catalog evaluates against.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	".venv":        true,
	".next":        true,
}

var sourceExts = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".py":  true,
	".go":  true,
	".css": true,
	".vue": true,
}

// FileScanner implements domain.ProjectScanner with a single recursive walk.
type FileScanner struct{}

func New() *FileScanner { return &FileScanner{} }

func (s *FileScanner) Scan(projectPath string, excludePaths []string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(absPath, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && (skipDirs[d.Name()] || extraSkip[rel]) {
				return filepath.SkipDir
			}
			return nil
		}
		if extraSkip[rel] {
			return nil
		}

		result.AllFiles = append(result.AllFiles, rel)

		ext := filepath.Ext(d.Name())
		switch {
		case sourceExts[ext]:
			result.SourceFiles = append(result.SourceFiles, rel)
		case ext == ".md" || ext == ".rst" || ext == ".txt":
			result.DocFiles = append(result.DocFiles, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
