package application

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

// BoilerplateStore resolves a kind to its read-only template tree.
type BoilerplateStore interface {
	Resolve(kind domain.Kind) (fs.FS, error)
}

// TreeCopier materializes a template tree at a non-existing target path.
type TreeCopier interface {
	Copy(src fs.FS, targetPath string) error
}

// RepoInitializer creates the project's git repository and initial commit.
type RepoInitializer interface {
	IsRepo(path string) bool
	InitAndCommit(path, message string) error
}

// DependencyInstaller invokes the ecosystem package manager.
type DependencyInstaller interface {
	Install(ctx context.Context, projectPath string, kind domain.Kind) error
}

// InitOptions carries the optional knobs of one instantiation.
type InitOptions struct {
	Description string
	SkipDeps    bool
}

// InitService is the template instantiation engine:
// copy → substitute → git init → dependency install → sanity validation.
// Copy and substitution failures roll the target back completely; git and
// dependency failures degrade to warnings because both are recoverable by
// the caller.
type InitService struct {
	store    BoilerplateStore
	copier   TreeCopier
	git      RepoInitializer
	deps     DependencyInstaller
	validate *ValidateService
	now      func() time.Time
}

func NewInitService(
	store BoilerplateStore,
	copier TreeCopier,
	git RepoInitializer,
	deps DependencyInstaller,
	validate *ValidateService,
) *InitService {
	return &InitService{
		store:    store,
		copier:   copier,
		git:      git,
		deps:     deps,
		validate: validate,
		now:      time.Now,
	}
}

// WithClock fixes the timestamp used for DATE/YEAR tokens. Intended for
// tests.
func (s *InitService) WithClock(now func() time.Time) *InitService {
	s.now = now
	return s
}

// Init materializes a new project from the named boilerplate. All-or-
// nothing: after a failed call no partial target tree is observable.
func (s *InitService) Init(ctx context.Context, typeName, targetPath string, opts InitOptions) (*domain.ProjectInstance, error) {
	name := filepath.Base(filepath.Clean(targetPath))
	if err := domain.ValidateProjectName(name); err != nil {
		return nil, domain.NewInitError(domain.ErrInvalidName, targetPath, err)
	}

	kind, err := domain.ParseKind(typeName)
	if err != nil {
		return nil, domain.NewInitError(domain.ErrUnknownBoilerplateType, typeName, err)
	}
	src, err := s.store.Resolve(kind)
	if err != nil {
		return nil, domain.NewInitError(domain.ErrUnknownBoilerplateType, typeName, err)
	}

	// The variable map is built before any filesystem change so a bad
	// description (one carrying token delimiters) fails cleanly.
	vars, err := domain.NewVariableMap(name, opts.Description, s.now())
	if err != nil {
		return nil, domain.NewInitError(domain.ErrSubstitutionFailed, targetPath, err)
	}

	if _, err := os.Stat(targetPath); err == nil {
		return nil, domain.NewInitError(domain.ErrAlreadyExists, targetPath, nil)
	} else if !os.IsNotExist(err) {
		return nil, domain.NewInitError(domain.ErrCopyFailed, targetPath, err)
	}

	if err := s.copier.Copy(src, targetPath); err != nil {
		os.RemoveAll(targetPath)
		return nil, domain.NewInitError(domain.ErrCopyFailed, targetPath, err)
	}

	if err := substituteTree(targetPath, vars); err != nil {
		os.RemoveAll(targetPath)
		return nil, domain.NewInitError(domain.ErrSubstitutionFailed, targetPath, err)
	}

	instance := &domain.ProjectInstance{
		Path: targetPath,
		Name: name,
		Kind: kind,
	}

	if !s.git.IsRepo(targetPath) {
		message := fmt.Sprintf("Initial commit: %s (%s boilerplate)", name, kind)
		if err := s.git.InitAndCommit(targetPath, message); err != nil {
			instance.Warnings = append(instance.Warnings, fmt.Sprintf("git initialization failed: %v", err))
		}
	}

	if !opts.SkipDeps {
		if err := s.deps.Install(ctx, targetPath, kind); err != nil {
			instance.Warnings = append(instance.Warnings, fmt.Sprintf("dependency install: %v", err))
		}
	}

	// Non-strict sanity pass; the caller inspects the attached report.
	run, err := s.validate.Validate(targetPath, ValidateOptions{Kind: kind})
	if err != nil {
		instance.Warnings = append(instance.Warnings, fmt.Sprintf("sanity validation failed: %v", err))
	} else {
		instance.Report = run.Report
	}

	return instance, nil
}

// substituteTree applies the variable map to every text file under root,
// then renames path segments that carry tokens (deepest first, so renamed
// parents cannot orphan pending children).
func substituteTree(root string, vars domain.VariableMap) error {
	var tokenPaths []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.Contains(d.Name(), "{{") {
			tokenPaths = append(tokenPaths, path)
		}
		if d.IsDir() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if domain.IsBinary(data) {
			return nil
		}
		content := string(data)
		replaced := vars.Apply(content)
		if replaced == content {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(replaced), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Deepest first.
	sort.Slice(tokenPaths, func(i, j int) bool { return len(tokenPaths[i]) > len(tokenPaths[j]) })
	for _, path := range tokenPaths {
		dir, base := filepath.Split(path)
		renamed := filepath.Join(dir, vars.Apply(base))
		if renamed == path {
			continue
		}
		if err := os.Rename(path, renamed); err != nil {
			return fmt.Errorf("renaming %s: %w", path, err)
		}
	}
	return nil
}
