// Package gitrepo implements domain.GitInspector and repository
// initialization on top of go-git.
package gitrepo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

// Adapter talks to the repository embedded in a project tree.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) IsRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// InitAndCommit initializes a repository at path and creates a single
// commit containing the full tree. Used once per instantiation.
func (a *Adapter) InitAndCommit(path, message string) error {
	repo, err := git.PlainInit(path, false)
	if err != nil {
		return fmt.Errorf("initializing repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "groundwork",
			Email: "groundwork@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("creating initial commit: %w", err)
	}
	return nil
}

func (a *Adapter) RecentStats(projectPath string, since time.Time) (*domain.GitStats, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{Since: &since})
	if err != nil {
		// A repository with no HEAD yet has no history to summarize.
		return &domain.GitStats{}, nil
	}

	stats := &domain.GitStats{}
	err = iter.ForEach(func(c *object.Commit) error {
		stats.Commits++
		stats.Subjects = append(stats.Subjects, subject(c.Message))

		added, modified, docs, total, err := classifyChanges(c)
		if err != nil {
			return nil // skip unreadable commits, keep counting the rest
		}
		stats.AddedFiles += added
		stats.ModifiedFiles += modified
		stats.DocsModified += docs
		if total > stats.MaxCommitFiles {
			stats.MaxCommitFiles = total
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}
	return stats, nil
}

func (a *Adapter) LastCommitTime(projectPath, relPath string) (time.Time, bool, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("opening git repo: %w", err)
	}

	rel := filepath.ToSlash(relPath)
	iter, err := repo.Log(&git.LogOptions{FileName: &rel})
	if err != nil {
		return time.Time{}, false, nil
	}
	defer iter.Close()

	c, err := iter.Next()
	if err != nil {
		return time.Time{}, false, nil
	}
	return c.Committer.When, true, nil
}

func (a *Adapter) DirtyFiles(projectPath string) (int, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return 0, fmt.Errorf("opening git repo: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return 0, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return 0, fmt.Errorf("reading worktree status: %w", err)
	}

	var dirty int
	for _, s := range status {
		if s.Worktree != git.Unmodified || s.Staging != git.Unmodified {
			dirty++
		}
	}
	return dirty, nil
}

// classifyChanges diffs a commit against its first parent (or the empty
// tree for the root commit) and counts added, modified and doc-touching
// files.
func classifyChanges(c *object.Commit) (added, modified, docs, total int, err error) {
	tree, err := c.Tree()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return 0, 0, 0, 0, err
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	for _, ch := range changes {
		total++
		action, err := ch.Action()
		if err != nil {
			continue
		}
		name := ch.To.Name
		if name == "" {
			name = ch.From.Name
		}
		switch action {
		case merkletrie.Insert:
			added++
		case merkletrie.Modify:
			modified++
		}
		if isDocPath(name) {
			docs++
		}
	}
	return added, modified, docs, total, nil
}

func isDocPath(name string) bool {
	if strings.HasPrefix(name, "docs/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".rst", ".txt":
		return true
	}
	return false
}

func subject(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return strings.TrimSpace(message[:i])
	}
	return strings.TrimSpace(message)
}
