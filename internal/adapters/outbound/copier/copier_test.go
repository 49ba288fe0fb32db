package copier_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/copier"
)

func TestCopy_IncludesDotfilesAndNestedDirs(t *testing.T) {
	src := fstest.MapFS{
		".gitignore":        &fstest.MapFile{Data: []byte("dist/\n")},
		"package.json":      &fstest.MapFile{Data: []byte("{}\n")},
		"src/main.jsx":      &fstest.MapFile{Data: []byte("export {}\n")},
		"docs/deep/note.md": &fstest.MapFile{Data: []byte("# note\n")},
	}
	target := filepath.Join(t.TempDir(), "proj")

	require.NoError(t, copier.New().Copy(src, target))

	for rel, f := range src {
		data, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
		assert.Equal(t, string(f.Data), string(data), rel)
	}
}

func TestCopy_PreservesExecuteBit(t *testing.T) {
	src := fstest.MapFS{
		"bin/setup.sh": &fstest.MapFile{Data: []byte("#!/bin/sh\n"), Mode: 0o755},
		"README.md":    &fstest.MapFile{Data: []byte("# doc\n"), Mode: 0o444},
	}
	target := filepath.Join(t.TempDir(), "proj")

	require.NoError(t, copier.New().Copy(src, target))

	info, err := os.Stat(filepath.Join(target, "bin", "setup.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o111, "script must stay executable")

	// Read-only sources still come out writable so substitution can run.
	info, err = os.Stat(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestCopy_RefusesExistingTarget(t *testing.T) {
	target := t.TempDir()
	src := fstest.MapFS{"a.txt": &fstest.MapFile{Data: []byte("x")}}

	err := copier.New().Copy(src, target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCopy_ExistingFileTargetAlsoRefused(t *testing.T) {
	target := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	err := copier.New().Copy(fstest.MapFS{}, target)
	assert.Error(t, err)
}
