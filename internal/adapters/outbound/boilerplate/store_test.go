package boilerplate_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundwork-cli/groundwork/internal/adapters/outbound/boilerplate"
	"github.com/groundwork-cli/groundwork/internal/domain"
)

func TestEmbeddedStore_ResolvesEveryKind(t *testing.T) {
	store := boilerplate.New()

	for _, kind := range domain.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			tree, err := store.Resolve(kind)
			require.NoError(t, err)

			// Every boilerplate ships its manifest and the dotfiles.
			_, err = fs.Stat(tree, kind.Manifest())
			assert.NoError(t, err)
			_, err = fs.Stat(tree, ".gitignore")
			assert.NoError(t, err, "all: embed prefix must keep dotfiles")
			for _, rel := range []string{"CLAUDE.md", "README.md", "docs", "LICENSE", "CHANGELOG.md"} {
				_, err = fs.Stat(tree, rel)
				assert.NoError(t, err, rel)
			}
		})
	}
}

func TestEmbeddedStore_TemplatesCarryNameToken(t *testing.T) {
	tree, err := boilerplate.New().Resolve(domain.KindWebapp)
	require.NoError(t, err)

	data, err := fs.ReadFile(tree, "package.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "{{PROJECT_NAME}}")
}

func TestEmbeddedStore_UnknownKind(t *testing.T) {
	_, err := boilerplate.New().Resolve(domain.Kind("rails-app"))
	assert.Error(t, err)
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	_, err := boilerplate.NewFromDir(dir).Resolve(domain.KindWebapp)
	assert.Error(t, err, "empty directory store has no webapp tree")
}
