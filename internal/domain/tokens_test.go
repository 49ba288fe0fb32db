package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundwork-cli/groundwork/internal/domain"
)

func TestValidateProjectName(t *testing.T) {
	valid := []string{"my-app", "app", "a1", "my-app-2"}
	for _, name := range valid {
		assert.NoError(t, domain.ValidateProjectName(name), name)
	}

	invalid := []string{"My App", "MyApp", "my_app", "my app", "", "app!", "café"}
	for _, name := range invalid {
		assert.Error(t, domain.ValidateProjectName(name), name)
	}
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "MyApp", domain.PascalCase("my-app"))
	assert.Equal(t, "App", domain.PascalCase("app"))
	assert.Equal(t, "MyCoolTool2", domain.PascalCase("my-cool-tool2"))
	// Empty segments between doubled dashes are dropped.
	assert.Equal(t, "AB", domain.PascalCase("a--b"))
}

func TestNewVariableMap(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	vars, err := domain.NewVariableMap("my-app", "does things", now)
	require.NoError(t, err)

	assert.Equal(t, "my-app", vars["PROJECT_NAME"])
	assert.Equal(t, "MyApp", vars["PROJECT_NAME_PASCAL"])
	assert.Equal(t, "does things", vars["PROJECT_DESCRIPTION"])
	assert.Equal(t, "2026-08-25", vars["DATE"])
	assert.Equal(t, "2026", vars["YEAR"])
}

func TestNewVariableMap_DefaultDescription(t *testing.T) {
	vars, err := domain.NewVariableMap("my-app", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "my-app project", vars["PROJECT_DESCRIPTION"])
}

func TestNewVariableMap_RejectsTokenInValue(t *testing.T) {
	_, err := domain.NewVariableMap("my-app", "sneaky {{PROJECT_NAME}} reference", time.Now())
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	vars, err := domain.NewVariableMap("my-app", "a demo", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	in := "# {{PROJECT_NAME}}\n\n{{PROJECT_DESCRIPTION}} by {{PROJECT_NAME_PASCAL}} on {{DATE}}\n"
	want := "# my-app\n\na demo by MyApp on 2026-01-02\n"
	assert.Equal(t, want, vars.Apply(in))
}

func TestApply_Idempotent(t *testing.T) {
	vars, err := domain.NewVariableMap("my-app", "", time.Now())
	require.NoError(t, err)

	once := vars.Apply("name={{PROJECT_NAME}} literal text")
	twice := vars.Apply(once)
	assert.Equal(t, once, twice)
}

func TestApply_LeavesUnknownTokens(t *testing.T) {
	vars, err := domain.NewVariableMap("my-app", "", time.Now())
	require.NoError(t, err)

	out := vars.Apply("{{PROJECT_NAME}} and {{MYSTERY_TOKEN}}")
	assert.Equal(t, "my-app and {{MYSTERY_TOKEN}}", out)
}

func TestLeftoverTokens(t *testing.T) {
	got := domain.LeftoverTokens("a {{FOO}} b {{BAR_BAZ}} c {{FOO}} d {{not_a_token}}")
	assert.Equal(t, []string{"{{FOO}}", "{{BAR_BAZ}}"}, got)

	assert.Empty(t, domain.LeftoverTokens("clean content"))
}

func TestIsBinary(t *testing.T) {
	assert.False(t, domain.IsBinary([]byte("plain text\nwith lines\n")))
	assert.True(t, domain.IsBinary([]byte{0x89, 'P', 'N', 'G', 0x00, 0x1a}))
	assert.False(t, domain.IsBinary(nil))
}
