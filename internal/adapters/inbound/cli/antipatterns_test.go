package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundwork-cli/groundwork/internal/adapters/inbound/cli"
)

func TestAntiPatternsCmd_ExcludesStructureRules(t *testing.T) {
	tmpDir := t.TempDir()

	out, err := runCmd("anti-patterns", tmpDir)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.NotContains(t, out, "ST001")
	assert.Contains(t, out, "AP001")
}

func TestAntiPatternsCmd_PriorityFilter(t *testing.T) {
	tmpDir := t.TempDir()

	out, err := runCmd("anti-patterns", tmpDir, "--priority", "P3")
	require.NoError(t, err, "P3-only findings are advisory without --strict")
	assert.Contains(t, out, "AP006")
	assert.NotContains(t, out, "AP001")

	_, err = runCmd("anti-patterns", tmpDir, "--priority", "P3", "--strict")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestAntiPatternsCmd_RejectsBadPriority(t *testing.T) {
	_, err := runCmd("anti-patterns", t.TempDir(), "--priority", "critical")
	require.Error(t, err)

	var exitErr *cli.ExitError
	assert.NotErrorAs(t, err, &exitErr)
}
