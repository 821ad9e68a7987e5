package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestVersion(t *testing.T) {
	cmd := Version()

	require.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Print version information", cmd.Short)
}

func TestVersion_Output(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "circuits 1.2.3 (commit abc123, built 2026-01-01)\n", out)
}
