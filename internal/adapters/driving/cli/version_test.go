package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "corpora version test-version-1.0.0")
}

func TestSetDependencies_SetsVersion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	originalVersion := version
	defer func() { version = originalVersion }()

	SetDependencies(Dependencies{Version: "2.0.0"})
	assert.Equal(t, "2.0.0", version)
}
