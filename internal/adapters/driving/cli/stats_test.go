package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCmd_Use(t *testing.T) {
	assert.Equal(t, "stats", statsCmd.Use)
}

func TestStatsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "--input", "in.csv"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "1790-01-08 to 1790-01-08")
	assert.Contains(t, out, "Unaffiliated")
	assert.Contains(t, out, "spoken")
}
