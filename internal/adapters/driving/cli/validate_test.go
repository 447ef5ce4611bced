package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driving"
)

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate", validateCmd.Use)
}

func TestValidateCmd_ValidCorpus(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate", "--input", "in.csv"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Corpus is valid: 2 documents")
}

func TestValidateCmd_ItemisesViolations(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	newPipeline = func(_ domain.PipelinePaths) (driving.PipelineService, error) {
		return &fakePipeline{buildErr: &domain.ValidationError{Violations: []domain.Violation{
			{Row: 0, Field: domain.ColumnSpeakerSurname},
			{Row: 4, Field: domain.ColumnBody},
		}}}, nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"validate", "--input", "in.csv"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, buf.String(), "row 0: missing speaker_surname")
	assert.Contains(t, buf.String(), "row 4: missing body")
	assert.Contains(t, err.Error(), "2 validation problem(s)")
}

func TestValidateCmd_MissingInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"validate", "--input", ""})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input path given")
}
