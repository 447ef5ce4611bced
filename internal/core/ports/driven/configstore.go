package driven

import "github.com/civica-labs/corpora-cli/internal/core/domain"

// ConfigStore persists default pipeline paths between runs.
// Command-line flags always override stored values.
type ConfigStore interface {
	// Paths returns the stored default paths. Unset fields are empty.
	Paths() domain.PipelinePaths

	// SetPaths stores new defaults and persists them immediately.
	// Empty fields leave the stored value unchanged.
	SetPaths(paths domain.PipelinePaths) error

	// Path returns the location of the backing config file.
	Path() string
}
