// Package file provides a TOML-backed config store for default
// pipeline paths.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
	"github.com/civica-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk TOML layout.
type fileConfig struct {
	Corpus struct {
		Input      string `toml:"input"`
		Table      string `toml:"table"`
		Dictionary string `toml:"dictionary"`
		Database   string `toml:"database"`
	} `toml:"corpus"`
}

// ConfigStore persists default pipeline paths in a TOML file.
// Flags given on the command line always override stored values;
// the store only supplies defaults.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      fileConfig
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.corpora/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".corpora")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Paths returns the stored default paths.
func (s *ConfigStore) Paths() domain.PipelinePaths {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.PipelinePaths{
		Input:      s.cfg.Corpus.Input,
		Table:      s.cfg.Corpus.Table,
		Dictionary: s.cfg.Corpus.Dictionary,
		Database:   s.cfg.Corpus.Database,
	}
}

// SetPaths stores new defaults and persists them immediately.
// Empty fields leave the stored value unchanged.
func (s *ConfigStore) SetPaths(paths domain.PipelinePaths) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if paths.Input != "" {
		s.cfg.Corpus.Input = paths.Input
	}
	if paths.Table != "" {
		s.cfg.Corpus.Table = paths.Table
	}
	if paths.Dictionary != "" {
		s.cfg.Corpus.Dictionary = paths.Dictionary
	}
	if paths.Database != "" {
		s.cfg.Corpus.Database = paths.Database
	}
	return s.save()
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads configuration from the TOML file. A missing file means
// no defaults yet.
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(data, &s.cfg)
}
