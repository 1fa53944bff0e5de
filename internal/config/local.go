package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project override file, looked up in the project dir.
const LocalConfigFileName = ".j2kt.toml"

// LocalConfig holds per-project overrides from .j2kt.toml.
// Zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	VCSConfig string       `toml:"vcs_config"`
	SourceExt string       `toml:"source_ext"`
	TargetExt string       `toml:"target_ext"`
	Exclude   []string     `toml:"exclude"` // appended to global
	Commit    CommitConfig `toml:"commit"`
}

// LoadLocal reads a per-project .j2kt.toml from projectDir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(projectDir string) (*LocalConfig, error) {
	configFile := filepath.Join(projectDir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := validateExcludePatterns(local.Exclude, configFile); err != nil {
		return nil, err
	}

	return &local, nil
}
