package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/j2kt/internal/convert"
)

// Default values used when a setting is absent.
const (
	DefaultVCSConfig     = ".idea/vcs.xml"
	DefaultSourceExt     = convert.DefaultSourceExt
	DefaultTargetExt     = convert.DefaultTargetExt
	DefaultCommitMessage = convert.DefaultMessageTemplate
)

// CommitConfig holds commit-related configuration
type CommitConfig struct {
	Message string `toml:"message"` // template, {names} = converted identifiers
}

// Config holds the j2kt configuration
type Config struct {
	VCSConfig string       `toml:"vcs_config"`
	SourceExt string       `toml:"source_ext"`
	TargetExt string       `toml:"target_ext"`
	Exclude   []string     `toml:"exclude"`
	Commit    CommitConfig `toml:"commit"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		VCSConfig: DefaultVCSConfig,
		SourceExt: DefaultSourceExt,
		TargetExt: DefaultTargetExt,
		Commit: CommitConfig{
			Message: DefaultCommitMessage,
		},
	}
}

// ExpandHome expands a leading ~/ or ~\ to the user's home directory.
// A lone ~ is the home directory itself.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, filepath.FromSlash(path[2:])), nil
	}
	return path, nil
}

// DefaultPath returns the path to the global config file
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "j2kt", "config.toml"), nil
}

// Load reads the config file at path.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Empty strings in the file fall back to defaults
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.VCSConfig == "" {
		cfg.VCSConfig = d.VCSConfig
	}
	if cfg.SourceExt == "" {
		cfg.SourceExt = d.SourceExt
	}
	if cfg.TargetExt == "" {
		cfg.TargetExt = d.TargetExt
	}
	if cfg.Commit.Message == "" {
		cfg.Commit.Message = d.Commit.Message
	}
}

const defaultConfig = `# j2kt configuration

# IDE project file listing the Git working copies, relative to the project dir
vcs_config = ".idea/vcs.xml"

# A staged <name>.kt file is paired with a deleted <name>.java file
source_ext = ".java"
target_ext = ".kt"

# Added files matching these doublestar patterns are never paired
# exclude = ["**/build/**", "buildSrc/**"]

[commit]
# Message used for both commits of a conversion
# {names} - comma separated converted identifiers, e.g. "Foo, Bar"
message = "convert {names} to kotlin"
`

// Init creates a default config file at path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// MatchOptions returns the pairing settings for the conversion core.
func (c Config) MatchOptions() convert.MatchOptions {
	return convert.MatchOptions{
		SourceExt: c.SourceExt,
		TargetExt: c.TargetExt,
		Exclude:   c.Exclude,
	}
}
