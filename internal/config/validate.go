package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/raphi011/j2kt/internal/convert"
)

// Validate checks that the configuration can drive a conversion.
func (c Config) Validate() error {
	if err := validateExt(c.SourceExt, "source_ext"); err != nil {
		return err
	}
	if err := validateExt(c.TargetExt, "target_ext"); err != nil {
		return err
	}
	if c.SourceExt == c.TargetExt {
		return fmt.Errorf("source_ext and target_ext must differ, both are %q", c.SourceExt)
	}
	if filepath.IsAbs(c.VCSConfig) || strings.HasPrefix(c.VCSConfig, "~") {
		return fmt.Errorf("vcs_config must be relative to the project dir, got: %q", c.VCSConfig)
	}
	if err := validateExcludePatterns(c.Exclude, ""); err != nil {
		return err
	}
	if !strings.Contains(c.Commit.Message, convert.NamesPlaceholder) {
		return fmt.Errorf("commit.message %q must contain %s", c.Commit.Message, convert.NamesPlaceholder)
	}
	return nil
}

func validateExt(ext, field string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return fmt.Errorf("invalid %s %q: must start with \".\"", field, ext)
	}
	if strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("invalid %s %q: must not contain a path separator", field, ext)
	}
	return nil
}

// validateExcludePatterns checks that all patterns are valid doublestar syntax.
func validateExcludePatterns(patterns []string, contextInfo string) error {
	for i, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			if contextInfo != "" {
				return fmt.Errorf("invalid exclude[%d] %q in %s", i, pat, contextInfo)
			}
			return fmt.Errorf("invalid exclude[%d] %q", i, pat)
		}
	}
	return nil
}
