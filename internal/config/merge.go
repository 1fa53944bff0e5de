package config

import "slices"

// MergeLocal merges a per-project config into a global config and
// validates the result. The global config is not mutated.
// Returns global unchanged if local is nil.
func MergeLocal(global Config, local *LocalConfig) (Config, error) {
	if local == nil {
		return global, nil
	}

	merged := global
	if local.VCSConfig != "" {
		merged.VCSConfig = local.VCSConfig
	}
	if local.SourceExt != "" {
		merged.SourceExt = local.SourceExt
	}
	if local.TargetExt != "" {
		merged.TargetExt = local.TargetExt
	}
	if local.Commit.Message != "" {
		merged.Commit.Message = local.Commit.Message
	}

	// Exclude patterns accumulate
	merged.Exclude = append(slices.Clone(global.Exclude), local.Exclude...)

	if err := merged.Validate(); err != nil {
		return global, err
	}
	return merged, nil
}
