// Package config handles loading and validation of j2kt configuration.
//
// Configuration is read from ~/.config/j2kt/config.toml. A project may
// override parts of it with a .j2kt.toml file next to its .idea directory.
// Both files are optional.
//
// # Key Settings
//
//   - vcs_config: IDE mapping file relative to the project (default: ".idea/vcs.xml")
//   - source_ext: extension of the files being converted (default: ".java")
//   - target_ext: extension of the converted files (default: ".kt")
//   - exclude: doublestar patterns of added files that are never paired
//
// # Commit Configuration
//
//	[commit]
//	message = "convert {names} to kotlin"
//
// {names} is replaced by the comma separated list of converted identifiers.
//
// # Path Validation
//
// vcs_config must be relative; it is always resolved against the project
// directory given on the command line.
package config
