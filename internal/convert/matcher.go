package convert

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-set/v2"
)

// Default extensions of a Java to Kotlin conversion.
const (
	DefaultSourceExt = ".java"
	DefaultTargetExt = ".kt"
)

// MatchOptions configures Match. Zero values select the defaults.
type MatchOptions struct {
	SourceExt string   // extension of the removed file, default ".java"
	TargetExt string   // extension of the added file, default ".kt"
	Exclude   []string // doublestar patterns; matching added paths are ignored
}

func (o MatchOptions) withDefaults() MatchOptions {
	if o.SourceExt == "" {
		o.SourceExt = DefaultSourceExt
	}
	if o.TargetExt == "" {
		o.TargetExt = DefaultTargetExt
	}
	return o
}

// Match pairs added target files with removed or missing source files of the
// same base path. Pairs follow the order of cs.Added. An added file without a
// counterpart is a genuinely new file and is skipped. Each old path is used at
// most once; the first added path claiming it wins.
func Match(root string, cs ChangeSet, opts MatchOptions) []RenamePair {
	opts = opts.withDefaults()

	claimed := set.New[string](len(cs.Added))
	var pairs []RenamePair

	for _, path := range cs.Added {
		if !strings.HasSuffix(path, opts.TargetExt) || excluded(path, opts.Exclude) {
			continue
		}

		base := strings.TrimSuffix(path, opts.TargetExt)
		name := FileName(base)
		if name == "" || strings.HasSuffix(base, "/") {
			continue
		}

		oldPath := base + opts.SourceExt
		if !cs.IsGone(oldPath) || claimed.Contains(oldPath) {
			continue
		}
		claimed.Insert(oldPath)

		pairs = append(pairs, RenamePair{
			Old:  FileInfo{Path: oldPath, Abs: absPath(root, oldPath)},
			New:  FileInfo{Path: path, Abs: absPath(root, path)},
			Name: name,
		})
	}

	return pairs
}

func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

func absPath(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
