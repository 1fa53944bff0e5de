package vcsmap

import (
	"os"
	"path/filepath"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Similar suggests existing sibling directories whose names fuzzy-match
// the base name of dir. It is meant for a mapped directory that does not
// exist, e.g. after a module was renamed without updating the IDE project.
func Similar(dir string) []string {
	parent, base := filepath.Split(filepath.Clean(dir))
	if base == "" {
		return nil
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && e.Name() != base {
			names = append(names, e.Name())
		}
	}

	matches := fuzzy.Find(base, names)
	var out []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		out = append(out, filepath.Join(parent, m.Str))
	}
	return out
}
