package convert

import "strings"

const separators = `/\`

// FileName returns the last element of path. Both '/' and '\' separate
// elements and a single trailing separator is ignored, so "a/b/" yields "b".
func FileName(path string) string {
	if path == "" {
		return ""
	}
	end := len(path)
	if isSeparator(path[end-1]) {
		end--
	}
	start := strings.LastIndexAny(path[:end], separators) + 1
	return path[start:end]
}

// ParentPath returns path without its last element, or "" if there is none.
// A single trailing separator is ignored, so "a/b/" yields "a".
func ParentPath(path string) string {
	if path == "" {
		return ""
	}
	end := strings.LastIndexAny(path, separators)
	if end == len(path)-1 {
		end = strings.LastIndexAny(path[:end], separators)
	}
	if end == -1 {
		return ""
	}
	return path[:end]
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
