package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/j2kt/internal/convert"
)

// CommitEdits creates a commit whose tree is HEAD's tree with edits applied and
// advances HEAD (or the branch it points to) to it.
//
// The tree is assembled in a throwaway index file, so entries the user staged
// for other paths are neither committed nor lost. Hooks do not run.
func (w *WorkingCopy) CommitEdits(ctx context.Context, message string, edits []convert.Edit) (string, error) {
	parent, err := outputGit(ctx, w.root, "rev-parse", "--verify", "--quiet", "HEAD^{commit}")
	if err != nil || parent == "" {
		return "", fmt.Errorf("resolve HEAD: no commit to build on")
	}

	tmpDir, err := os.MkdirTemp("", "j2kt-index-")
	if err != nil {
		return "", fmt.Errorf("create temporary index: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	env := []string{"GIT_INDEX_FILE=" + filepath.Join(tmpDir, "index")}

	if err := runGitEnv(ctx, w.root, env, "read-tree", parent); err != nil {
		return "", fmt.Errorf("read-tree: %w", err)
	}

	var add, remove []string
	for _, e := range edits {
		if e.Remove {
			remove = append(remove, e.Path)
			continue
		}
		add = append(add, "--cacheinfo", e.Blob.Mode+","+e.Blob.Hash+","+e.Path)
	}

	if len(remove) > 0 {
		args := append([]string{"update-index", "--force-remove", "--"}, remove...)
		if err := runGitEnv(ctx, w.root, env, args...); err != nil {
			return "", fmt.Errorf("stage removals: %w", err)
		}
	}
	if len(add) > 0 {
		args := append([]string{"update-index", "--add"}, add...)
		if err := runGitEnv(ctx, w.root, env, args...); err != nil {
			return "", fmt.Errorf("stage additions: %w", err)
		}
	}

	tree, err := outputGitEnv(ctx, w.root, env, "write-tree")
	if err != nil {
		return "", fmt.Errorf("write-tree: %w", err)
	}

	commit, err := outputGit(ctx, w.root, "commit-tree", tree, "-p", parent, "-m", message)
	if err != nil {
		return "", fmt.Errorf("commit-tree: %w", err)
	}

	// Compare-and-swap on the old value so a concurrent commit is not overwritten.
	if err := runGit(ctx, w.root, "update-ref", "-m", "commit: "+subject(message), "HEAD", commit, parent); err != nil {
		return "", fmt.Errorf("update HEAD: %w", err)
	}

	return commit, nil
}

// Untrack removes paths from the real index. Paths not in the index are ignored.
func (w *WorkingCopy) Untrack(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"update-index", "--force-remove", "--"}, paths...)
	if err := runGit(ctx, w.root, args...); err != nil {
		return fmt.Errorf("unstage: %w", err)
	}
	return nil
}

func subject(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return line
}
