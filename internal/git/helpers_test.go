package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// setupTestRepo creates a git repo on main whose initial commit holds files.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	repoPath := filepath.Join(resolveTempDir(t), "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	configureTestRepo(t, repoPath)

	if files == nil {
		files = map[string]string{"README.md": "# test\n"}
	}
	for name, content := range files {
		writeFile(t, repoPath, name, content)
	}
	mustGit(t, repoPath, "add", "-A")
	mustGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

func writeFile(t *testing.T, repoPath, name, content string) {
	t.Helper()
	path := filepath.Join(repoPath, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func removeFile(t *testing.T, repoPath, name string) {
	t.Helper()
	if err := os.Remove(filepath.Join(repoPath, filepath.FromSlash(name))); err != nil {
		t.Fatalf("failed to remove %s: %v", name, err)
	}
}

func mustGit(t *testing.T, repoPath string, args ...string) string {
	t.Helper()
	out, err := outputGit(context.Background(), repoPath, args...)
	if err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
	return out
}

func openTestRepo(t *testing.T, repoPath string) *WorkingCopy {
	t.Helper()
	wc, err := Open(repoPath)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", repoPath, err)
	}
	return wc
}
