//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGit runs git in dir and returns its trimmed output.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// setupProject creates a project dir whose .idea/vcs.xml maps the given
// directories (relative to the project). Returns the resolved project path.
func setupProject(t *testing.T, mappings ...string) string {
	t.Helper()
	projectDir := resolvePath(t, t.TempDir())

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<project version="4">` + "\n")
	b.WriteString(`  <component name="VcsDirectoryMappings">` + "\n")
	for _, m := range mappings {
		b.WriteString(`    <mapping directory="$PROJECT_DIR$/` + m + `" vcs="Git" />` + "\n")
	}
	b.WriteString("  </component>\n</project>\n")
	writeFile(t, projectDir, ".idea/vcs.xml", b.String())

	return projectDir
}

// setupRepo creates a git repo at dir/name whose initial commit holds files.
func setupRepo(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGit(t, repoPath, "init", "-b", "main")
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")

	for path, content := range files {
		writeFile(t, repoPath, path, content)
	}
	runGit(t, repoPath, "add", "-A")
	runGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// convertFile simulates the IDE conversion: the Java file is deleted and
// the Kotlin file staged.
func convertFile(t *testing.T, repoPath, javaPath, kotlinContent string, stageRemoval bool) {
	t.Helper()
	if stageRemoval {
		runGit(t, repoPath, "rm", "-q", javaPath)
	} else if err := os.Remove(filepath.Join(repoPath, filepath.FromSlash(javaPath))); err != nil {
		t.Fatalf("failed to remove %s: %v", javaPath, err)
	}
	kotlinPath := strings.TrimSuffix(javaPath, ".java") + ".kt"
	writeFile(t, repoPath, kotlinPath, kotlinContent)
	runGit(t, repoPath, "add", kotlinPath)
}

// executeCommand runs a fresh root command with args and an isolated
// config file. Returns captured stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "config.toml")
	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configFile}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
