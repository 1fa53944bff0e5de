package git

import (
	"context"
	"strings"

	"github.com/raphi011/j2kt/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit executes a git command and returns its trimmed stdout.
func outputGit(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	return strings.TrimSpace(string(out)), err
}

// runGitEnv is runGit with extra environment entries.
func runGitEnv(ctx context.Context, dir string, env []string, args ...string) error {
	return cmd.RunContextEnv(ctx, "", env, "git", gitArgs(dir, args)...)
}

// outputGitEnv is outputGit with extra environment entries.
func outputGitEnv(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	out, err := cmd.OutputContextEnv(ctx, "", env, "git", gitArgs(dir, args)...)
	return strings.TrimSpace(string(out)), err
}
