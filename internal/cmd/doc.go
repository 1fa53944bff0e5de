// Package cmd provides helpers for executing external commands with proper error handling.
//
// Commands run through [RunContext] and [OutputContext] are echoed by the
// context logger in verbose mode, and a failing command's error carries the
// command's trimmed stderr so callers can surface git's own message.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "update-ref", "HEAD", hash); err != nil {
//	    return fmt.Errorf("move HEAD: %w", err)
//	}
//
//	// Extra environment, e.g. a private index file:
//	out, err := cmd.OutputContextEnv(ctx, repoDir, []string{"GIT_INDEX_FILE=" + tmp}, "git", "write-tree")
package cmd
