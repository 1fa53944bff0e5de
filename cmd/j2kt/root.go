package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/j2kt/internal/git"
	"github.com/raphi011/j2kt/internal/log"
	"github.com/raphi011/j2kt/internal/output"
)

// rootOptions holds the global and root command flags
type rootOptions struct {
	verbose    bool
	quiet      bool
	dryRun     bool
	copy       bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "j2kt [dryRun] [projectDir]",
		Short: "Commit Java to Kotlin conversions as renames",
		Long: `j2kt records files converted from Java to Kotlin so that history follows them.

For every Git working copy listed in the project's .idea/vcs.xml it pairs each
staged Foo.kt with a deleted Foo.java in the same directory and creates two
commits: the first stores the Kotlin content under the old .java path, the
second renames it to .kt. git log --follow and blame then see one file.

Stage the converted files (git add Foo.kt) before running j2kt.

Arguments:
  dryRun      "true" (any case) shows what would be committed, anything else runs
  projectDir  directory containing .idea (default: current directory)`,
		Example: `  j2kt                       # convert in the current project
  j2kt true ~/code/app       # dry run for another project
  j2kt -n --copy             # dry run, copy the commit message`,
		Args:                       cobra.MaximumNArgs(2),
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			// Logger on stderr for diagnostics, printer on stdout for the report
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), opts.verbose, opts.quiet))
			ctx = output.WithPrinter(ctx, output.Styled(cmd.OutOrStdout(), os.Environ()))
			cmd.SetContext(ctx)

			// Skip git check for commands that never touch a repository
			switch cmd.Name() {
			case "init", "version", "help", "completion", "__complete":
				return nil
			}
			return git.CheckGit()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show git commands being executed")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress and informational output")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/j2kt/config.toml)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Show what would be committed without committing")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the dry-run commit message to the clipboard")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero when it fails.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'j2kt -h' for help")
		cancel()
		os.Exit(1)
	}
}
