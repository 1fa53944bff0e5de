package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gertd/go-pluralize"
	"github.com/spf13/cobra"

	"github.com/raphi011/j2kt/internal/config"
	"github.com/raphi011/j2kt/internal/convert"
	"github.com/raphi011/j2kt/internal/git"
	"github.com/raphi011/j2kt/internal/log"
	"github.com/raphi011/j2kt/internal/output"
	"github.com/raphi011/j2kt/internal/ui/progress"
	"github.com/raphi011/j2kt/internal/ui/styles"
	"github.com/raphi011/j2kt/internal/vcsmap"
)

// runStats accumulates the summary over all working copies.
type runStats struct {
	files    int
	repos    int
	failed   int
	messages []string
}

func runConvert(cmd *cobra.Command, opts *rootOptions, args []string) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	p := output.FromContext(ctx)

	dryRun := opts.dryRun
	if len(args) > 0 && parseDryRun(args[0]) {
		dryRun = true
	}

	projectDir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts, projectDir)
	if err != nil {
		return err
	}

	dirs, err := vcsmap.Discover(projectDir, cfg.VCSConfig)
	if errors.Is(err, vcsmap.ErrConfigNotFound) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s not found, please ensure that you run script in the project dir\n", cfg.VCSConfig)
		return nil
	}
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		p.Warnf("GIT VCS mappings not found")
		return nil
	}

	l.Debug("discovered working copies", "project", projectDir, "count", len(dirs), "dryRun", dryRun)

	conv := &convert.Converter{
		Match:           cfg.MatchOptions(),
		DryRun:          dryRun,
		MessageTemplate: cfg.Commit.Message,
		Progress:        progress.NewReporter(os.Stderr, l.IsQuiet()),
	}

	var stats runStats
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		processDir(ctx, conv, dir, &stats)
	}

	printSummary(p, l, stats, dryRun)

	if opts.copy && dryRun && len(stats.messages) > 0 {
		if err := clipboard.WriteAll(strings.Join(stats.messages, "\n")); err != nil {
			l.Warnf("failed to copy to clipboard: %v", err)
		} else {
			l.Printf("Commit message copied to clipboard\n")
		}
	}
	return nil
}

// processDir converts one mapped directory. Problems are reported and the
// run moves on to the next directory.
func processDir(ctx context.Context, conv *convert.Converter, dir string, stats *runStats) {
	l := log.FromContext(ctx)
	p := output.FromContext(ctx)

	wc, err := git.Open(dir)
	switch {
	case errors.Is(err, git.ErrNotDirectory):
		p.Warnf("%s is not a directory", dir)
		if similar := vcsmap.Similar(dir); len(similar) > 0 {
			p.Printf("  did you mean %s?\n", strings.Join(similar, ", "))
		}
		return
	case errors.Is(err, git.ErrNotRepository):
		p.Warnf("%s is not a git repository", dir)
		return
	case err != nil:
		l.Errorf("%s: %v", dir, err)
		stats.failed++
		return
	}

	p.Printf("Repository %s\n", styles.Bold.Render(dir))

	report, err := conv.Run(ctx, wc)
	renderReport(p, report, err)
	if err != nil {
		l.Errorf("%s: %v", dir, err)
		stats.failed++
		return
	}

	if len(report.Pairs) > 0 {
		stats.files += len(report.Pairs)
		stats.repos++
		stats.messages = append(stats.messages, report.Message)
	}
}

// renderReport prints the rename lines and the commit steps that completed.
// A run that failed before pairing prints nothing; the caller reports runErr.
func renderReport(p *output.Printer, report convert.Report, runErr error) {
	if runErr != nil && len(report.Pairs) == 0 {
		return
	}
	if len(report.Pairs) == 0 {
		p.Println(styles.SuccessStyle.Render("Skip, no converted files"))
		p.Println()
		return
	}

	for _, pair := range report.Pairs {
		p.Printf("rename %s (%s)\n", styles.Bold.Render(pair.Name), convert.ParentPath(pair.New.Path))
	}

	if report.DryRun {
		p.Println(styles.SuccessStyle.Render("Commit message will be ") + styles.Bold.Render(report.Message))
		p.Println()
		return
	}

	step := 1
	if report.Resumed {
		p.Println(styles.MutedStyle.Render("Commit, step 1 of 2 already in HEAD"))
		step++
	}
	for range report.Commits {
		p.Println(styles.SuccessStyle.Render(fmt.Sprintf("Commit, step %d of 2 done", step)))
		step++
	}
	p.Println()
}

func printSummary(p *output.Printer, l *log.Logger, stats runStats, dryRun bool) {
	if l.IsQuiet() {
		return
	}

	pc := pluralize.NewClient()
	files := pc.Pluralize("file", stats.files, true)
	repos := pc.Pluralize("repository", stats.repos, true)

	switch {
	case stats.files == 0:
		p.Println(styles.MutedStyle.Render("Nothing to convert"))
	case dryRun:
		p.Printf("Would convert %s in %s\n", files, repos)
	default:
		p.Println(styles.SuccessStyle.Render(fmt.Sprintf("Converted %s in %s", files, repos)))
	}
	if stats.failed > 0 {
		l.Warnf("%s failed", pc.Pluralize("repository", stats.failed, true))
	}
}

// parseDryRun treats "true" in any case as true and everything else as false.
func parseDryRun(arg string) bool {
	return strings.EqualFold(arg, "true")
}

// resolveProjectDir returns the absolute project directory from args,
// defaulting to the working directory.
func resolveProjectDir(args []string) (string, error) {
	dir := ""
	if len(args) > 1 {
		dir = args[1]
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	dir, err := config.ExpandHome(dir)
	if err != nil {
		return "", err
	}
	return filepath.Abs(dir)
}

// loadConfig reads the global config and applies the project's overrides.
func loadConfig(opts *rootOptions, projectDir string) (config.Config, error) {
	global := config.Default()
	path, err := configPath(opts)
	switch {
	case err == nil:
		if global, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	case opts.configPath != "":
		return config.Config{}, err
	}

	local, err := config.LoadLocal(projectDir)
	if err != nil {
		return config.Config{}, err
	}
	return config.MergeLocal(global, local)
}
