package convert

import (
	"context"
	"fmt"
)

// StatusTask is the progress label shown while the change set is computed.
const StatusTask = "Compute status"

// Report is the outcome of converting one working copy.
type Report struct {
	Root  string
	Pairs []RenamePair
	Result
}

// Converter runs the whole pipeline for one working copy at a time.
type Converter struct {
	Match           MatchOptions
	DryRun          bool
	MessageTemplate string

	// Progress is optional.
	Progress Progress
}

// Run inspects repo, pairs converted files and commits them. The returned
// Report is filled as far as the run got, also when an error is returned.
func (c *Converter) Run(ctx context.Context, repo Repository) (Report, error) {
	report := Report{Root: repo.Root()}

	cs, err := c.changeSet(ctx, repo)
	if err != nil {
		return report, fmt.Errorf("compute status: %w", err)
	}

	report.Pairs = Match(repo.Root(), cs, c.Match)

	o := Orchestrator{Repo: repo, DryRun: c.DryRun, MessageTemplate: c.MessageTemplate}
	report.Result, err = o.Commit(ctx, report.Pairs)
	return report, err
}

func (c *Converter) changeSet(ctx context.Context, repo Repository) (ChangeSet, error) {
	if c.Progress != nil {
		c.Progress.Start(StatusTask)
		defer c.Progress.Stop()
	}
	return repo.ChangeSet(ctx)
}
