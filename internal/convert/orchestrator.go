package convert

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/raphi011/j2kt/internal/log"
)

// Result describes what Commit did, or would do in dry-run mode.
type Result struct {
	Message string
	DryRun  bool

	// Resumed is set when HEAD already contained the first commit.
	Resumed bool

	// Commits holds the created commit hashes in order. On failure it holds
	// the commits created before the failing step.
	Commits []string
}

// Orchestrator turns a batch of rename pairs into the two conversion commits.
type Orchestrator struct {
	Repo            Repository
	DryRun          bool
	MessageTemplate string
}

// Commit records batch in the repository. An empty batch is a no-op: no commit,
// not even an empty one. There is no rollback: if the second commit fails the
// first one stays, and a later run resumes from it.
func (o *Orchestrator) Commit(ctx context.Context, batch []RenamePair) (Result, error) {
	if len(batch) == 0 {
		return Result{}, nil
	}

	res := Result{Message: Message(o.MessageTemplate, batch), DryRun: o.DryRun}
	if o.DryRun {
		return res, nil
	}

	logger := log.FromContext(ctx)

	blobs := make([]Blob, len(batch))
	pending := 0
	for i, p := range batch {
		blob, err := o.Repo.StagedBlob(ctx, p.New.Path)
		if err != nil {
			return res, fmt.Errorf("read staged %s: %w", p.New.Path, err)
		}
		blobs[i] = blob

		head, ok, err := o.Repo.HeadBlob(ctx, p.Old.Path)
		if err != nil {
			return res, fmt.Errorf("read HEAD %s: %w", p.Old.Path, err)
		}
		if !ok || head.Hash != blob.Hash {
			pending++
		}
	}

	if pending == 0 {
		logger.Debug("content change already committed, skipping step 1", "pairs", len(batch))
		res.Resumed = true
	} else {
		contentEdits := lo.Map(batch, func(p RenamePair, i int) Edit {
			return Edit{Path: p.Old.Path, Blob: blobs[i]}
		})
		hash, err := o.Repo.CommitEdits(ctx, res.Message, contentEdits)
		if err != nil {
			return res, fmt.Errorf("commit step 1: %w", err)
		}
		res.Commits = append(res.Commits, hash)
	}

	renameEdits := make([]Edit, 0, 2*len(batch))
	for i, p := range batch {
		renameEdits = append(renameEdits,
			Edit{Path: p.Old.Path, Remove: true},
			Edit{Path: p.New.Path, Blob: blobs[i]},
		)
	}
	hash, err := o.Repo.CommitEdits(ctx, res.Message, renameEdits)
	if err != nil {
		return res, fmt.Errorf("commit step 2: %w", err)
	}
	res.Commits = append(res.Commits, hash)

	oldPaths := lo.Map(batch, func(p RenamePair, _ int) string { return p.Old.Path })
	if err := o.Repo.Untrack(ctx, oldPaths); err != nil {
		return res, fmt.Errorf("untrack converted files: %w", err)
	}

	return res, nil
}
