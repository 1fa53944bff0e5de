package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/raphi011/j2kt/internal/convert"
)

// ErrNotRepository indicates a directory is not the root of a git working copy.
var ErrNotRepository = errors.New("not a git repository")

// ErrNotDirectory indicates a path does not exist or is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// WorkingCopy is one opened git working copy.
type WorkingCopy struct {
	root string
	repo *gogit.Repository
}

var _ convert.Repository = (*WorkingCopy)(nil)

// Open opens dir, which must be the top-level directory of a working copy.
func Open(dir string) (*WorkingCopy, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	// Linked worktrees keep refs and objects in the main repository's git dir
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", root, ErrNotRepository)
		}
		return nil, fmt.Errorf("%s: %w: %v", root, ErrNotRepository, err)
	}

	return &WorkingCopy{root: root, repo: repo}, nil
}

// Root returns the absolute working-copy directory.
func (w *WorkingCopy) Root() string {
	return w.root
}

// ChangeSet compares HEAD with the index and the working tree.
// Added paths are sorted, which is the order git itself lists them in.
func (w *WorkingCopy) ChangeSet(ctx context.Context) (convert.ChangeSet, error) {
	if err := ctx.Err(); err != nil {
		return convert.ChangeSet{}, err
	}

	wt, err := w.repo.Worktree()
	if err != nil {
		return convert.ChangeSet{}, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return convert.ChangeSet{}, fmt.Errorf("status: %w", err)
	}

	var added, removed, missing []string
	for path, fs := range status {
		switch {
		case fs.Staging == gogit.Added:
			added = append(added, path)
		case fs.Staging == gogit.Deleted:
			removed = append(removed, path)
		case fs.Worktree == gogit.Deleted:
			missing = append(missing, path)
		}
	}
	sort.Strings(added)

	return convert.NewChangeSet(added, removed, missing), nil
}

// StagedBlob returns the index entry of path.
func (w *WorkingCopy) StagedBlob(_ context.Context, path string) (convert.Blob, error) {
	idx, err := w.repo.Storer.Index()
	if err != nil {
		return convert.Blob{}, fmt.Errorf("read index: %w", err)
	}

	entry, err := idx.Entry(path)
	if err != nil {
		if errors.Is(err, index.ErrEntryNotFound) {
			return convert.Blob{}, fmt.Errorf("%s is not staged", path)
		}
		return convert.Blob{}, fmt.Errorf("read index entry %s: %w", path, err)
	}

	return convert.Blob{Hash: entry.Hash.String(), Mode: fmt.Sprintf("%o", uint32(entry.Mode))}, nil
}

// HeadBlob returns path's blob in HEAD's tree. An unborn HEAD contains nothing.
func (w *WorkingCopy) HeadBlob(_ context.Context, path string) (convert.Blob, bool, error) {
	head, err := w.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return convert.Blob{}, false, nil
		}
		return convert.Blob{}, false, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := w.repo.CommitObject(head.Hash())
	if err != nil {
		return convert.Blob{}, false, fmt.Errorf("read HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return convert.Blob{}, false, fmt.Errorf("read HEAD tree: %w", err)
	}

	entry, err := tree.FindEntry(path)
	if err != nil {
		if errors.Is(err, object.ErrEntryNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
			return convert.Blob{}, false, nil
		}
		return convert.Blob{}, false, fmt.Errorf("find %s in HEAD: %w", path, err)
	}
	if !entry.Mode.IsFile() {
		return convert.Blob{}, false, nil
	}

	return convert.Blob{Hash: entry.Hash.String(), Mode: fmt.Sprintf("%o", uint32(entry.Mode))}, true, nil
}
