package convert

import (
	"context"
	"fmt"
)

// fakeRepo records every write and serves blobs from maps.
type fakeRepo struct {
	root    string
	cs      ChangeSet
	csErr   error
	staged  map[string]Blob
	head    map[string]Blob
	failAt  int // 1-based CommitEdits call that fails, 0 = never
	commits [][]Edit
	msgs    []string
	untrack [][]string
}

func newFakeRepo(cs ChangeSet) *fakeRepo {
	return &fakeRepo{
		root:   "/work/repo",
		cs:     cs,
		staged: map[string]Blob{},
		head:   map[string]Blob{},
	}
}

func (r *fakeRepo) Root() string { return r.root }

func (r *fakeRepo) ChangeSet(context.Context) (ChangeSet, error) { return r.cs, r.csErr }

func (r *fakeRepo) StagedBlob(_ context.Context, path string) (Blob, error) {
	b, ok := r.staged[path]
	if !ok {
		return Blob{}, fmt.Errorf("%s not in index", path)
	}
	return b, nil
}

func (r *fakeRepo) HeadBlob(_ context.Context, path string) (Blob, bool, error) {
	b, ok := r.head[path]
	return b, ok, nil
}

func (r *fakeRepo) CommitEdits(_ context.Context, message string, edits []Edit) (string, error) {
	if r.failAt == len(r.commits)+1 {
		return "", fmt.Errorf("cannot lock ref 'HEAD'")
	}
	r.commits = append(r.commits, edits)
	r.msgs = append(r.msgs, message)
	for _, e := range edits {
		if e.Remove {
			delete(r.head, e.Path)
		} else {
			r.head[e.Path] = e.Blob
		}
	}
	return fmt.Sprintf("c%d", len(r.commits)), nil
}

func (r *fakeRepo) Untrack(_ context.Context, paths []string) error {
	r.untrack = append(r.untrack, paths)
	return nil
}

type fakeProgress struct {
	started []string
	stopped int
}

func (p *fakeProgress) Start(task string) { p.started = append(p.started, task) }
func (p *fakeProgress) Stop()             { p.stopped++ }
