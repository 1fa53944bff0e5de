package convert

import (
	"context"

	"github.com/hashicorp/go-set/v2"
)

// ChangeSet is a snapshot of a working copy compared to HEAD.
type ChangeSet struct {
	// Added holds paths staged as new, in enumeration order.
	Added []string

	removed *set.Set[string]
	missing *set.Set[string]
}

// NewChangeSet builds a ChangeSet from slash-separated paths relative to the
// working-copy root. removed are tracked paths gone from the index, missing are
// indexed paths gone from the working tree.
func NewChangeSet(added, removed, missing []string) ChangeSet {
	cs := ChangeSet{
		Added:   append([]string(nil), added...),
		removed: set.New[string](len(removed)),
		missing: set.New[string](len(missing)),
	}
	cs.removed.InsertSlice(removed)
	cs.missing.InsertSlice(missing)
	return cs
}

// IsRemoved reports whether path was staged for removal.
func (cs ChangeSet) IsRemoved(path string) bool {
	return cs.removed != nil && cs.removed.Contains(path)
}

// IsMissing reports whether path is still indexed but absent on disk.
func (cs ChangeSet) IsMissing(path string) bool {
	return cs.missing != nil && cs.missing.Contains(path)
}

// IsGone reports whether path can serve as the old half of a rename.
func (cs ChangeSet) IsGone(path string) bool {
	return cs.IsRemoved(path) || cs.IsMissing(path)
}

// FileInfo addresses one file twice: Path is slash-separated and relative to the
// working-copy root (used for git), Abs is the filesystem path.
type FileInfo struct {
	Path string
	Abs  string
}

// RenamePair is one converted file.
type RenamePair struct {
	Old FileInfo // the removed/missing source file, e.g. a/Foo.java
	New FileInfo // the added replacement, e.g. a/Foo.kt

	// Name is the converted identifier: the base name without extension.
	Name string
}

// Blob identifies file content stored in the repository.
type Blob struct {
	Hash string
	Mode string // octal git file mode, e.g. "100644"
}

// Edit changes one path of a commit built on top of HEAD.
// A zero Blob with Remove set deletes the path.
type Edit struct {
	Path   string
	Blob   Blob
	Remove bool
}

// Repository is the version-control side of one working copy.
type Repository interface {
	// Root returns the absolute working-copy directory.
	Root() string

	// ChangeSet compares HEAD with the index and working tree. Read-only.
	ChangeSet(ctx context.Context) (ChangeSet, error)

	// StagedBlob returns the index entry of path.
	StagedBlob(ctx context.Context, path string) (Blob, error)

	// HeadBlob returns path's blob in HEAD and whether it exists there.
	HeadBlob(ctx context.Context, path string) (Blob, bool, error)

	// CommitEdits creates a commit whose tree is HEAD's tree with edits applied,
	// moves HEAD to it and returns its hash. The user's index is not touched.
	CommitEdits(ctx context.Context, message string, edits []Edit) (string, error)

	// Untrack drops paths from the index, leaving the working tree alone.
	Untrack(ctx context.Context, paths []string) error
}

// Progress reports long-running steps. Implementations must tolerate
// Stop without a preceding Start.
type Progress interface {
	Start(task string)
	Stop()
}
