// Package git gives j2kt read and write access to one working copy.
//
// Reads go through go-git: opening the repository, computing the status
// against HEAD, and looking up index entries and HEAD blobs. This works without
// spawning processes and keeps the status query side-effect free.
//
// Writes go through the git CLI plumbing so the user's configuration
// (identity, object format, ref storage) applies:
//
//   - [WorkingCopy.CommitEdits]: builds a commit from HEAD plus explicit
//     path edits on a private temporary index and moves HEAD to it
//   - [WorkingCopy.Untrack]: drops paths from the real index
package git
