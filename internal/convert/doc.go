// Package convert pairs Java files replaced by Kotlin files and records each
// conversion as two commits so git history keeps following the file.
//
// # Pairing
//
// [Match] looks at the working copy's [ChangeSet]: an added "Foo.kt" is paired
// with "Foo.java" when that path was removed from the index or is missing from
// the working tree. Added Kotlin files without a Java counterpart are left alone.
//
// # Committing
//
// [Orchestrator.Commit] writes two commits per batch:
//
//  1. every old Java path takes the staged content of its Kotlin replacement,
//     so the conversion shows up as an in-place content change;
//  2. every old path is removed and every new path added with the identical
//     blob, which git's rename detection reports as a 100% rename.
//
// Both commits are built from HEAD plus the batch only; anything else the user
// staged stays staged. When HEAD already holds step 1 (an interrupted earlier
// run), step 1 is skipped.
//
// No file is renamed on disk: the working tree already holds the Kotlin file
// at its final path, so only commits and the index change.
//
// Nothing in this package writes to the console; callers render [Report].
package convert
