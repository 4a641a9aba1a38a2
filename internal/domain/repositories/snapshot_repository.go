package repositories

import (
	"context"
)

// SnapshotRepository abstracts the throwaway version-control store used to
// capture the upgrade snapshots. Implementations must keep their metadata in
// the given directory, outside the project tree, so a pre-existing repository
// in the project is never read or modified.
type SnapshotRepository interface {
	// Init creates an empty repository whose metadata lives in metadataDir
	// and whose content tree is workTreeDir. Called exactly once per run,
	// before any other method.
	Init(workTreeDir, metadataDir string) error

	// Commit stages the whole working tree and commits it with the given
	// message. Empty deltas still produce a commit so later diffs stay
	// well-defined.
	Commit(ctx context.Context, message string) error

	// DiffLastTwo returns the textual patch between the two most recent
	// commits.
	DiffLastTwo(ctx context.Context) (string, error)
}
