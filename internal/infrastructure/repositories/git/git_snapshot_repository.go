package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"

	domainRepos "github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// Commit signature for the snapshot commits. The repository is ephemeral
// working state, so the identity only needs to be stable, not personal.
const (
	authorName  = "gitupgrade"
	authorEmail = "gitupgrade@localhost"
)

// GitSnapshotRepository implements SnapshotRepository on go-git with split
// storage: object/ref metadata lives in a private directory while the
// project directory is only ever read as the content tree. A `.git` already
// present in the project is skipped during worktree traversal, so the user's
// own history is never read or modified.
type GitSnapshotRepository struct {
	repo *gogit.Repository
}

var _ domainRepos.SnapshotRepository = (*GitSnapshotRepository)(nil)

// NewGitSnapshotRepository creates an uninitialized snapshot repository.
func NewGitSnapshotRepository() *GitSnapshotRepository {
	return &GitSnapshotRepository{}
}

// Init creates the isolated repository. Called exactly once per run.
func (it *GitSnapshotRepository) Init(workTreeDir, metadataDir string) error {
	if it.repo != nil {
		return errors.New("snapshot repository is already initialized")
	}

	storage := filesystem.NewStorage(osfs.New(metadataDir), cache.NewObjectLRUDefault())
	repo, err := gogit.Init(storage, osfs.New(workTreeDir))
	if err != nil {
		return fmt.Errorf("git init in %q failed: %w", metadataDir, err)
	}

	it.repo = repo
	return nil
}

// Commit stages everything and commits. Empty deltas are committed anyway so
// the next diff stays relative to a known tree state.
func (it *GitSnapshotRepository) Commit(_ context.Context, message string) error {
	if it.repo == nil {
		return errors.New("snapshot repository is not initialized")
	}

	worktree, err := it.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open the worktree: %w", err)
	}

	if addErr := worktree.AddWithOptions(&gogit.AddOptions{All: true}); addErr != nil {
		return fmt.Errorf("git add failed: %w", addErr)
	}

	_, err = worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
		AllowEmptyCommits: true,
	})
	if err != nil {
		return fmt.Errorf("git commit %q failed: %w", message, err)
	}
	return nil
}

// DiffLastTwo returns the patch between HEAD~1 and HEAD.
func (it *GitSnapshotRepository) DiffLastTwo(ctx context.Context) (string, error) {
	if it.repo == nil {
		return "", errors.New("snapshot repository is not initialized")
	}

	headRef, err := it.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	head, err := it.repo.CommitObject(headRef.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to read the HEAD commit: %w", err)
	}

	if head.NumParents() == 0 {
		return "", errors.New("need at least two commits to diff")
	}

	parent, err := head.Parent(0)
	if err != nil {
		return "", fmt.Errorf("failed to read the previous commit: %w", err)
	}

	patch, err := parent.PatchContext(ctx, head)
	if err != nil {
		return "", fmt.Errorf("failed to compute the patch: %w", err)
	}
	return patch.String(), nil
}
