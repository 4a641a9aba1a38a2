//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// SpySnapshotRepository implements repositories.SnapshotRepository as a
// configurable spy.
type SpySnapshotRepository struct {
	// --- Init ---
	InitErr   error
	InitCalls []InitCall

	// --- Commit ---
	CommitErr    error
	FailOnCommit string // when set, CommitErr only fires for this message
	CommitMessages []string

	// --- DiffLastTwo ---
	DiffResult string
	DiffErr    error
	DiffCalls  int
}

// InitCall records a single invocation of Init.
type InitCall struct {
	WorkTreeDir string
	MetadataDir string
}

var _ repositories.SnapshotRepository = (*SpySnapshotRepository)(nil)

func (s *SpySnapshotRepository) Init(workTreeDir, metadataDir string) error {
	s.InitCalls = append(s.InitCalls, InitCall{WorkTreeDir: workTreeDir, MetadataDir: metadataDir})
	return s.InitErr
}

func (s *SpySnapshotRepository) Commit(_ context.Context, message string) error {
	s.CommitMessages = append(s.CommitMessages, message)
	if s.CommitErr != nil && (s.FailOnCommit == "" || s.FailOnCommit == message) {
		return s.CommitErr
	}
	return nil
}

func (s *SpySnapshotRepository) DiffLastTwo(_ context.Context) (string, error) {
	s.DiffCalls++
	return s.DiffResult, s.DiffErr
}
