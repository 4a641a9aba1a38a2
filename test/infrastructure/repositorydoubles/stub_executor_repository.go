//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// StubExecutorRepository implements repositories.ExecutorRepository with a
// canned result, recording every invocation.
type StubExecutorRepository struct {
	Output string
	RunErr error
	Calls  []ExecCall
}

// ExecCall records a single invocation of Run.
type ExecCall struct {
	Dir  string
	Name string
	Args []string
}

var _ repositories.ExecutorRepository = (*StubExecutorRepository)(nil)

func (s *StubExecutorRepository) Run(
	_ context.Context,
	dir, name string,
	args ...string,
) (string, error) {
	s.Calls = append(s.Calls, ExecCall{Dir: dir, Name: name, Args: args})
	return s.Output, s.RunErr
}
