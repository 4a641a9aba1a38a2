//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with a
// canned answer.
type StubRegistryRepository struct {
	RawVersion string
	ResolveErr error
	Calls      []ResolveCall
}

// ResolveCall records a single invocation of ResolveVersion.
type ResolveCall struct {
	Pkg     string
	Version string
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) ResolveVersion(
	_ context.Context,
	pkg, version string,
) (string, error) {
	s.Calls = append(s.Calls, ResolveCall{Pkg: pkg, Version: version})
	return s.RawVersion, s.ResolveErr
}
