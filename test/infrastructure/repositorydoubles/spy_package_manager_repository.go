//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// SpyPackageManagerRepository implements repositories.PackageManagerRepository
// as a configurable spy.
type SpyPackageManagerRepository struct {
	InstallErr error
	Calls      []InstallCall
}

// InstallCall records a single invocation of Install.
type InstallCall struct {
	Dir     string
	Pkg     string
	Version string
}

var _ repositories.PackageManagerRepository = (*SpyPackageManagerRepository)(nil)

func (s *SpyPackageManagerRepository) Install(
	_ context.Context,
	dir, pkg, version string,
) error {
	s.Calls = append(s.Calls, InstallCall{Dir: dir, Pkg: pkg, Version: version})
	return s.InstallErr
}
