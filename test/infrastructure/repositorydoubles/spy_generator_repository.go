//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// SpyGeneratorRepository implements repositories.GeneratorRepository as a
// configurable spy.
type SpyGeneratorRepository struct {
	GenerateErr   error
	FailOnVersion string // when set, GenerateErr only fires for this version
	Calls         []GenerateCall
}

// GenerateCall records a single invocation of Generate.
type GenerateCall struct {
	Dir     string
	Version string
	AppName string
	Args    []string
}

var _ repositories.GeneratorRepository = (*SpyGeneratorRepository)(nil)

func (s *SpyGeneratorRepository) Generate(
	_ context.Context,
	dir, version, appName string,
	args []string,
) error {
	s.Calls = append(s.Calls, GenerateCall{Dir: dir, Version: version, AppName: appName, Args: args})
	if s.GenerateErr != nil && (s.FailOnVersion == "" || s.FailOnVersion == version) {
		return s.GenerateErr
	}
	return nil
}
