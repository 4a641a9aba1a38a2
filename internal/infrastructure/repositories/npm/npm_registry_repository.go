package npm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// NpmRegistryRepository resolves versions through `npm view`, which prints
// the concrete version string a package spec resolves to.
type NpmRegistryRepository struct {
	executor domainRepos.ExecutorRepository
	command  string
}

var _ domainRepos.RegistryRepository = (*NpmRegistryRepository)(nil)

// NewNpmRegistryRepository creates a registry repository using the configured
// package-manager command.
func NewNpmRegistryRepository(
	executor domainRepos.ExecutorRepository,
	settings *entities.Settings,
) *NpmRegistryRepository {
	return &NpmRegistryRepository{
		executor: executor,
		command:  settings.PackageManager.Command,
	}
}

// ResolveVersion queries the registry for pkg@version and returns the raw
// answer with surrounding whitespace trimmed.
func (it *NpmRegistryRepository) ResolveVersion(
	ctx context.Context,
	pkg, version string,
) (string, error) {
	spec := fmt.Sprintf("%s@%s", pkg, version)

	output, err := it.executor.Run(ctx, "", it.command, "view", spec, "version")
	if err != nil {
		return "", fmt.Errorf("registry query for %q failed: %w", spec, err)
	}
	return strings.TrimSpace(output), nil
}
