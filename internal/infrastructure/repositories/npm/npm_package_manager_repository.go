package npm

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// NpmPackageManagerRepository installs packages with `npm install --save`,
// updating the project manifest in place.
type NpmPackageManagerRepository struct {
	executor domainRepos.ExecutorRepository
	command  string
}

var _ domainRepos.PackageManagerRepository = (*NpmPackageManagerRepository)(nil)

// NewNpmPackageManagerRepository creates a package-manager repository using
// the configured command.
func NewNpmPackageManagerRepository(
	executor domainRepos.ExecutorRepository,
	settings *entities.Settings,
) *NpmPackageManagerRepository {
	return &NpmPackageManagerRepository{
		executor: executor,
		command:  settings.PackageManager.Command,
	}
}

// Install installs pkg at the exact given version into dir.
func (it *NpmPackageManagerRepository) Install(
	ctx context.Context,
	dir, pkg, version string,
) error {
	spec := fmt.Sprintf("%s@%s", pkg, version)

	// --color=false keeps the captured output readable in error reports.
	_, err := it.executor.Run(ctx, dir, it.command, "install", "--save", "--color=false", spec)
	if err != nil {
		return fmt.Errorf("install of %q failed: %w", spec, err)
	}
	return nil
}
