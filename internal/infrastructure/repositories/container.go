package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gitupgrade/internal/domain/repositories"
	generatorRepo "github.com/rios0rios0/gitupgrade/internal/infrastructure/repositories/generator"
	gitRepo "github.com/rios0rios0/gitupgrade/internal/infrastructure/repositories/git"
	npmRepo "github.com/rios0rios0/gitupgrade/internal/infrastructure/repositories/npm"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register implementation constructors
	constructors := []interface{}{
		NewCommandExecutor,
		gitRepo.NewGitSnapshotRepository,
		npmRepo.NewNpmRegistryRepository,
		npmRepo.NewNpmPackageManagerRepository,
		generatorRepo.NewCLIGeneratorRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *CommandExecutor) domainRepos.ExecutorRepository { return impl },
		func(impl *gitRepo.GitSnapshotRepository) domainRepos.SnapshotRepository { return impl },
		func(impl *npmRepo.NpmRegistryRepository) domainRepos.RegistryRepository { return impl },
		func(impl *npmRepo.NpmPackageManagerRepository) domainRepos.PackageManagerRepository { return impl },
		func(impl *generatorRepo.CLIGeneratorRepository) domainRepos.GeneratorRepository { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
