package generator

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// CLIGeneratorRepository invokes the external template generator command in
// the project directory. What files the generator writes is its own business;
// this boundary only reports completion.
type CLIGeneratorRepository struct {
	executor domainRepos.ExecutorRepository
	command  string
}

var _ domainRepos.GeneratorRepository = (*CLIGeneratorRepository)(nil)

// NewCLIGeneratorRepository creates a generator repository using the
// configured generator command.
func NewCLIGeneratorRepository(
	executor domainRepos.ExecutorRepository,
	settings *entities.Settings,
) *CLIGeneratorRepository {
	return &CLIGeneratorRepository{
		executor: executor,
		command:  settings.Generator.Command,
	}
}

// Generate regenerates the template for the given version into dir. The
// forwarded arguments go last so they can override generator defaults.
func (it *CLIGeneratorRepository) Generate(
	ctx context.Context,
	dir, version, appName string,
	args []string,
) error {
	generatorArgs := append([]string{appName, "--version", version}, args...)

	_, err := it.executor.Run(ctx, dir, it.command, generatorArgs...)
	if err != nil {
		return fmt.Errorf("template generation for version %s failed: %w", version, err)
	}
	return nil
}
