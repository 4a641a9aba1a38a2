//go:build unit

package generator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	"github.com/rios0rios0/gitupgrade/internal/infrastructure/repositories/generator"
	"github.com/rios0rios0/gitupgrade/test/infrastructure/repositorydoubles"
)

func TestCLIGeneratorRepository_Generate(t *testing.T) {
	t.Parallel()

	t.Run("should invoke the generator with the app name and version", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.StubExecutorRepository{}
		repository := generator.NewCLIGeneratorRepository(executor, entities.DefaultSettings())

		// when
		err := repository.Generate(context.Background(), "/tmp/project", "0.26.0", "MyApp", nil)

		// then
		require.NoError(t, err)
		require.Len(t, executor.Calls, 1)
		call := executor.Calls[0]
		assert.Equal(t, "/tmp/project", call.Dir)
		assert.Equal(t, "react-native", call.Name)
		assert.Equal(t, []string{"MyApp", "--version", "0.26.0"}, call.Args)
	})

	t.Run("should forward extra arguments after the version", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.StubExecutorRepository{}
		repository := generator.NewCLIGeneratorRepository(executor, entities.DefaultSettings())

		// when
		err := repository.Generate(
			context.Background(), "/tmp/project", "0.26.0", "MyApp",
			[]string{"--template", "typescript"},
		)

		// then
		require.NoError(t, err)
		require.Len(t, executor.Calls, 1)
		assert.Equal(
			t,
			[]string{"MyApp", "--version", "0.26.0", "--template", "typescript"},
			executor.Calls[0].Args,
		)
	})

	t.Run("should wrap executor failures with the version", func(t *testing.T) {
		t.Parallel()

		// given
		runErr := &entities.CommandError{Command: "react-native MyApp", ExitCode: 1}
		executor := &repositorydoubles.StubExecutorRepository{RunErr: runErr}
		repository := generator.NewCLIGeneratorRepository(executor, entities.DefaultSettings())

		// when
		err := repository.Generate(context.Background(), "/tmp/project", "0.26.0", "MyApp", nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0.26.0")
		assert.ErrorIs(t, err, runErr)
	})
}
