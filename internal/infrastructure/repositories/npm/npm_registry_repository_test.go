//go:build unit

package npm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	"github.com/rios0rios0/gitupgrade/internal/infrastructure/repositories/npm"
	"github.com/rios0rios0/gitupgrade/test/infrastructure/repositorydoubles"
)

func TestNpmRegistryRepository_ResolveVersion(t *testing.T) {
	t.Parallel()

	t.Run("should query the registry with the package spec", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.StubExecutorRepository{Output: "0.26.2\n"}
		repository := npm.NewNpmRegistryRepository(executor, entities.DefaultSettings())

		// when
		version, err := repository.ResolveVersion(context.Background(), "react-native", "latest")

		// then
		require.NoError(t, err)
		assert.Equal(t, "0.26.2", version)
		require.Len(t, executor.Calls, 1)
		call := executor.Calls[0]
		assert.Empty(t, call.Dir)
		assert.Equal(t, "npm", call.Name)
		assert.Equal(t, []string{"view", "react-native@latest", "version"}, call.Args)
	})

	t.Run("should use the configured package manager command", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.PackageManager.Command = "pnpm"
		executor := &repositorydoubles.StubExecutorRepository{Output: "0.26.0\n"}
		repository := npm.NewNpmRegistryRepository(executor, settings)

		// when
		_, err := repository.ResolveVersion(context.Background(), "react-native", "next")

		// then
		require.NoError(t, err)
		require.Len(t, executor.Calls, 1)
		assert.Equal(t, "pnpm", executor.Calls[0].Name)
	})

	t.Run("should wrap executor failures", func(t *testing.T) {
		t.Parallel()

		// given
		runErr := &entities.CommandError{Command: "npm view", ExitCode: 1}
		executor := &repositorydoubles.StubExecutorRepository{RunErr: runErr}
		repository := npm.NewNpmRegistryRepository(executor, entities.DefaultSettings())

		// when
		_, err := repository.ResolveVersion(context.Background(), "react-native", "banana")

		// then
		require.Error(t, err)
		var cmdErr *entities.CommandError
		assert.True(t, errors.As(err, &cmdErr))
		assert.Contains(t, err.Error(), "react-native@banana")
	})
}
