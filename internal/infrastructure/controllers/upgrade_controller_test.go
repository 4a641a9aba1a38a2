//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	"github.com/rios0rios0/gitupgrade/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitupgrade/test/domain/commanddoubles"
)

func newTestCommand(controller *controllers.UpgradeController) (*cobra.Command, *bytes.Buffer) {
	bind := controller.GetBind()
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          controller.Execute,
	}
	controller.AddFlags(cmd)

	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, stdout
}

func TestUpgradeController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the diff to stdout", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpgradeCommand{Diff: "diff --git a/index.js b/index.js\n"}
		controller := controllers.NewUpgradeController(stub, entities.DefaultSettings())
		cmd, stdout := newTestCommand(controller)
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "diff --git a/index.js b/index.js\n", stdout.String())
		assert.Equal(t, 1, stub.ExecuteCallCount)
	})

	t.Run("should default to the current directory and the latest version", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpgradeCommand{}
		controller := controllers.NewUpgradeController(stub, entities.DefaultSettings())
		cmd, _ := newTestCommand(controller)
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".", stub.LastOpts.ProjectDir)
		assert.Empty(t, stub.LastOpts.RequestedVersion)
		assert.Empty(t, stub.LastOpts.ExtraArgs)
		assert.False(t, stub.LastOpts.Verbose)
	})

	t.Run("should map flags and the version argument onto the options", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpgradeCommand{}
		controller := controllers.NewUpgradeController(stub, entities.DefaultSettings())
		cmd, _ := newTestCommand(controller)
		cmd.SetArgs([]string{"--project", "/tmp/app", "-v", "0.26.0"})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "/tmp/app", stub.LastOpts.ProjectDir)
		assert.Equal(t, "0.26.0", stub.LastOpts.RequestedVersion)
		assert.True(t, stub.LastOpts.Verbose)
	})

	t.Run("should forward arguments after the dash to the generator", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpgradeCommand{}
		controller := controllers.NewUpgradeController(stub, entities.DefaultSettings())
		cmd, _ := newTestCommand(controller)
		cmd.SetArgs([]string{"0.26.0", "--", "--template", "typescript"})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "0.26.0", stub.LastOpts.RequestedVersion)
		assert.Equal(t, []string{"--template", "typescript"}, stub.LastOpts.ExtraArgs)
	})

	t.Run("should reject more than one version argument", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpgradeCommand{}
		controller := controllers.NewUpgradeController(stub, entities.DefaultSettings())
		cmd, _ := newTestCommand(controller)
		cmd.SetArgs([]string{"0.26.0", "0.27.0"})

		// when
		err := cmd.Execute()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most one version argument")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should pass the settings through to the command", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Framework.Package = "my-framework"
		stub := &commanddoubles.StubUpgradeCommand{}
		controller := controllers.NewUpgradeController(stub, settings)
		cmd, _ := newTestCommand(controller)
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		require.NotNil(t, stub.LastSettings)
		assert.Equal(t, "my-framework", stub.LastSettings.Framework.Package)
	})

	t.Run("should propagate command failures without printing", func(t *testing.T) {
		t.Parallel()

		// given
		wantErr := errors.New("generation failed")
		stub := &commanddoubles.StubUpgradeCommand{ExecuteErr: wantErr}
		controller := controllers.NewUpgradeController(stub, entities.DefaultSettings())
		cmd, stdout := newTestCommand(controller)
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, wantErr)
		assert.Empty(t, stdout.String())
	})

	t.Run("should print nothing to stdout for an empty diff", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpgradeCommand{Diff: ""}
		controller := controllers.NewUpgradeController(stub, entities.DefaultSettings())
		cmd, stdout := newTestCommand(controller)
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})
}
