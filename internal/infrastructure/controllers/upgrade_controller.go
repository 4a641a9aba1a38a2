package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitupgrade/internal/domain/commands"
	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
)

// UpgradeController binds the upgrade command to the CLI surface. The diff is
// the only output on stdout; everything else goes through the logger on
// stderr, so the result stays pipeable.
type UpgradeController struct {
	command  commands.Upgrade
	settings *entities.Settings
}

// NewUpgradeController creates a new UpgradeController.
func NewUpgradeController(command commands.Upgrade, settings *entities.Settings) *UpgradeController {
	return &UpgradeController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the upgrade controller.
func (it *UpgradeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "gitupgrade [version]",
		Short: "Upgrade a generated application's template files via git snapshots",
		Long: `Upgrade a generated application's template files to a newer framework
version while preserving your local edits.

The tool commits three snapshots into an isolated, throwaway git repository
(your project, the old template, the new template) and prints the diff
between the last two: exactly what changed in the template between the two
versions, computed against a baseline that already contains your edits.

Without a version argument the latest published version is used. Arguments
after "--" are forwarded verbatim to the template generator.`,
	}
}

// AddFlags adds the upgrade-specific flags to the given Cobra command.
func (it *UpgradeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("project", ".", "Path to the application directory")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}

// Execute runs the upgrade and prints the resulting diff to stdout.
func (it *UpgradeController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	projectDir, _ := cmd.Flags().GetString("project")
	verbose, _ := cmd.Flags().GetBool("verbose")

	positional, extra := splitDashArgs(cmd, args)
	if len(positional) > 1 {
		return fmt.Errorf("expected at most one version argument, got %d", len(positional))
	}

	requested := ""
	if len(positional) == 1 {
		requested = positional[0]
	}

	diff, err := it.command.Execute(ctx, it.settings, commands.UpgradeOptions{
		ProjectDir:       projectDir,
		RequestedVersion: requested,
		ExtraArgs:        extra,
		Verbose:          verbose,
	})
	if err != nil {
		return err
	}

	if diff == "" {
		logger.Info("The template did not change between the two versions.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), diff)
	return nil
}

// splitDashArgs separates positional arguments from everything after "--",
// which is forwarded to the generator untouched.
func splitDashArgs(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}
