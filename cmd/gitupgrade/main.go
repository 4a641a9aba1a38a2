package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitupgrade/internal/infrastructure/controllers"
)

func buildRootCommand(upgradeController *controllers.UpgradeController) *cobra.Command {
	bind := upgradeController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          upgradeController.Execute,
	}

	upgradeController.AddFlags(cmd)
	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject the controller via DIG
	upgradeController := injectUpgradeController()
	cobraRoot := buildRootCommand(upgradeController)

	if err := cobraRoot.Execute(); err != nil {
		logger.Errorf("Upgrade failed: %s", err)
		os.Exit(1)
	}
}
