package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitupgrade/internal"
	"github.com/rios0rios0/gitupgrade/internal/infrastructure/controllers"
)

func injectUpgradeController() *controllers.UpgradeController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var upgradeController *controllers.UpgradeController
	if err := container.Invoke(func(uc *controllers.UpgradeController) {
		upgradeController = uc
	}); err != nil {
		panic(err)
	}

	return upgradeController
}
