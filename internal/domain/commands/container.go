package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewUpgradeCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	return container.Provide(func(impl *UpgradeCommand) Upgrade {
		return impl
	})
}
