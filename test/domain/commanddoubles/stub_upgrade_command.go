//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitupgrade/internal/domain/commands"
	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
)

// StubUpgradeCommand is a stub implementation of commands.Upgrade.
type StubUpgradeCommand struct {
	ExecuteCallCount int
	Diff             string
	ExecuteErr       error
	LastOpts         commands.UpgradeOptions
	LastSettings     *entities.Settings
}

var _ commands.Upgrade = (*StubUpgradeCommand)(nil)

func (s *StubUpgradeCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.UpgradeOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Diff, s.ExecuteErr
}
