package repositories

import (
	"context"
)

// GeneratorRepository is the external template generator boundary. The
// orchestrator never inspects what files a generation writes; it only
// requires that the call completes before the next snapshot is taken.
type GeneratorRepository interface {
	// Generate regenerates the template files for the given framework
	// version into dir, parametrized by the application name and the
	// forwarded arguments.
	Generate(ctx context.Context, dir, version, appName string, args []string) error
}
