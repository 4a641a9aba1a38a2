package repositories

import (
	"context"
)

// PackageManagerRepository installs packages into the project directory.
type PackageManagerRepository interface {
	// Install installs pkg at the exact given version into dir, recording it
	// in the project manifest.
	Install(ctx context.Context, dir, pkg, version string) error
}
