package repositories

import (
	"context"
)

// RegistryRepository queries the package registry for version metadata.
type RegistryRepository interface {
	// ResolveVersion returns the raw version string the registry reports for
	// pkg at the requested version (or "latest"). The caller is responsible
	// for validating the answer.
	ResolveVersion(ctx context.Context, pkg, version string) (string, error)
}
