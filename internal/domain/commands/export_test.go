package commands

// CheckDeclaredVersion exports checkDeclaredVersion for testing.
var CheckDeclaredVersion = checkDeclaredVersion //nolint:gochecknoglobals // test export

// CheckMatchingVersions exports checkMatchingVersions for testing.
var CheckMatchingVersions = checkMatchingVersions //nolint:gochecknoglobals // test export

// CheckReactPeerDependency exports checkReactPeerDependency for testing.
var CheckReactPeerDependency = checkReactPeerDependency //nolint:gochecknoglobals // test export

// ResolveNewVersion exports resolveNewVersion for testing.
var ResolveNewVersion = resolveNewVersion //nolint:gochecknoglobals // test export

// Snapshot commit messages exported for testing.
const (
	CommitProjectSnapshot = commitProjectSnapshot
	CommitOldVersion      = commitOldVersion
	CommitNewVersion      = commitNewVersion
)
