package commands

import (
	"fmt"
	"strings"

	rangesemver "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
)

// The compatibility checks run in a fixed order and fail fast: the declared
// range must exist before it can be matched, and the match must hold before
// the peer-dependency rule is meaningful.

// checkDeclaredVersion fails when the manifest declares no range for the
// framework dependency.
func checkDeclaredVersion(uctx *entities.UpgradeContext) error {
	if uctx.DeclaredVersion == "" {
		return entities.ErrMissingDependencyDeclaration
	}
	return nil
}

// checkMatchingVersions fails when the installed version does not satisfy the
// declared range. Pure check, no side effects.
func checkMatchingVersions(uctx *entities.UpgradeContext) error {
	constraint, err := rangesemver.NewConstraint(uctx.DeclaredVersion)
	if err != nil {
		return fmt.Errorf("declared range %q is not a valid constraint: %w", uctx.DeclaredVersion, err)
	}

	current, err := rangesemver.NewVersion(uctx.CurrentVersion)
	if err != nil {
		return fmt.Errorf("installed version %q is not a valid semantic version: %w", uctx.CurrentVersion, err)
	}

	if !constraint.Check(current) {
		return &entities.VersionMismatchError{
			Current:  uctx.CurrentVersion,
			Declared: uctx.DeclaredVersion,
		}
	}
	return nil
}

// checkReactPeerDependency enforces a one-time migration rule: before the
// threshold release the peer dependency shipped transitively, from it onward
// the project must declare it. Versions at or past the threshold always pass.
func checkReactPeerDependency(uctx *entities.UpgradeContext, threshold string) error {
	if semver.Compare(normalizeVersion(uctx.CurrentVersion), normalizeVersion(threshold)) >= 0 {
		return nil
	}
	if uctx.DeclaredReactVersion == "" {
		return entities.ErrMissingPeerDependency
	}
	return nil
}

// resolveNewVersion canonicalizes the raw registry answer. An unparsable
// answer only maps to InvalidVersionError when the user explicitly requested
// a target; with no explicit target the resolution fell back to "latest" and
// a bad answer is a registry problem, not a user one.
func resolveNewVersion(raw, cliVersion string) (string, error) {
	parsed, err := rangesemver.NewVersion(strings.TrimSpace(raw))
	if err == nil {
		return parsed.String(), nil
	}

	if cliVersion != "" {
		return "", &entities.InvalidVersionError{Requested: cliVersion}
	}
	return "", fmt.Errorf("registry returned unusable version %q: %w", strings.TrimSpace(raw), err)
}

// normalizeVersion ensures the 'v' prefix golang.org/x/mod/semver expects.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
