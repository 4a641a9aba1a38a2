package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingDependencyDeclaration means the project manifest has no entry for
// the framework dependency, so no upgrade baseline can be established.
var ErrMissingDependencyDeclaration = errors.New(
	"the project manifest does not declare the framework as a dependency; add it and reinstall before upgrading",
)

// ErrMissingPeerDependency means the installed framework version predates the
// release that stopped bundling the peer dependency transitively, and the
// manifest does not declare it explicitly.
var ErrMissingPeerDependency = errors.New(
	"the required peer dependency is not declared in the project manifest; add it and reinstall before upgrading",
)

// VersionMismatchError means the installed framework version does not satisfy
// the range the manifest declares.
type VersionMismatchError struct {
	Current  string
	Declared string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf(
		"installed version %q does not satisfy the declared range %q; reinstall dependencies before upgrading",
		e.Current, e.Declared,
	)
}

// InvalidVersionError means the user-requested target did not resolve to a
// valid semantic version against the registry.
type InvalidVersionError struct {
	Requested string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("requested version %q does not resolve to a valid semantic version", e.Requested)
}

// CommandError carries the command line and exit code of a failed external
// process. The working tree is left as-is for manual inspection.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}
