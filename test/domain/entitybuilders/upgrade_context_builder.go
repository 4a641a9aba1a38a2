//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// UpgradeContextBuilder helps create test upgrade contexts with a fluent interface.
type UpgradeContextBuilder struct {
	*testkit.BaseBuilder
	appName              string
	currentVersion       string
	declaredVersion      string
	declaredReactVersion string
	cliVersion           string
	cliArgs              []string
}

// NewUpgradeContextBuilder creates a new upgrade-context builder with sensible defaults.
func NewUpgradeContextBuilder() *UpgradeContextBuilder {
	return &UpgradeContextBuilder{
		BaseBuilder:          testkit.NewBaseBuilder(),
		appName:              "TestApp",
		currentVersion:       "0.25.0",
		declaredVersion:      "^0.25.0",
		declaredReactVersion: "^16.0.0",
		cliVersion:           "",
		cliArgs:              nil,
	}
}

// WithAppName sets the application name.
func (b *UpgradeContextBuilder) WithAppName(name string) *UpgradeContextBuilder {
	b.appName = name
	return b
}

// WithCurrentVersion sets the installed framework version.
func (b *UpgradeContextBuilder) WithCurrentVersion(version string) *UpgradeContextBuilder {
	b.currentVersion = version
	return b
}

// WithDeclaredVersion sets the declared dependency range.
func (b *UpgradeContextBuilder) WithDeclaredVersion(rng string) *UpgradeContextBuilder {
	b.declaredVersion = rng
	return b
}

// WithDeclaredReactVersion sets the declared peer dependency range.
func (b *UpgradeContextBuilder) WithDeclaredReactVersion(rng string) *UpgradeContextBuilder {
	b.declaredReactVersion = rng
	return b
}

// WithCLIVersion sets the user-requested target version.
func (b *UpgradeContextBuilder) WithCLIVersion(version string) *UpgradeContextBuilder {
	b.cliVersion = version
	return b
}

// WithCLIArgs sets the forwarded generator arguments.
func (b *UpgradeContextBuilder) WithCLIArgs(args ...string) *UpgradeContextBuilder {
	b.cliArgs = args
	return b
}

// Build creates the upgrade context (satisfies testkit.Builder interface).
func (b *UpgradeContextBuilder) Build() interface{} {
	return b.BuildUpgradeContext()
}

// BuildUpgradeContext creates the upgrade context with a concrete return type.
func (b *UpgradeContextBuilder) BuildUpgradeContext() *entities.UpgradeContext {
	return &entities.UpgradeContext{
		AppName:              b.appName,
		CurrentVersion:       b.currentVersion,
		DeclaredVersion:      b.declaredVersion,
		DeclaredReactVersion: b.declaredReactVersion,
		CLIVersion:           b.cliVersion,
		CLIArgs:              b.cliArgs,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *UpgradeContextBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.appName = "TestApp"
	b.currentVersion = "0.25.0"
	b.declaredVersion = "^0.25.0"
	b.declaredReactVersion = "^16.0.0"
	b.cliVersion = ""
	b.cliArgs = nil
	return b
}

// Clone creates a deep copy of the UpgradeContextBuilder.
func (b *UpgradeContextBuilder) Clone() testkit.Builder {
	cliArgs := make([]string, len(b.cliArgs))
	copy(cliArgs, b.cliArgs)

	return &UpgradeContextBuilder{
		BaseBuilder:          b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		appName:              b.appName,
		currentVersion:       b.currentVersion,
		declaredVersion:      b.declaredVersion,
		declaredReactVersion: b.declaredReactVersion,
		cliVersion:           b.cliVersion,
		cliArgs:              cliArgs,
	}
}
