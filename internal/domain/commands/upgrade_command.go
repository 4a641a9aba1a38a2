package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	"github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// Commit messages for the three snapshots, in pipeline order.
const (
	commitProjectSnapshot = "Project snapshot"
	commitOldVersion      = "Old version"
	commitNewVersion      = "New version"
)

// Upgrade is the interface for the upgrade command.
type Upgrade interface {
	Execute(ctx context.Context, settings *entities.Settings, opts UpgradeOptions) (string, error)
}

// UpgradeOptions holds runtime options for a single upgrade run.
type UpgradeOptions struct {
	ProjectDir       string   // application directory ("." by default)
	RequestedVersion string   // target version; empty means "latest"
	ExtraArgs        []string // arguments forwarded verbatim to the generator
	Verbose          bool
}

// UpgradeCommand orchestrates the whole upgrade: compatibility checks, target
// resolution, then the three-snapshot workflow that isolates template changes
// from the user's own edits. Every step must complete before the next starts
// and the first failure aborts the remainder; the working tree and the
// snapshot metadata are left in place for inspection.
type UpgradeCommand struct {
	snapshots      repositories.SnapshotRepository
	generator      repositories.GeneratorRepository
	registry       repositories.RegistryRepository
	packageManager repositories.PackageManagerRepository
}

// NewUpgradeCommand creates a new UpgradeCommand with the given collaborators.
func NewUpgradeCommand(
	snapshots repositories.SnapshotRepository,
	generator repositories.GeneratorRepository,
	registry repositories.RegistryRepository,
	packageManager repositories.PackageManagerRepository,
) *UpgradeCommand {
	return &UpgradeCommand{
		snapshots:      snapshots,
		generator:      generator,
		registry:       registry,
		packageManager: packageManager,
	}
}

// Execute runs the full upgrade and returns the diff between the old-template
// and new-template snapshots.
func (it *UpgradeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts UpgradeOptions,
) (string, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return "", fmt.Errorf("invalid project path: %w", err)
	}

	uctx, err := it.buildContext(projectDir, settings, opts)
	if err != nil {
		return "", err
	}

	if checkErr := runChecks(uctx, settings); checkErr != nil {
		return "", checkErr
	}

	if resolveErr := it.resolveTarget(ctx, uctx, settings); resolveErr != nil {
		return "", resolveErr
	}

	logger.Infof(
		"Upgrading %s from %s to %s",
		settings.Framework.Package, uctx.CurrentVersion, uctx.NewVersion,
	)

	return it.runSnapshotPipeline(ctx, projectDir, uctx, settings)
}

// buildContext reads the project manifests into a fresh UpgradeContext.
func (it *UpgradeCommand) buildContext(
	projectDir string,
	settings *entities.Settings,
	opts UpgradeOptions,
) (*entities.UpgradeContext, error) {
	project, err := entities.LoadProject(
		projectDir, settings.Framework.Package, settings.Framework.PeerPackage,
	)
	if err != nil {
		return nil, err
	}

	logger.Debugf(
		"Project %q: installed %s, declared %q",
		project.Name, project.InstalledVersion, project.DeclaredVersion,
	)

	return &entities.UpgradeContext{
		AppName:              project.Name,
		CurrentVersion:       project.InstalledVersion,
		DeclaredVersion:      project.DeclaredVersion,
		DeclaredReactVersion: project.DeclaredPeerVersion,
		CLIVersion:           opts.RequestedVersion,
		CLIArgs:              opts.ExtraArgs,
	}, nil
}

// runChecks validates the upgrade preconditions in their fixed order.
func runChecks(uctx *entities.UpgradeContext, settings *entities.Settings) error {
	if err := checkDeclaredVersion(uctx); err != nil {
		return err
	}
	if err := checkMatchingVersions(uctx); err != nil {
		return err
	}
	return checkReactPeerDependency(uctx, settings.Framework.PeerThreshold)
}

// resolveTarget queries the registry and stores the validated target version
// on the context. NewVersion is set exactly once.
func (it *UpgradeCommand) resolveTarget(
	ctx context.Context,
	uctx *entities.UpgradeContext,
	settings *entities.Settings,
) error {
	requested := uctx.CLIVersion
	if requested == "" {
		requested = "latest"
	}

	logger.Infof("Resolving %s@%s against the registry...", settings.Framework.Package, requested)

	raw, err := it.registry.ResolveVersion(ctx, settings.Framework.Package, requested)
	if err != nil {
		return err
	}

	newVersion, resolveErr := resolveNewVersion(raw, uctx.CLIVersion)
	if resolveErr != nil {
		return resolveErr
	}

	uctx.NewVersion = newVersion
	return nil
}

// runSnapshotPipeline drives the three-snapshot workflow. The first snapshot
// captures the user's tree, the second replays the old template on top of it
// so drift is absorbed before the final diff, and the third holds the new
// template. The deliverable is the patch between the last two.
func (it *UpgradeCommand) runSnapshotPipeline(
	ctx context.Context,
	projectDir string,
	uctx *entities.UpgradeContext,
	settings *entities.Settings,
) (string, error) {
	metadataDir, err := os.MkdirTemp("", "gitupgrade-")
	if err != nil {
		return "", fmt.Errorf("failed to create the snapshot metadata directory: %w", err)
	}
	uctx.TempRepositoryDir = metadataDir
	logger.Debugf("Snapshot metadata directory: %s", metadataDir)

	if initErr := it.snapshots.Init(projectDir, metadataDir); initErr != nil {
		return "", fmt.Errorf("failed to initialize the snapshot repository: %w", initErr)
	}

	if commitErr := it.snapshots.Commit(ctx, commitProjectSnapshot); commitErr != nil {
		return "", fmt.Errorf("failed to snapshot the project: %w", commitErr)
	}

	logger.Infof("Regenerating the template for the current version (%s)...", uctx.CurrentVersion)
	if genErr := it.generator.Generate(ctx, projectDir, uctx.CurrentVersion, uctx.AppName, uctx.CLIArgs); genErr != nil {
		return "", fmt.Errorf("failed to generate the old template: %w", genErr)
	}

	if commitErr := it.snapshots.Commit(ctx, commitOldVersion); commitErr != nil {
		return "", fmt.Errorf("failed to snapshot the old template: %w", commitErr)
	}

	logger.Infof("Installing %s@%s...", settings.Framework.Package, uctx.NewVersion)
	if installErr := it.packageManager.Install(ctx, projectDir, settings.Framework.Package, uctx.NewVersion); installErr != nil {
		return "", fmt.Errorf("failed to install the new version: %w", installErr)
	}

	logger.Infof("Regenerating the template for the new version (%s)...", uctx.NewVersion)
	if genErr := it.generator.Generate(ctx, projectDir, uctx.NewVersion, uctx.AppName, uctx.CLIArgs); genErr != nil {
		return "", fmt.Errorf("failed to generate the new template: %w", genErr)
	}

	if commitErr := it.snapshots.Commit(ctx, commitNewVersion); commitErr != nil {
		return "", fmt.Errorf("failed to snapshot the new template: %w", commitErr)
	}

	diff, diffErr := it.snapshots.DiffLastTwo(ctx)
	if diffErr != nil {
		return "", fmt.Errorf("failed to compute the upgrade diff: %w", diffErr)
	}
	return diff, nil
}
