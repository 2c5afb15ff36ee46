package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/zkvtools/internal/infrastructure/repositories"
)

const (
	cloneDirPattern = "zkvtools-sync-"
	upstreamDirName = "upstream"
	commitMessage   = "Bump dependencies to %s branch %s (commit %s)"
)

// Sync is the interface for the dependency synchronization command.
type Sync interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SyncOptions) (*SyncReport, error)
}

// SyncOptions holds the CLI overrides of a single synchronization run.
type SyncOptions struct {
	Branch       string // Upstream branch (or tag) to sync against
	UpstreamURL  string // Overrides settings.Sync.UpstreamURL when set
	ManifestPath string // Overrides settings.Sync.Manifest when set
	CheckCommand string // Overrides settings.Sync.CheckCommand when set
	NoCheck      bool
	NoCommit     bool
	Verbose      bool
}

// SyncReport summarizes what a run did.
type SyncReport struct {
	UpstreamCommit string
	Plan           entities.UpdatePlan
	Written        bool
	Verified       bool
	CommitHash     string
}

// SyncCommand runs CLONE -> INVENTORY -> SCAN -> REWRITE -> WRITE -> VERIFY -> COMMIT.
type SyncCommand struct {
	vcsFactory     infraRepos.VCSFactory
	checkerFactory infraRepos.CheckerFactory
	manifests      repositories.ManifestRepository
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	vcsFactory infraRepos.VCSFactory,
	checkerFactory infraRepos.CheckerFactory,
	manifests repositories.ManifestRepository,
) *SyncCommand {
	return &SyncCommand{
		vcsFactory:     vcsFactory,
		checkerFactory: checkerFactory,
		manifests:      manifests,
	}
}

// Execute synchronizes the local manifest with the upstream workspace at opts.Branch.
// The ephemeral clone is removed on every return path.
func (it *SyncCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SyncOptions,
) (*SyncReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfg := settings.Sync
	upstreamURL := firstNonEmpty(opts.UpstreamURL, cfg.UpstreamURL)
	checkCommand := firstNonEmpty(opts.CheckCommand, cfg.CheckCommand)
	manifestPath, err := filepath.Abs(firstNonEmpty(opts.ManifestPath, cfg.Manifest))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	vcs := it.vcsFactory(cfg.UpstreamToken, cfg.AuthorName, cfg.AuthorEmail)
	report := &SyncReport{}

	tmpDir, err := os.MkdirTemp("", cloneDirPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create clone directory: %w", entities.ErrUpstreamUnavailable, err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			logger.Warnf("Failed to remove %s: %v", tmpDir, rmErr)
		}
	}()

	// CLONE
	upstreamDir := filepath.Join(tmpDir, upstreamDirName)
	logger.Infof("Cloning %s (%s) on branch %q...", cfg.UpstreamName, upstreamURL, opts.Branch)
	report.UpstreamCommit, err = vcs.Clone(ctx, upstreamURL, opts.Branch, upstreamDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrUpstreamUnavailable, err)
	}
	logger.Infof("%s is at commit %s", cfg.UpstreamName, report.UpstreamCommit)

	// BUILD_INVENTORY
	inventory, err := it.manifests.Inventory(upstreamDir)
	if err != nil {
		return nil, fmt.Errorf("%w: upstream workspace: %w", entities.ErrManifestParse, err)
	}
	logger.Infof("Found %d packages in the %s workspace", inventory.Len(), cfg.UpstreamName)

	// SCAN_LOCAL
	doc, err := it.manifests.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestParse, err)
	}
	report.Plan = entities.PlanUpdates(doc.Dependencies(), inventory)
	logPlan(report.Plan)

	if report.Plan.IsEmpty() {
		logger.Info("All dependencies are up to date, nothing to do")
		return report, nil
	}

	// REWRITE
	for _, update := range report.Plan.Updates {
		if err = doc.SetVersion(update.Entry, update.TargetVersion); err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrManifestParse, err)
		}
	}

	// WRITE
	if err = it.manifests.Save(manifestPath, doc); err != nil {
		return nil, fmt.Errorf("failed to write updated manifest: %w", err)
	}
	report.Written = true
	logger.Infof("Updated %d dependencies in %s", len(report.Plan.Updates), manifestPath)

	// VERIFY
	if opts.NoCheck {
		logger.Info("Skipping build verification")
	} else {
		logger.Infof("Verifying the build with %q...", checkCommand)
		checker := it.checkerFactory(cfg.CheckShell)
		if err = checker.Check(ctx, filepath.Dir(manifestPath), checkCommand); err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrVerificationFailed, err)
		}
		report.Verified = true
	}

	// COMMIT
	if opts.NoCommit {
		logger.Info("Skipping commit")
		return report, nil
	}
	message := fmt.Sprintf(commitMessage, cfg.UpstreamName, opts.Branch, report.UpstreamCommit)
	report.CommitHash, err = vcs.Commit(ctx, []string{manifestPath}, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrCommitFailed, err)
	}
	logger.Infof("Committed %s: %s", report.CommitHash, message)

	return report, nil
}

func logPlan(plan entities.UpdatePlan) {
	for _, result := range plan.Results {
		entry := result.Entry
		switch result.Status {
		case entities.StatusUpdateNeeded:
			update := entities.DependencyUpdate{Entry: entry, TargetVersion: result.UpstreamVersion}
			logger.Infof("%s is going to be updated (from %s to %s, %s)",
				entry.Name, entry.Version, result.UpstreamVersion, update.Direction())
		case entities.StatusUpToDate:
			logger.Debugf("%s is up to date (%s)", entry.Name, entry.Version)
		case entities.StatusUnresolved:
			logger.Warnf("%s matches upstream %s but its version could not be located, skipping",
				entry.Name, entry.LookupKey())
		case entities.StatusNotUpstream:
			// not shared with upstream
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
