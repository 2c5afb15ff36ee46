package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/zkvtools/internal/domain/commands"
	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// SyncController handles the "sync-deps" subcommand.
type SyncController struct {
	command commands.Sync
	search  entities.ConfigSearch
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync, search entities.ConfigSearch) *SyncController {
	return &SyncController{command: command, search: search}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync-deps <branch>",
		Short: "Align shared dependency versions with an upstream workspace",
		Long: `Clone the upstream workspace at the given branch, compare the versions
of its members with the local [workspace.dependencies] table, rewrite the
versions that differ in place, verify the build and commit the manifest.

Only the version fields are touched; comments, ordering and every other
attribute of the manifest are preserved.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute runs one synchronization.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.search)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	noCheck, _ := cmd.Flags().GetBool("no-check")
	noCommit, _ := cmd.Flags().GetBool("no-commit")
	manifest, _ := cmd.Flags().GetString("manifest")
	upstreamURL, _ := cmd.Flags().GetString("upstream-url")
	checkCommand, _ := cmd.Flags().GetString("check-command")

	_, err = it.command.Execute(cmd.Context(), settings, commands.SyncOptions{
		Branch:       args[0],
		UpstreamURL:  upstreamURL,
		ManifestPath: manifest,
		CheckCommand: checkCommand,
		NoCheck:      noCheck,
		NoCommit:     noCommit,
		Verbose:      verbose,
	})
	return err
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-check", false, "Skip the build verification")
	cmd.Flags().Bool("no-commit", false, "Skip committing the updated manifest")
	cmd.Flags().String("manifest", "", "Path to the local workspace manifest (default: Cargo.toml)")
	cmd.Flags().String("upstream-url", "", "Upstream repository to clone (overrides the config file)")
	cmd.Flags().String("check-command", "", "Build verification command (default: cargo check)")
}
