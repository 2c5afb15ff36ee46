package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/zkvtools/internal/domain/commands"
	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// ProfileController handles the "profile-ci" subcommand.
type ProfileController struct {
	command commands.Profile
	search  entities.ConfigSearch
}

// NewProfileController creates a new ProfileController.
func NewProfileController(command commands.Profile, search entities.ConfigSearch) *ProfileController {
	return &ProfileController{command: command, search: search}
}

// GetBind returns the Cobra command metadata for the profile controller.
func (it *ProfileController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "profile-ci [token]",
		Short: "Print per-job timings of successful CI runs",
		Long: `Query workflow runs from the most recent to the least recent and print
one "Run_Id;Run_Number;Job_Id;Total_Seconds" record per profiled job of
every successfully completed run.

If you hit "403 rate limit exceeded", wait for the quota to refresh and use
--skip and --stop-after-processed to query the runs you still need.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// Execute profiles the configured repository, writing records to stdout.
func (it *ProfileController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.search)
	if err != nil {
		return err
	}

	opts := commands.ProfileOptions{}
	if len(args) > 0 {
		opts.Token = args[0]
	}
	opts.Owner, _ = cmd.Flags().GetString("owner")
	opts.Repository, _ = cmd.Flags().GetString("repository")
	opts.StopAfterProcessed, _ = cmd.Flags().GetInt("stop-after-processed")
	opts.Skip, _ = cmd.Flags().GetInt("skip")
	opts.Jobs, _ = cmd.Flags().GetStringSlice("jobs-to-profile")

	return it.command.Execute(cmd.Context(), settings, opts, cmd.OutOrStdout())
}

// AddFlags adds the profile-specific flags to the given Cobra command.
func (it *ProfileController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("owner", "", "Repository owner (default: "+entities.DefaultCIOwner+")")
	cmd.Flags().String("repository", "", "Repository name (default: "+entities.DefaultCIRepository+")")
	cmd.Flags().Int("stop-after-processed", entities.DefaultStopAfterProcessed,
		"Stop after processing N successfully completed workflow runs")
	cmd.Flags().Int("skip", 0, "Skip the first N successfully completed workflow runs")
	cmd.Flags().StringSlice("jobs-to-profile", nil, "Names of the jobs to profile (default: the build, coverage, lint and e2e jobs)")
}
