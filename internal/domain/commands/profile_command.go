package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/zkvtools/internal/infrastructure/repositories"
)

// tokenEnvVars are checked in order when neither the CLI nor the config carry a token.
var tokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"} //nolint:gochecknoglobals // read-only lookup list

// Profile is the interface for the CI profiling command.
type Profile interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ProfileOptions, out io.Writer) error
}

// ProfileOptions holds the CLI overrides of a profiling run.
type ProfileOptions struct {
	Token              string
	Owner              string
	Repository         string
	StopAfterProcessed int
	Skip               int
	Jobs               []string
}

// ProfileCommand emits per-job timing records of successful workflow runs.
type ProfileCommand struct {
	registry *infraRepos.CIRegistry
}

// NewProfileCommand creates a new ProfileCommand.
func NewProfileCommand(registry *infraRepos.CIRegistry) *ProfileCommand {
	return &ProfileCommand{registry: registry}
}

// Execute walks runs most recent first, skipping opts.Skip successful runs and
// stopping after opts.StopAfterProcessed processed ones.
func (it *ProfileCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ProfileOptions,
	out io.Writer,
) error {
	cfg := settings.Profile
	owner := firstNonEmpty(opts.Owner, cfg.Owner)
	repo := firstNonEmpty(opts.Repository, cfg.Repository)
	jobs := opts.Jobs
	if len(jobs) == 0 {
		jobs = cfg.Jobs
	}
	if opts.StopAfterProcessed <= 0 {
		return errors.New("--stop-after-processed must be positive")
	}
	if opts.Skip < 0 {
		return errors.New("--skip must not be negative")
	}

	token := firstNonEmpty(opts.Token, cfg.Token, resolveTokenFromEnv())
	if token == "" {
		logger.Warn("No CI token configured, requests will be subject to anonymous rate limits")
	}

	ci, err := it.registry.Get(cfg.Provider, token)
	if err != nil {
		return err
	}
	logger.Infof("Profiling %s/%s on %s (skip %d, stop after %d)",
		owner, repo, ci.Name(), opts.Skip, opts.StopAfterProcessed)

	if _, err = fmt.Fprintln(out, entities.JobTimingHeader); err != nil {
		return err
	}

	processed, skipped := 0, 0
	for page := 1; page != 0 && processed < opts.StopAfterProcessed; {
		runs, next, listErr := ci.ListWorkflowRuns(ctx, owner, repo, page)
		if listErr != nil {
			return listErr
		}

		for _, run := range runs {
			if processed == opts.StopAfterProcessed {
				break
			}
			if !run.IsSuccessful() {
				continue
			}
			if skipped < opts.Skip {
				skipped++
				continue
			}
			processed++

			if err = it.profileRun(ctx, ci, owner, repo, run, jobs, out); err != nil {
				return err
			}
		}
		page = next
	}

	logger.Infof("Processed %d workflow runs", processed)
	return nil
}

func (it *ProfileCommand) profileRun(
	ctx context.Context,
	ci repositories.CIRepository,
	owner, repo string,
	run entities.WorkflowRun,
	jobs []string,
	out io.Writer,
) error {
	runJobs, err := ci.ListJobs(ctx, owner, repo, run.ID)
	if err != nil {
		logger.Errorf("Failed to get jobs of run %d: %v", run.ID, err)
		return nil
	}

	for _, job := range runJobs {
		if !slices.Contains(jobs, job.Name) {
			continue
		}
		if _, err = fmt.Fprintln(out, entities.NewJobTiming(run, job).Record()); err != nil {
			return err
		}
	}
	return nil
}

func resolveTokenFromEnv() string {
	for _, name := range tokenEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
