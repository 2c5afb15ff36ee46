package repositories

import (
	"context"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// CIRepository abstracts a CI provider exposing workflow runs and jobs.
type CIRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// ListWorkflowRuns returns one page of runs, most recent first, and the
	// next page number (0 when there are no more pages).
	ListWorkflowRuns(ctx context.Context, owner, repo string, page int) ([]entities.WorkflowRun, int, error)

	// ListJobs returns every job of the run.
	ListJobs(ctx context.Context, owner, repo string, runID int64) ([]entities.WorkflowJob, error)
}
