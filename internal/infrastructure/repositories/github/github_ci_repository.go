package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

const (
	providerName = "github"
	perPage      = 100
	runStatus    = "success"
	jobFilter    = "latest"
)

// GitHubCIRepository implements repositories.CIRepository for GitHub Actions.
type GitHubCIRepository struct {
	client *gh.Client
}

// NewGitHubCIRepository creates a new GitHub Actions repository with the given token.
func NewGitHubCIRepository(token string) repositories.CIRepository {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return NewGitHubCIRepositoryWithClient(client)
}

// NewGitHubCIRepositoryWithClient wraps an already configured client.
func NewGitHubCIRepositoryWithClient(client *gh.Client) repositories.CIRepository {
	return &GitHubCIRepository{client: client}
}

func (p *GitHubCIRepository) Name() string { return providerName }

// ListWorkflowRuns lists one page of successful workflow runs, most recent first.
func (p *GitHubCIRepository) ListWorkflowRuns(
	ctx context.Context,
	owner, repo string,
	page int,
) ([]entities.WorkflowRun, int, error) {
	//nolint:exhaustruct // Minimal options initialization with required fields only
	opts := &gh.ListWorkflowRunsOptions{
		Status:      runStatus,
		ListOptions: gh.ListOptions{PerPage: perPage, Page: page},
	}

	runs, resp, err := p.client.Actions.ListRepositoryWorkflowRuns(ctx, owner, repo, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workflow runs of %s/%s: %w", owner, repo, err)
	}

	result := make([]entities.WorkflowRun, 0, len(runs.WorkflowRuns))
	for _, r := range runs.WorkflowRuns {
		result = append(result, entities.WorkflowRun{
			ID:         r.GetID(),
			RunNumber:  r.GetRunNumber(),
			Status:     r.GetStatus(),
			Conclusion: r.GetConclusion(),
		})
	}

	return result, resp.NextPage, nil
}

// ListJobs lists the latest attempt's jobs of a workflow run.
func (p *GitHubCIRepository) ListJobs(
	ctx context.Context,
	owner, repo string,
	runID int64,
) ([]entities.WorkflowJob, error) {
	var result []entities.WorkflowJob
	//nolint:exhaustruct // Minimal options initialization with required fields only
	opts := &gh.ListWorkflowJobsOptions{
		Filter:      jobFilter,
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		jobs, resp, err := p.client.Actions.ListWorkflowJobs(ctx, owner, repo, runID, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs of run %d: %w", runID, err)
		}

		for _, j := range jobs.Jobs {
			result = append(result, entities.WorkflowJob{
				ID:          j.GetID(),
				Name:        j.GetName(),
				StartedAt:   j.GetStartedAt().Time,
				CompletedAt: j.GetCompletedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}
