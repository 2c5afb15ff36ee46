//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

// StubCIRepository is a stub implementation of repositories.CIRepository.
// Pages holds the runs returned for page 1, 2, ... in order.
type StubCIRepository struct {
	ProviderName string
	Pages        [][]entities.WorkflowRun
	ListRunsErr  error
	Jobs         map[int64][]entities.WorkflowJob
	ListJobsErr  map[int64]error

	RequestedPages []int
	RequestedRuns  []int64
}

var _ repositories.CIRepository = (*StubCIRepository)(nil)

func (s *StubCIRepository) Name() string { return s.ProviderName }

func (s *StubCIRepository) ListWorkflowRuns(
	_ context.Context,
	_, _ string,
	page int,
) ([]entities.WorkflowRun, int, error) {
	s.RequestedPages = append(s.RequestedPages, page)
	if s.ListRunsErr != nil {
		return nil, 0, s.ListRunsErr
	}
	if page < 1 || page > len(s.Pages) {
		return nil, 0, nil
	}

	next := page + 1
	if next > len(s.Pages) {
		next = 0
	}
	return s.Pages[page-1], next, nil
}

func (s *StubCIRepository) ListJobs(
	_ context.Context,
	_, _ string,
	runID int64,
) ([]entities.WorkflowJob, error) {
	s.RequestedRuns = append(s.RequestedRuns, runID)
	if err, ok := s.ListJobsErr[runID]; ok {
		return nil, err
	}
	return s.Jobs[runID], nil
}
