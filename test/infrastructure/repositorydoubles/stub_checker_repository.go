//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

// StubCheckerRepository is a stub implementation of repositories.CheckerRepository.
type StubCheckerRepository struct {
	CheckErr error

	CheckCallCount int
	LastDir        string
	LastCommand    string
}

var _ repositories.CheckerRepository = (*StubCheckerRepository)(nil)

func (s *StubCheckerRepository) Check(_ context.Context, dir, command string) error {
	s.CheckCallCount++
	s.LastDir = dir
	s.LastCommand = command
	return s.CheckErr
}
