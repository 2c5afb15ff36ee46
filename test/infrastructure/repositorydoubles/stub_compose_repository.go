//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

// StubComposeRepository is a stub implementation of repositories.ComposeRepository.
type StubComposeRepository struct {
	MaterializeErr error

	MaterializeCallCount int
	LastRoot             string
	LastProject          *entities.ComposeProject
	LastResources        []repositories.ResourceCopy
}

var _ repositories.ComposeRepository = (*StubComposeRepository)(nil)

func (s *StubComposeRepository) Materialize(
	root string,
	project *entities.ComposeProject,
	resources []repositories.ResourceCopy,
) error {
	s.MaterializeCallCount++
	s.LastRoot = root
	s.LastProject = project
	s.LastResources = resources
	return s.MaterializeErr
}

// StubKeyRepository is a stub implementation of repositories.KeyRepository
// returning "key-1", "key-2", ... unless NodeKeyErr is set.
type StubKeyRepository struct {
	NodeKeyErr error

	NodeKeyCallCount int
}

var _ repositories.KeyRepository = (*StubKeyRepository)(nil)

func (s *StubKeyRepository) NodeKey() (string, error) {
	if s.NodeKeyErr != nil {
		return "", s.NodeKeyErr
	}
	s.NodeKeyCallCount++
	return fmt.Sprintf("key-%d", s.NodeKeyCallCount), nil
}
