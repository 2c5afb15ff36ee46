//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/zkvtools/internal/domain/commands"
	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// StubComposeCommand is a stub implementation of commands.Compose.
type StubComposeCommand struct {
	Project    *entities.ComposeProject
	ExecuteErr error

	ExecuteCallCount int
	LastSettings     *entities.Settings
	LastOpts         commands.ComposeOptions
}

var _ commands.Compose = (*StubComposeCommand)(nil)

func (s *StubComposeCommand) Execute(
	settings *entities.Settings,
	opts commands.ComposeOptions,
) (*entities.ComposeProject, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Project, s.ExecuteErr
}
