//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/zkvtools/internal/domain/commands"
	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// StubSyncCommand is a stub implementation of commands.Sync.
type StubSyncCommand struct {
	Report     *commands.SyncReport
	ExecuteErr error

	ExecuteCallCount int
	LastSettings     *entities.Settings
	LastOpts         commands.SyncOptions
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SyncOptions,
) (*commands.SyncReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
