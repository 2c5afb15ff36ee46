//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/zkvtools/internal/domain/commands"
	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// StubProfileCommand is a stub implementation of commands.Profile.
type StubProfileCommand struct {
	Output     string
	ExecuteErr error

	ExecuteCallCount int
	LastSettings     *entities.Settings
	LastOpts         commands.ProfileOptions
}

var _ commands.Profile = (*StubProfileCommand)(nil)

func (s *StubProfileCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ProfileOptions,
	out io.Writer,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Output != "" {
		if _, err := io.WriteString(out, s.Output); err != nil {
			return err
		}
	}
	return s.ExecuteErr
}
