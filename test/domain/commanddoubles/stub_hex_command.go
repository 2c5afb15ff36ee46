//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/zkvtools/internal/domain/commands"
)

// StubHexCommand is a stub implementation of commands.Hex that records its input.
type StubHexCommand struct {
	ExecuteErr error

	ExecuteCallCount int
	LastInput        string
}

var _ commands.Hex = (*StubHexCommand)(nil)

func (s *StubHexCommand) Execute(in io.Reader, _ io.Writer) (int, error) {
	s.ExecuteCallCount++
	data, err := io.ReadAll(in)
	if err != nil {
		return 0, err
	}
	s.LastInput = string(data)
	return 0, s.ExecuteErr
}
