package repositories

import "context"

// CheckerRepository runs the build verification of a rewritten workspace.
type CheckerRepository interface {
	// Check runs command inside dir and fails when it exits non-zero.
	Check(ctx context.Context, dir, command string) error
}
