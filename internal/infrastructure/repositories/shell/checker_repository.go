package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

// CheckerRepository implements repositories.CheckerRepository by running the
// command through a shell, streaming its output.
type CheckerRepository struct {
	shell  string
	stdout io.Writer
	stderr io.Writer
}

// NewCheckerRepository creates a checker running commands with `<shell> -c`.
func NewCheckerRepository(shell string, stdout, stderr io.Writer) repositories.CheckerRepository {
	return &CheckerRepository{
		shell:  shell,
		stdout: stdout,
		stderr: stderr,
	}
}

// Check runs command in dir and fails on a non-zero exit status.
func (c *CheckerRepository) Check(ctx context.Context, dir, command string) error {
	cmd := exec.CommandContext(ctx, c.shell, "-c", command)
	cmd.Dir = dir
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	logger.Debugf("Running %q in %s", command, dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%q exited with status %d", command, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %q: %w", command, err)
	}
	return nil
}
