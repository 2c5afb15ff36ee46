//go:build unit

package controllers_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// runController executes ctrl as a cobra command with the root persistent flags.
func runController(t *testing.T, ctrl entities.Controller, stdin string, args ...string) (string, error) {
	t.Helper()

	bind := ctrl.GetBind()
	var out bytes.Buffer
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:  bind.Use,
		Args: bind.Args,
		RunE: ctrl.Execute,
	}
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("verbose", false, "")
	ctrl.AddFlags(cmd)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zkvtools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
