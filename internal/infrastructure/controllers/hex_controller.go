package controllers

import (
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/zkvtools/internal/domain/commands"
	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

const binaryFileMode = 0o644

// HexController handles the "hex2bin" subcommand.
type HexController struct {
	command commands.Hex
}

// NewHexController creates a new HexController.
func NewHexController(command commands.Hex) *HexController {
	return &HexController{command: command}
}

// GetBind returns the Cobra command metadata for the hex controller.
func (it *HexController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "hex2bin [input] [output]",
		Short: "Convert hexadecimal text into raw bytes",
		Long: `Read hexadecimal text (optionally prefixed with 0x) from the input file
or stdin and write the decoded bytes to the output file or stdout.`,
		Args: cobra.MaximumNArgs(2), //nolint:mnd // input and output
	}
}

// Execute converts the input.
func (it *HexController) Execute(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()
		in = file
	}

	if len(args) < 2 || args[1] == "-" {
		_, err := it.command.Execute(in, cmd.OutOrStdout())
		return err
	}

	out, err := os.OpenFile(args[1], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, binaryFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	written, err := it.command.Execute(in, out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close output: %w", closeErr)
	}
	if err != nil {
		return err
	}

	logger.Infof("Wrote %d bytes to %s", written, args[1])
	return nil
}

// AddFlags is a no-op; hex2bin only takes positional arguments.
func (it *HexController) AddFlags(_ *cobra.Command) {}
