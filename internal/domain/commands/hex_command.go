package commands

import (
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// Hex is the interface for the hex-to-binary converter.
type Hex interface {
	Execute(in io.Reader, out io.Writer) (int, error)
}

// HexCommand decodes hexadecimal text into raw bytes.
type HexCommand struct{}

// NewHexCommand creates a new HexCommand.
func NewHexCommand() *HexCommand {
	return &HexCommand{}
}

// Execute reads all of in, decodes it and writes the bytes to out.
// It returns the number of bytes written.
func (it *HexCommand) Execute(in io.Reader, out io.Writer) (int, error) {
	text, err := io.ReadAll(in)
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	decoded, err := entities.DecodeHexString(string(text))
	if err != nil {
		return 0, err
	}

	written, err := out.Write(decoded)
	if err != nil {
		return written, fmt.Errorf("failed to write output: %w", err)
	}
	logger.Debugf("Decoded %d hex characters into %d bytes", len(text), written)
	return written, nil
}
