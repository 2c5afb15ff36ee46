package entities

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString converts a hexadecimal text, optionally prefixed with 0x,
// into raw bytes. Whitespace anywhere in the text is ignored.
func DecodeHexString(text string) ([]byte, error) {
	trimmed := strings.Join(strings.Fields(text), "")
	if len(trimmed) >= 2 && strings.EqualFold(trimmed[:2], "0x") {
		trimmed = trimmed[2:]
	}

	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid hexadecimal input: %w", err)
	}
	return decoded, nil
}
