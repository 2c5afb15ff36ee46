//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

func TestDecodeHexString(t *testing.T) {
	t.Parallel()

	t.Run("should decode with or without prefix", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{"0x0aff", "0X0AFF", "0aff", " 0a ff \n"}

		for _, input := range inputs {
			// when
			decoded, err := entities.DecodeHexString(input)

			// then
			require.NoError(t, err, input)
			assert.Equal(t, []byte{0x0a, 0xff}, decoded, input)
		}
	})

	t.Run("should reject odd length and non hex characters", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{"0xabc", "zz", "0x0g"}

		for _, input := range inputs {
			// when
			_, err := entities.DecodeHexString(input)

			// then
			require.Error(t, err, input)
		}
	})
}
