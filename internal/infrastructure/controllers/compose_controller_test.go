//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/infrastructure/controllers"
	"github.com/rios0rios0/zkvtools/test/domain/commanddoubles"
)

func TestComposeController(t *testing.T) {
	t.Parallel()

	t.Run("should pass root, short flags and validator keys", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubComposeCommand{}
		ctrl := controllers.NewComposeController(stub, entities.ConfigSearch{})
		config := writeConfig(t, "{}\n")

		// when
		_, err := runController(t, ctrl, "", "/tmp/net", "--config", config,
			"-r", "relay:dev", "-p", "para:dev", "-c", "a.json", "-C", "b.json",
			"--validator1-key", "//Alice")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/tmp/net", stub.LastOpts.ProjectRoot)
		assert.Equal(t, "relay:dev", stub.LastOpts.RelayImage)
		assert.Equal(t, "para:dev", stub.LastOpts.ParaImage)
		assert.Equal(t, "a.json", stub.LastOpts.ChainSpec)
		assert.Equal(t, "b.json", stub.LastOpts.ParaChainSpec)
		assert.Equal(t, map[string]string{
			"validator_1": "//Alice",
			"validator_2": entities.DefaultValidator2Key,
		}, stub.LastOpts.SecretPhrases)
	})

	t.Run("should reject more than one positional argument", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubComposeCommand{}
		ctrl := controllers.NewComposeController(stub, entities.ConfigSearch{})

		// when
		_, err := runController(t, ctrl, "", "a", "b")

		// then
		require.Error(t, err)
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})
}
