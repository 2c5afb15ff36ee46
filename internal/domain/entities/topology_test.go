//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

func composeOptions() entities.ComposeOptions {
	keys := map[string]string{}
	for _, node := range entities.DefaultTopology() {
		if node.NeedsNodeKey() {
			keys[node.Name] = node.Name + "-key"
		}
	}
	return entities.ComposeOptions{
		RelayImage:    "relay:test",
		ParaImage:     "para:test",
		SecretPhrases: map[string]string{"validator_1": "//Validator1", "validator_2": "//Validator2"},
		NodeKeys:      keys,
	}
}

func findFile(project *entities.ComposeProject, path string) (entities.GeneratedFile, bool) {
	for _, f := range project.Files {
		if f.Path == path {
			return f, true
		}
	}
	return entities.GeneratedFile{}, false
}

func TestNewComposeProject(t *testing.T) {
	t.Parallel()

	t.Run("should build services in topology order", func(t *testing.T) {
		t.Parallel()

		// given
		topology := entities.DefaultTopology()

		// when
		project, err := entities.NewComposeProject(topology, composeOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, "3", project.Version)
		require.Len(t, project.Services, len(topology))
		for i, node := range topology {
			assert.Equal(t, node.Name, project.Services[i].Name)
		}
		assert.Equal(t, []string{"envs/relay", "envs/para", "resources", "resources/secrets"}, project.Directories)
	})

	t.Run("should mount secrets and specs per role", func(t *testing.T) {
		t.Parallel()

		// given
		topology := entities.DefaultTopology()

		// when
		project, err := entities.NewComposeProject(topology, composeOptions())

		// then
		require.NoError(t, err)
		rpc := project.Services[0]
		assert.Equal(t, []string{"./resources/raw-chainspec.json:/data/chain_spec.json"}, rpc.Volumes)
		assert.Equal(t, []string{"9944:9944", "30333:30333"}, rpc.Ports)

		paraRPC := project.Services[3]
		assert.Equal(t, "para:test", paraRPC.Image)
		assert.Equal(t, []string{
			"./resources/raw-para-chainspec.json:/data/chain_spec.json",
			"./resources/raw-chainspec.json:/data/relay_chain_spec.json",
		}, paraRPC.Volumes)
		assert.Equal(t, []string{"8844:9944", "20333:30333"}, paraRPC.Ports)

		collator := project.Services[4]
		assert.Equal(t, []string{
			"./resources/raw-para-chainspec.json:/data/chain_spec.json",
			"./resources/secrets/collator_1_nodekey.dat:/data/config/node_key.dat",
			"./resources/raw-chainspec.json:/data/relay_chain_spec.json",
		}, collator.Volumes)
		assert.Equal(t, []string{"./envs/para/.env.collator_1"}, collator.EnvFile)
	})

	t.Run("should generate env files and secrets", func(t *testing.T) {
		t.Parallel()

		// given
		topology := entities.DefaultTopology()

		// when
		project, err := entities.NewComposeProject(topology, composeOptions())

		// then
		require.NoError(t, err)
		phrase, ok := findFile(project, "resources/secrets/validator_2.dat")
		require.True(t, ok)
		assert.Equal(t, "//Validator2", phrase.Content)
		assert.Equal(t, uint32(0o600), phrase.Mode)

		key, ok := findFile(project, "resources/secrets/collator_2_nodekey.dat")
		require.True(t, ok)
		assert.Equal(t, "collator_2-key", key.Content)

		_, ok = findFile(project, "resources/secrets/local_node_nodekey.dat")
		assert.False(t, ok)

		env, ok := findFile(project, "envs/para/.env.collator_2")
		require.True(t, ok)
		assert.Contains(t, env.Content, `ZKV_CONF_NAME="Collator2"`)
		assert.Contains(t, env.Content, `ZKV_CONF_BOB="true"`)
		assert.Contains(t, env.Content, `RC_CONF_CHAIN="/data/relay_chain_spec.json"`)

		validator, ok := findFile(project, "envs/relay/.env.validator_1")
		require.True(t, ok)
		assert.Contains(t, validator.Content, `ZKV_CONF_VALIDATOR="true"`)

		rpc, ok := findFile(project, "envs/relay/.env.local_node")
		require.True(t, ok)
		assert.Contains(t, rpc.Content, `ZKV_CONF_PRUNING="archive"`)
		assert.NotContains(t, rpc.Content, "RC_CONF_CHAIN")
	})

	t.Run("should return error when a node key is missing", func(t *testing.T) {
		t.Parallel()

		// given
		opts := composeOptions()
		delete(opts.NodeKeys, "collator_1")

		// when
		_, err := entities.NewComposeProject(entities.DefaultTopology(), opts)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "collator_1")
	})
}
