//go:build unit

package compose_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
	"github.com/rios0rios0/zkvtools/internal/infrastructure/repositories/compose"
)

func newProject(t *testing.T) *entities.ComposeProject {
	t.Helper()

	keys := map[string]string{}
	for _, node := range entities.DefaultTopology() {
		keys[node.Name] = node.Name + "-key"
	}
	project, err := entities.NewComposeProject(entities.DefaultTopology(), entities.ComposeOptions{
		RelayImage: "relay:test",
		ParaImage:  "para:test",
		SecretPhrases: map[string]string{
			"validator_1": "phrase one",
			"validator_2": "phrase two",
		},
		NodeKeys: keys,
	})
	require.NoError(t, err)
	return project
}

func TestComposeRepository_Materialize(t *testing.T) {
	t.Parallel()

	t.Run("should write directories, resources, files and compose.yaml", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		source := filepath.Join(t.TempDir(), "spec.json")
		require.NoError(t, os.WriteFile(source, []byte(`{"name":"relay"}`), 0o644))
		repo := compose.NewComposeRepository()
		resources := []repositories.ResourceCopy{
			{Source: source, Target: "resources/" + entities.RelayChainSpecFile},
		}

		// when
		err := repo.Materialize(root, newProject(t), resources)

		// then
		require.NoError(t, err)
		for _, dir := range []string{"envs/relay", "envs/para", "resources/secrets"} {
			info, statErr := os.Stat(filepath.Join(root, dir))
			require.NoError(t, statErr)
			assert.True(t, info.IsDir())
		}

		copied, err := os.ReadFile(filepath.Join(root, "resources", entities.RelayChainSpecFile))
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"relay"}`, string(copied))

		phrase, err := os.ReadFile(filepath.Join(root, "resources", "secrets", "validator_1.dat"))
		require.NoError(t, err)
		assert.Equal(t, "phrase one", string(phrase))

		info, err := os.Stat(filepath.Join(root, "resources", "secrets", "collator_2_nodekey.dat"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		env, err := os.ReadFile(filepath.Join(root, "envs", "para", ".env.collator_1"))
		require.NoError(t, err)
		assert.Contains(t, string(env), `ZKV_CONF_ALICE="true"`)

		_, err = os.Stat(filepath.Join(root, entities.ComposeFileName))
		require.NoError(t, err)
	})

	t.Run("should return error when a resource is missing", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		repo := compose.NewComposeRepository()
		resources := []repositories.ResourceCopy{
			{Source: filepath.Join(root, "missing.json"), Target: "resources/" + entities.RelayChainSpecFile},
		}

		// when
		err := repo.Materialize(root, newProject(t), resources)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.json")
		_, statErr := os.Stat(filepath.Join(root, entities.ComposeFileName))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	t.Run("should keep services in topology order", func(t *testing.T) {
		t.Parallel()

		// given
		project := newProject(t)

		// when
		data, err := compose.Marshal(project)

		// then
		require.NoError(t, err)
		var doc yaml.Node
		require.NoError(t, yaml.Unmarshal(data, &doc))
		root := doc.Content[0]
		require.Len(t, root.Content, 4)
		assert.Equal(t, "version", root.Content[0].Value)
		assert.Equal(t, "3", root.Content[1].Value)
		assert.Equal(t, "!!str", root.Content[1].Tag)

		services := root.Content[3]
		var names []string
		for i := 0; i < len(services.Content); i += 2 {
			names = append(names, services.Content[i].Value)
		}
		assert.Equal(t, []string{
			"local_node", "validator_1", "validator_2",
			"local_paranode", "collator_1", "collator_2",
		}, names)
	})

	t.Run("should render service attributes", func(t *testing.T) {
		t.Parallel()

		// given
		project := newProject(t)

		// when
		data, err := compose.Marshal(project)

		// then
		require.NoError(t, err)
		var parsed struct {
			Version  string                      `yaml:"version"`
			Services map[string]entities.Service `yaml:"services"`
		}
		require.NoError(t, yaml.Unmarshal(data, &parsed))
		assert.Equal(t, "3", parsed.Version)

		rpc := parsed.Services["local_node"]
		assert.Equal(t, "relay:test", rpc.Image)
		assert.Equal(t, []string{"9944:9944", "30333:30333"}, rpc.Ports)
		assert.Equal(t, []string{"./envs/relay/.env.local_node"}, rpc.EnvFile)

		validator := parsed.Services["validator_1"]
		assert.Empty(t, validator.Ports)
		assert.Equal(t, []string{
			"./resources/raw-chainspec.json:/data/chain_spec.json",
			"./resources/secrets/validator_1.dat:/data/config/secret_phrase.dat",
			"./resources/secrets/validator_1_nodekey.dat:/data/config/node_key.dat",
		}, validator.Volumes)

		collator := parsed.Services["collator_2"]
		assert.Equal(t, "para:test", collator.Image)
		assert.Contains(t, collator.Volumes, "./resources/raw-chainspec.json:/data/relay_chain_spec.json")
	})
}
