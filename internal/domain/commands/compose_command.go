package commands

import (
	"fmt"
	"path"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

const resourcesDir = "resources"

// Compose is the interface for the compose topology generator.
type Compose interface {
	Execute(settings *entities.Settings, opts ComposeOptions) (*entities.ComposeProject, error)
}

// ComposeOptions holds the CLI overrides of a generation run.
type ComposeOptions struct {
	ProjectRoot   string
	RelayImage    string
	ParaImage     string
	ChainSpec     string
	ParaChainSpec string
	SecretPhrases map[string]string // validator name -> secret phrase
}

// ComposeCommand generates the multi-node test network project.
type ComposeCommand struct {
	composer repositories.ComposeRepository
	keys     repositories.KeyRepository
}

// NewComposeCommand creates a new ComposeCommand.
func NewComposeCommand(composer repositories.ComposeRepository, keys repositories.KeyRepository) *ComposeCommand {
	return &ComposeCommand{composer: composer, keys: keys}
}

// Execute generates node keys, builds the default topology and writes it below opts.ProjectRoot.
func (it *ComposeCommand) Execute(
	settings *entities.Settings,
	opts ComposeOptions,
) (*entities.ComposeProject, error) {
	cfg := settings.Compose
	relayImage := firstNonEmpty(opts.RelayImage, cfg.RelayImage)
	paraImage := firstNonEmpty(opts.ParaImage, cfg.ParaImage)
	chainSpec := firstNonEmpty(opts.ChainSpec, cfg.ChainSpec)
	paraChainSpec := firstNonEmpty(opts.ParaChainSpec, cfg.ParaChainSpec)
	root := firstNonEmpty(opts.ProjectRoot, ".")

	logger.Infof("Use relay image %s", relayImage)
	logger.Infof("Use parachain image %s", paraImage)
	logger.Infof("Use chain spec from %s", chainSpec)
	logger.Infof("Use para chain spec from %s", paraChainSpec)

	topology := entities.DefaultTopology()
	nodeKeys := make(map[string]string)
	for _, node := range topology {
		if !node.NeedsNodeKey() {
			continue
		}
		key, err := it.keys.NodeKey()
		if err != nil {
			return nil, err
		}
		nodeKeys[node.Name] = key
	}

	project, err := entities.NewComposeProject(topology, entities.ComposeOptions{
		RelayImage:    relayImage,
		ParaImage:     paraImage,
		SecretPhrases: opts.SecretPhrases,
		NodeKeys:      nodeKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build compose project: %w", err)
	}

	resources := []repositories.ResourceCopy{
		{Source: chainSpec, Target: path.Join(resourcesDir, entities.RelayChainSpecFile)},
		{Source: paraChainSpec, Target: path.Join(resourcesDir, entities.ParaChainSpecFile)},
	}
	if err = it.composer.Materialize(root, project, resources); err != nil {
		return nil, err
	}

	logger.Infof("Created %s in %s and all environment files", entities.ComposeFileName, root)
	return project, nil
}
