package compose

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

const (
	dirMode         = 0o755
	composeFileMode = 0o644
	yamlIndent      = 2
)

// ComposeRepository writes compose projects to the local filesystem.
type ComposeRepository struct{}

// NewComposeRepository creates a filesystem backed compose repository.
func NewComposeRepository() repositories.ComposeRepository {
	return &ComposeRepository{}
}

// Materialize creates the project directories, copies resources, writes the
// generated files and finally compose.yaml.
func (r *ComposeRepository) Materialize(
	root string,
	project *entities.ComposeProject,
	resources []repositories.ResourceCopy,
) error {
	for _, dir := range project.Directories {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), dirMode); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	for _, res := range resources {
		target := filepath.Join(root, filepath.FromSlash(res.Target))
		logger.Debugf("Copying %s to %s", res.Source, target)
		if err := cp.Copy(res.Source, target); err != nil {
			return fmt.Errorf("failed to copy %s: %w", res.Source, err)
		}
	}

	for _, file := range project.Files {
		target := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", file.Path, err)
		}
		if err := os.WriteFile(target, []byte(file.Content), os.FileMode(file.Mode)); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
		logger.Debugf("Wrote %s", target)
	}

	data, err := Marshal(project)
	if err != nil {
		return err
	}
	composePath := filepath.Join(root, entities.ComposeFileName)
	if err = os.WriteFile(composePath, data, composeFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", entities.ComposeFileName, err)
	}
	logger.Infof("Compose project written to %s", composePath)

	return nil
}

// Marshal renders the compose file keeping services in topology order.
func Marshal(project *entities.ComposeProject) ([]byte, error) {
	services := &yaml.Node{Kind: yaml.MappingNode}
	for _, svc := range project.Services {
		var value yaml.Node
		if err := value.Encode(svc); err != nil {
			return nil, fmt.Errorf("failed to encode service %s: %w", svc.Name, err)
		}
		services.Content = append(services.Content, scalar(svc.Name), &value)
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("version"),
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: project.Version, Style: yaml.DoubleQuotedStyle},
			scalar("services"),
			services,
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", entities.ComposeFileName, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", entities.ComposeFileName, err)
	}
	return buf.Bytes(), nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
