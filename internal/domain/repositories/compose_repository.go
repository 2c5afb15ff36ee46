package repositories

import "github.com/rios0rios0/zkvtools/internal/domain/entities"

// ResourceCopy is a file copied into the generated project.
type ResourceCopy struct {
	Source string // Path on disk
	Target string // Slash separated, relative to the project root
}

// ComposeRepository materializes a compose project on disk.
type ComposeRepository interface {
	Materialize(root string, project *entities.ComposeProject, resources []ResourceCopy) error
}

// KeyRepository produces random node keys.
type KeyRepository interface {
	// NodeKey returns a 32-byte key, hex encoded without prefix.
	NodeKey() (string, error)
}
