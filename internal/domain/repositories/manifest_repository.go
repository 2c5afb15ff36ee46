package repositories

import "github.com/rios0rios0/zkvtools/internal/domain/entities"

// ManifestDocument is a format-preserving, in-memory workspace manifest.
type ManifestDocument interface {
	// Dependencies lists the workspace dependency entries in file order.
	Dependencies() []entities.DependencyEntry

	// SetVersion rewrites the version value of entry in place.
	SetVersion(entry entities.DependencyEntry, version string) error

	// Bytes returns the serialized document.
	Bytes() []byte
}

// ManifestRepository reads upstream inventories and local manifests.
type ManifestRepository interface {
	// Inventory maps the package names of a workspace's members to their versions.
	Inventory(workspaceRoot string) (*entities.Inventory, error)

	// Open parses the manifest at path.
	Open(path string) (ManifestDocument, error)

	// Save writes doc to path.
	Save(path string, doc ManifestDocument) error
}
