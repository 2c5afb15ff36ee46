package cargo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

const manifestFileMode = 0o644

type cargoManifest struct {
	Package   *cargoPackage   `toml:"package"`
	Workspace *cargoWorkspace `toml:"workspace"`
}

type cargoPackage struct {
	Name    string `toml:"name"`
	Version any    `toml:"version"` // string, or {workspace = true}
}

type cargoWorkspace struct {
	Members []string               `toml:"members"`
	Exclude []string               `toml:"exclude"`
	Package *cargoWorkspacePackage `toml:"package"`
}

type cargoWorkspacePackage struct {
	Version string `toml:"version"`
}

type member struct {
	path    string // relative to the workspace root
	globbed bool
}

// ManifestRepository implements repositories.ManifestRepository for Cargo workspaces.
type ManifestRepository struct{}

// NewManifestRepository creates a new Cargo manifest repository.
func NewManifestRepository() repositories.ManifestRepository {
	return &ManifestRepository{}
}

// Inventory reads the workspace members of the Cargo workspace at
// workspaceRoot and maps every member's package name to its version.
func (r *ManifestRepository) Inventory(workspaceRoot string) (*entities.Inventory, error) {
	rootPath := filepath.Join(workspaceRoot, manifestName)

	var root cargoManifest
	if _, err := toml.DecodeFile(rootPath, &root); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", rootPath, err)
	}
	if root.Workspace == nil {
		return nil, fmt.Errorf("%s does not declare a [workspace]", rootPath)
	}

	members, err := expandMembers(workspaceRoot, root.Workspace.Members, root.Workspace.Exclude)
	if err != nil {
		return nil, err
	}

	inventory := entities.NewInventory()
	if root.Package != nil && !hasMember(members, ".") {
		members = append([]member{{path: "."}}, members...)
	}

	for _, m := range members {
		memberPath := filepath.Join(workspaceRoot, m.path, manifestName)

		pkg, readErr := readPackage(memberPath)
		if readErr != nil {
			if m.globbed && errors.Is(readErr, fs.ErrNotExist) {
				continue
			}
			if errors.Is(readErr, fs.ErrNotExist) {
				return nil, fmt.Errorf("workspace member %q has no %s", m.path, manifestName)
			}
			return nil, readErr
		}

		version, hasVersion, versionErr := resolveVersion(pkg, root.Workspace.Package)
		if versionErr != nil {
			return nil, fmt.Errorf("%s: %w", memberPath, versionErr)
		}
		if !hasVersion {
			logger.Debugf("  Skipping %s: no version declared", pkg.Name)
			continue
		}

		if !inventory.Add(entities.PackageVersion{Name: pkg.Name, Version: version}) {
			logger.Warnf("Package %q is declared by more than one workspace member", pkg.Name)
		}
		logger.Debugf("  Name: %s - Version: %s", pkg.Name, version)
	}

	return inventory, nil
}

// Open parses the manifest at path.
func (r *ManifestRepository) Open(path string) (repositories.ManifestDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc to path, keeping the permissions of an existing file.
func (r *ManifestRepository) Save(path string, doc repositories.ManifestDocument) error {
	mode := fs.FileMode(manifestFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, doc.Bytes(), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readPackage(path string) (*cargoPackage, error) {
	var manifest cargoManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if manifest.Package == nil || manifest.Package.Name == "" {
		return nil, fmt.Errorf("%s does not declare a package name", path)
	}
	return manifest.Package, nil
}

// resolveVersion returns the package version, following `version.workspace = true`.
func resolveVersion(pkg *cargoPackage, workspace *cargoWorkspacePackage) (string, bool, error) {
	switch v := pkg.Version.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case map[string]any:
		if inherit, _ := v["workspace"].(bool); inherit {
			if workspace == nil || workspace.Version == "" {
				return "", false, fmt.Errorf("package %q inherits a workspace version that is not declared", pkg.Name)
			}
			return workspace.Version, true, nil
		}
	}
	return "", false, fmt.Errorf("package %q has an unsupported version declaration", pkg.Name)
}

// expandMembers resolves glob members relative to root and drops excluded paths.
func expandMembers(root string, declared, exclude []string) ([]member, error) {
	excluded := make([]string, 0, len(exclude))
	for _, e := range exclude {
		excluded = append(excluded, filepath.Clean(e))
	}

	var members []member
	for _, d := range declared {
		if !strings.ContainsAny(d, "*?[") {
			members = append(members, member{path: filepath.Clean(d)})
			continue
		}

		matches, err := filepath.Glob(filepath.Join(root, d))
		if err != nil {
			return nil, fmt.Errorf("invalid workspace member pattern %q: %w", d, err)
		}
		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil || !info.IsDir() {
				continue
			}
			rel, relErr := filepath.Rel(root, match)
			if relErr != nil {
				return nil, relErr
			}
			if isExcluded(rel, excluded) {
				continue
			}
			members = append(members, member{path: rel, globbed: true})
		}
	}
	return members, nil
}

func hasMember(members []member, path string) bool {
	for _, m := range members {
		if m.path == path {
			return true
		}
	}
	return false
}

func isExcluded(rel string, excluded []string) bool {
	for _, e := range excluded {
		if rel == e || strings.HasPrefix(rel, e+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
