package entities

import "sort"

// PackageVersion is the published name and version of one upstream workspace member.
type PackageVersion struct {
	Name    string
	Version string
}

// Inventory maps upstream package names to their declared versions.
type Inventory struct {
	versions map[string]string
}

// NewInventory creates an inventory holding the given packages.
func NewInventory(packages ...PackageVersion) *Inventory {
	inv := &Inventory{versions: make(map[string]string, len(packages))}
	for _, p := range packages {
		inv.Add(p)
	}
	return inv
}

// Add records a package. It reports false when the name was already present,
// in which case the newer version replaces the older one.
func (i *Inventory) Add(p PackageVersion) bool {
	_, exists := i.versions[p.Name]
	i.versions[p.Name] = p.Version
	return !exists
}

// Lookup returns the version declared upstream for name.
func (i *Inventory) Lookup(name string) (string, bool) {
	v, ok := i.versions[name]
	return v, ok
}

// Len returns the number of packages in the inventory.
func (i *Inventory) Len() int { return len(i.versions) }

// Packages returns every package sorted by name.
func (i *Inventory) Packages() []PackageVersion {
	result := make([]PackageVersion, 0, len(i.versions))
	for name, version := range i.versions {
		result = append(result, PackageVersion{Name: name, Version: version})
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
	return result
}
