package entities

// DependencyShape describes how a local dependency entry declares its version.
type DependencyShape int

const (
	// ShapeUnknown is an entry whose version could not be located.
	ShapeUnknown DependencyShape = iota
	// ShapeBare is `name = "1.0.0"`.
	ShapeBare
	// ShapeTable is `name = { version = "1.0.0", ... }` or an equivalent sub-table.
	ShapeTable
)

func (s DependencyShape) String() string {
	switch s {
	case ShapeBare:
		return "bare"
	case ShapeTable:
		return "table"
	default:
		return "unknown"
	}
}

// DependencyEntry is one record of the local workspace dependency table.
type DependencyEntry struct {
	Name    string          // Key in the local dependency table
	Package string          // Optional `package` alias naming the upstream crate
	Version string          // Currently declared version (empty when ShapeUnknown)
	Shape   DependencyShape // How the version is declared
}

// LookupKey returns the name used to find the entry in an upstream inventory.
func (e DependencyEntry) LookupKey() string {
	if e.Package != "" {
		return e.Package
	}
	return e.Name
}
