//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// DependencyEntryBuilder helps create local dependency entries with a fluent interface.
type DependencyEntryBuilder struct {
	*testkit.BaseBuilder
	name    string
	pkg     string
	version string
	shape   entities.DependencyShape
}

// NewDependencyEntryBuilder creates a new builder for a bare `serde = "1.0.0"` entry.
func NewDependencyEntryBuilder() *DependencyEntryBuilder {
	return &DependencyEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "serde",
		version:     "1.0.0",
		shape:       entities.ShapeBare,
	}
}

// WithName sets the local key.
func (b *DependencyEntryBuilder) WithName(name string) *DependencyEntryBuilder {
	b.name = name
	return b
}

// WithPackage sets the upstream package alias and switches to the table shape.
func (b *DependencyEntryBuilder) WithPackage(pkg string) *DependencyEntryBuilder {
	b.pkg = pkg
	b.shape = entities.ShapeTable
	return b
}

// WithVersion sets the declared version.
func (b *DependencyEntryBuilder) WithVersion(version string) *DependencyEntryBuilder {
	b.version = version
	return b
}

// WithShape sets the declaration shape.
func (b *DependencyEntryBuilder) WithShape(shape entities.DependencyShape) *DependencyEntryBuilder {
	b.shape = shape
	return b
}

// WithoutVersion makes the entry unresolved.
func (b *DependencyEntryBuilder) WithoutVersion() *DependencyEntryBuilder {
	b.version = ""
	b.shape = entities.ShapeUnknown
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *DependencyEntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *DependencyEntryBuilder) BuildEntry() entities.DependencyEntry {
	return entities.DependencyEntry{
		Name:    b.name,
		Package: b.pkg,
		Version: b.version,
		Shape:   b.shape,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "serde"
	b.pkg = ""
	b.version = "1.0.0"
	b.shape = entities.ShapeBare
	return b
}

// Clone creates a deep copy of the DependencyEntryBuilder.
func (b *DependencyEntryBuilder) Clone() testkit.Builder {
	return &DependencyEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		pkg:         b.pkg,
		version:     b.version,
		shape:       b.shape,
	}
}
