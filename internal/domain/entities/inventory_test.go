//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

func TestInventory(t *testing.T) {
	t.Parallel()

	t.Run("should report duplicates and keep the latest version", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := entities.NewInventory(entities.PackageVersion{Name: "foo", Version: "1.0"})

		// when
		added := inventory.Add(entities.PackageVersion{Name: "foo", Version: "2.0"})

		// then
		assert.False(t, added)
		version, ok := inventory.Lookup("foo")
		assert.True(t, ok)
		assert.Equal(t, "2.0", version)
		assert.Equal(t, 1, inventory.Len())
	})

	t.Run("should list packages sorted by name", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := entities.NewInventory(
			entities.PackageVersion{Name: "sp-core", Version: "21.0.0"},
			entities.PackageVersion{Name: "frame-support", Version: "28.0.0"},
		)

		// when
		packages := inventory.Packages()

		// then
		assert.Equal(t, []entities.PackageVersion{
			{Name: "frame-support", Version: "28.0.0"},
			{Name: "sp-core", Version: "21.0.0"},
		}, packages)
	})

	t.Run("should miss unknown names", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := entities.NewInventory()

		// when
		_, ok := inventory.Lookup("missing")

		// then
		assert.False(t, ok)
	})
}
