package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the config file search locations. Settings
// themselves depend on per-command flags and are loaded by the controllers.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(DefaultConfigSearch)
}
