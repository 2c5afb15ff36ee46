package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewSyncCommand); err != nil {
		return err
	}
	if err := container.Provide(NewProfileCommand); err != nil {
		return err
	}
	if err := container.Provide(NewComposeCommand); err != nil {
		return err
	}
	if err := container.Provide(NewHexCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *SyncCommand) Sync {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ProfileCommand) Profile {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ComposeCommand) Compose {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *HexCommand) Hex {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
