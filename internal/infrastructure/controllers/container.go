package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewSyncController); err != nil {
		return err
	}
	if err := container.Provide(NewProfileController); err != nil {
		return err
	}
	if err := container.Provide(NewComposeController); err != nil {
		return err
	}
	if err := container.Provide(NewHexController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	syncController *SyncController,
	profileController *ProfileController,
	composeController *ComposeController,
	hexController *HexController,
) *[]entities.Controller {
	return &[]entities.Controller{
		syncController,
		profileController,
		composeController,
		hexController,
	}
}
