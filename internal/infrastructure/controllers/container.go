package controllers

import (
	"github.com/rios0rios0/cargobump/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewBumpController); err != nil {
		return err
	}
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The bump controller is mounted as the root command instead.
func NewControllers(
	versionController *VersionController,
) *[]entities.Controller {
	return &[]entities.Controller{
		versionController,
	}
}
