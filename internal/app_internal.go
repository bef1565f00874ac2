package internal

import (
	"github.com/rios0rios0/cargobump/internal/domain/entities"
	"github.com/rios0rios0/cargobump/internal/infrastructure/controllers"
)

// AppInternal holds the controllers the CLI is assembled from.
type AppInternal struct {
	bumpController *controllers.BumpController
	controllers    []entities.Controller
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(
	bumpController *controllers.BumpController,
	subControllers *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		bumpController: bumpController,
		controllers:    *subControllers,
	}
}

// GetBumpController returns the controller mounted as the root command.
func (it *AppInternal) GetBumpController() *controllers.BumpController {
	return it.bumpController
}

// GetControllers returns the controllers mounted as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
