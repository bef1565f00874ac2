package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargobump/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct{}

// NewVersionController creates a new VersionController.
func NewVersionController() *VersionController {
	return &VersionController{}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the cargobump version",
	}
}

// Execute prints the build version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), "cargobump", entities.BuildVersion)
	return err
}
