package controllers

import "github.com/rios0rios0/cargobump/internal/domain/commands"

// NewBumpControllerInDir creates a BumpController rooted at dir for testing.
func NewBumpControllerInDir(command commands.Bump, dir string) *BumpController {
	return &BumpController{
		command:    command,
		workingDir: func() (string, error) { return dir, nil },
	}
}
