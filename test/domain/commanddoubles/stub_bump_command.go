//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cargobump/internal/domain/commands"
	"github.com/rios0rios0/cargobump/internal/domain/entities"
)

// StubBumpCommand is a stub implementation of commands.Bump.
type StubBumpCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.BumpOptions
}

var _ commands.Bump = (*StubBumpCommand)(nil)

func (s *StubBumpCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.BumpOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
