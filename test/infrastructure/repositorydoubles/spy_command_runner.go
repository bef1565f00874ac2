//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cargobump/internal/domain/repositories"
)

// RunCall records a single invocation of Run.
type RunCall struct {
	Dir  string
	Name string
	Args []string
}

// SpyCommandRunner implements repositories.CommandRunner as a configurable spy.
type SpyCommandRunner struct {
	// --- Run ---
	Status int
	RunErr error
	// OnRun, when set, replaces Status and RunErr.
	OnRun    func(ctx context.Context, call RunCall) (int, error)
	RunCalls []RunCall
}

var _ repositories.CommandRunner = (*SpyCommandRunner)(nil)

func (s *SpyCommandRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	call := RunCall{Dir: dir, Name: name, Args: append([]string{}, args...)}
	s.RunCalls = append(s.RunCalls, call)
	if s.OnRun != nil {
		return s.OnRun(ctx, call)
	}
	return s.Status, s.RunErr
}
