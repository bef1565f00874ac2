package repositories

import "context"

// CommandRunner abstracts the execution of external programs so that the
// bump flow can be driven by a fake in tests.
type CommandRunner interface {
	// Run executes name with args inside dir and returns its exit status.
	// A non-nil error means the command could not be started at all.
	Run(ctx context.Context, dir, name string, args ...string) (int, error)
}
