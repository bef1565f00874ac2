package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargobump/internal/domain/repositories"
)

// ExecCommandRunner runs commands as child processes of the current one.
type ExecCommandRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

var _ repositories.CommandRunner = (*ExecCommandRunner)(nil)

// NewExecCommandRunner creates a runner that streams child output to the
// process's own stdout and stderr.
func NewExecCommandRunner() *ExecCommandRunner {
	return &ExecCommandRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes name with args in dir and returns its exit status.
func (it *ExecCommandRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = it.Stdout
	cmd.Stderr = it.Stderr

	logger.Debugf("[exec] %s %v (in %s)", name, args, dir)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := exitErr.ExitCode()
		if status < 0 {
			// killed by a signal
			status = 1
		}
		return status, nil
	}
	return 0, fmt.Errorf("%s: %w", name, err)
}
