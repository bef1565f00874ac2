package controllers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargobump/internal/domain/commands"
	"github.com/rios0rios0/cargobump/internal/domain/entities"
)

const startArg = "--start"

// BumpController handles the root command: `cargobump <version> [--start]`.
type BumpController struct {
	command    commands.Bump
	workingDir func() (string, error)
}

// NewBumpController creates a new BumpController.
func NewBumpController(command commands.Bump) *BumpController {
	return &BumpController{command: command, workingDir: os.Getwd}
}

// GetBind returns the Cobra command metadata for the bump controller.
func (it *BumpController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cargobump <version> [--start]",
		Short: "Bump a crate version and pin its git dependencies",
		Long: `Set the package version of the Cargo.toml in the current directory to
<version> (without any leading "v") and pin every tracked git dependency
to the tag <version> (exactly as given).

With --start, every Cargo.toml below the current directory is bumped by
re-invoking this tool in its directory.`,
	}
}

// Execute validates the arguments and runs the bump. Usage problems print
// the usage text to stdout and yield exit status 1.
func (it *BumpController) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	usage := fmt.Sprintf("Usage: %s <version>", cmd.Root().Name())

	if len(args) < 1 {
		_, _ = fmt.Fprintln(out, usage)
		return entities.NewExitError(1, entities.ErrUsage)
	}

	tag, err := entities.ParseTag(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(out, "bad version: %s\n", args[0])
		_, _ = fmt.Fprintln(out, usage)
		return entities.NewExitError(1, fmt.Errorf("%w: %w", entities.ErrUsage, err))
	}

	start, _ := cmd.Flags().GetBool("start")
	// Cobra consumes --start as a flag; it only reaches args after "--",
	// as in `cargobump 1.2.3 -- --start`.
	if len(args) > 1 && args[1] == startArg {
		start = true
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")

	dir, err := it.workingDir()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	// Children run from other directories, so they get the resolved file
	// rather than searching again.
	settings, configPath, err := entities.LoadSettings(dir, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := commands.BumpOptions{
		Tag:        tag,
		Start:      start,
		Dir:        dir,
		DryRun:     dryRun,
		Verbose:    verbose,
		ConfigPath: configPath,
	}
	if start {
		if opts.Executable, err = resolveExecutable(); err != nil {
			return err
		}
	}

	return it.command.Execute(context.Background(), settings, opts)
}

// AddFlags adds the bump-specific flags to the given Cobra command.
func (it *BumpController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("start", false,
		"Bump every "+entities.DefaultManifestName+" below the current directory")
}

// resolveExecutable returns the absolute path of the running binary.
func resolveExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve own executable: %w", err)
	}
	return filepath.Abs(exe)
}
