package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargobump/internal/domain/entities"
	"github.com/rios0rios0/cargobump/internal/domain/repositories"
)

// Bump is the interface for the version bump command.
type Bump interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BumpOptions) error
}

// BumpOptions holds runtime options for a single bump.
type BumpOptions struct {
	Tag        entities.Tag
	Start      bool   // Fan out over every manifest below Dir
	Dir        string // Directory holding the manifest, or the fan-out root
	Executable string // Absolute path re-invoked once per manifest in Start mode
	DryRun     bool
	Verbose    bool
	ConfigPath string // Forwarded to child invocations when set
}

// BumpCommand sets a package version and pins the tracked git dependencies
// to the matching tag.
type BumpCommand struct {
	runner    repositories.CommandRunner
	manifests repositories.ManifestRepository
}

// NewBumpCommand creates a new BumpCommand.
func NewBumpCommand(
	runner repositories.CommandRunner,
	manifests repositories.ManifestRepository,
) *BumpCommand {
	return &BumpCommand{
		runner:    runner,
		manifests: manifests,
	}
}

// Execute runs either the fan-out or the single-manifest bump.
// A failing external command is reported as an *entities.ExitError
// carrying that command's exit status.
func (it *BumpCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BumpOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if !opts.Tag.IsCanonicalSemver() {
		logger.Warnf("[bump] %q is not a canonical semantic version, continuing anyway", opts.Tag.Raw())
	}

	if opts.Start {
		return it.fanOut(ctx, settings, opts)
	}
	return it.bumpManifest(ctx, settings, opts)
}

// fanOut re-invokes the executable in the directory of every manifest found
// below opts.Dir. Children receive the original tag and never the start flag.
func (it *BumpCommand) fanOut(
	ctx context.Context,
	settings *entities.Settings,
	opts BumpOptions,
) error {
	if opts.Executable == "" {
		return errors.New("cannot fan out: executable path is unknown")
	}

	args := []string{".", "-iname", settings.Manifest, "-execdir", opts.Executable, opts.Tag.Raw()}
	args = append(args, childFlags(opts)...)
	args = append(args, ";")

	logger.Debugf("[bump] Fanning out over %s files below %s", settings.Manifest, opts.Dir)
	status, err := it.runner.Run(ctx, opts.Dir, "find", args...)
	if err != nil {
		return fmt.Errorf("failed to start find: %w", err)
	}
	if status != 0 {
		return entities.NewExitError(status, fmt.Errorf("find exited with status %d", status))
	}
	return nil
}

// childFlags returns the flags forwarded to each child invocation.
func childFlags(opts BumpOptions) []string {
	var flags []string
	if opts.DryRun {
		flags = append(flags, "--dry-run")
	}
	if opts.Verbose {
		flags = append(flags, "--verbose")
	}
	if opts.ConfigPath != "" {
		configPath := opts.ConfigPath
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(opts.Dir, configPath)
		}
		flags = append(flags, "--config", configPath)
	}
	return flags
}

// bumpManifest sets the package version and rewrites the pinned
// dependencies of the manifest in opts.Dir.
func (it *BumpCommand) bumpManifest(
	ctx context.Context,
	settings *entities.Settings,
	opts BumpOptions,
) error {
	info, described := it.describePackage(settings, opts)

	if opts.DryRun {
		if described {
			logger.Infof(
				"[bump] [DRY RUN] Would set version of %s from %s to %s in %s",
				info.Name, info.Version, opts.Tag.Version(), opts.Dir,
			)
		} else {
			logger.Infof("[bump] [DRY RUN] Would set version %s in %s", opts.Tag.Version(), opts.Dir)
		}
	} else {
		name := settings.SetVersion[0]
		args := append(append([]string{}, settings.SetVersion[1:]...), opts.Tag.Version())
		status, err := it.runner.Run(ctx, opts.Dir, name, args...)
		if err != nil {
			return fmt.Errorf("failed to start %s: %w", name, err)
		}
		if status != 0 {
			return entities.NewExitError(status, fmt.Errorf("%s exited with status %d", name, status))
		}
	}

	lines, err := it.manifests.Read(opts.Dir, settings.Manifest)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	rewritten, pins := entities.RewriteLines(lines, settings.PinRule(), opts.Tag)
	for _, pin := range pins {
		logger.Debugf("[bump] %s:%d %s -> %s", settings.Manifest, pin.Line, pin.OldLine, pin.NewLine)
	}

	if opts.DryRun {
		logger.Infof("[bump] [DRY RUN] Would pin %d dependencies to %s", len(pins), opts.Tag.Raw())
		return nil
	}

	if writeErr := it.manifests.Write(opts.Dir, settings.Manifest, rewritten); writeErr != nil {
		return fmt.Errorf("failed to write manifest: %w", writeErr)
	}
	logger.Debugf("[bump] Pinned %d dependencies to %s", len(pins), opts.Tag.Raw())
	return nil
}

// describePackage reports which package is being bumped. The manifest is
// not validated here; decoding problems are only logged and yield false.
func (it *BumpCommand) describePackage(
	settings *entities.Settings,
	opts BumpOptions,
) (entities.ManifestInfo, bool) {
	info, err := it.manifests.Describe(opts.Dir, settings.Manifest)
	if err != nil {
		logger.Debugf("[bump] Could not describe %s: %v", settings.Manifest, err)
		return entities.ManifestInfo{}, false
	}
	logger.Debugf("[bump] Bumping %s from %s to %s", info.Name, info.Version, opts.Tag.Version())
	return info, true
}
