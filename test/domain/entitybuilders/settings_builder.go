//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargobump/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	manifest     string
	gitURL       string
	dependencies []string
	setVersion   []string
}

// NewSettingsBuilder creates a new settings builder with the built-in defaults.
func NewSettingsBuilder() *SettingsBuilder {
	defaults := entities.DefaultSettings()
	return &SettingsBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		manifest:     defaults.Manifest,
		gitURL:       defaults.GitURL,
		dependencies: defaults.Dependencies,
		setVersion:   defaults.SetVersion,
	}
}

// WithManifest sets the manifest file name.
func (b *SettingsBuilder) WithManifest(manifest string) *SettingsBuilder {
	b.manifest = manifest
	return b
}

// WithGitURL sets the pinned source URL.
func (b *SettingsBuilder) WithGitURL(gitURL string) *SettingsBuilder {
	b.gitURL = gitURL
	return b
}

// WithDependencies sets the pinned crate names.
func (b *SettingsBuilder) WithDependencies(names ...string) *SettingsBuilder {
	b.dependencies = names
	return b
}

// WithSetVersion sets the version-setting command.
func (b *SettingsBuilder) WithSetVersion(argv ...string) *SettingsBuilder {
	b.setVersion = argv
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Manifest:     b.manifest,
		GitURL:       b.gitURL,
		Dependencies: append([]string{}, b.dependencies...),
		SetVersion:   append([]string{}, b.setVersion...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	defaults := entities.DefaultSettings()
	b.manifest = defaults.Manifest
	b.gitURL = defaults.GitURL
	b.dependencies = defaults.Dependencies
	b.setVersion = defaults.SetVersion
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		manifest:     b.manifest,
		gitURL:       b.gitURL,
		dependencies: append([]string{}, b.dependencies...),
		setVersion:   append([]string{}, b.setVersion...),
	}
}
