//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargobump/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cargobump.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should target the scrypto crates in Cargo.toml", func(t *testing.T) {
		t.Parallel()

		// given / when
		settings := entities.DefaultSettings()

		// then
		require.NoError(t, settings.Validate())
		assert.Equal(t, "Cargo.toml", settings.Manifest)
		assert.Equal(t, "https://github.com/radixdlt/radixdlt-scrypto", settings.GitURL)
		assert.Equal(t, []string{"scrypto", "sbor", "radix-engine"}, settings.Dependencies)
		assert.Equal(t, []string{"cargo", "set-version"}, settings.SetVersion)
	})
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should override only the keys present in the file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "dependencies:\n  - scrypto\n  - scrypto-unit\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"scrypto", "scrypto-unit"}, settings.Dependencies)
		assert.Equal(t, entities.DefaultGitURL, settings.GitURL)
		assert.Equal(t, entities.DefaultManifestName, settings.Manifest)
	})

	t.Run("should build the pin rule from the file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "git_url: https://example.com/fork\ndependencies: [sbor]\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{`sbor = { git = "https://example.com/fork"`}, settings.PinRule().Prefixes())
	})

	t.Run("should return error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should return error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "dependencies: [unterminated\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should reject an empty dependency list", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "dependencies: []\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dependencies")
	})

	t.Run("should reject a manifest path", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "manifest: sub/Cargo.toml\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest must be a file name")
	})
}

//nolint:paralleltest // t.Setenv cannot be combined with t.Parallel
func TestNewSettingsExpandsEnvironment(t *testing.T) {
	// given
	t.Setenv("CARGOBUMP_TEST_URL", "https://example.com/mirror")
	path := writeConfig(t, "git_url: ${CARGOBUMP_TEST_URL}\nset_version: [\"${CARGOBUMP_TEST_MISSING}cargo\", set-version]\n")

	// when
	settings, err := entities.NewSettings(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/mirror", settings.GitURL)
	assert.Equal(t, []string{"cargo", "set-version"}, settings.SetVersion)
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("should load an explicit path and report it", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "set_version: [cargo-edit, set-version]\n")

		// when
		settings, resolved, err := entities.LoadSettings(t.TempDir(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"cargo-edit", "set-version"}, settings.SetVersion)
		assert.Equal(t, path, resolved)
	})

	t.Run("should resolve a relative path against the directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte("dependencies: [sbor]\n"), 0o644))

		// when
		settings, resolved, err := entities.LoadSettings(dir, "custom.yaml")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"sbor"}, settings.Dependencies)
		assert.Equal(t, filepath.Join(dir, "custom.yaml"), resolved)
	})

	t.Run("should report the auto-detected file as an absolute path", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		configDir := filepath.Join(dir, "configs")
		require.NoError(t, os.Mkdir(configDir, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(configDir, "cargobump.yaml"),
			[]byte("git_url: https://example.com/fork\ndependencies: [myfork]\n"),
			0o644,
		))

		// when
		settings, resolved, err := entities.LoadSettings(dir, "")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"myfork"}, settings.Dependencies)
		assert.Equal(t, "https://example.com/fork", settings.GitURL)
		assert.True(t, filepath.IsAbs(resolved))
		assert.Equal(t, filepath.Join(configDir, "cargobump.yaml"), resolved)
	})
}
