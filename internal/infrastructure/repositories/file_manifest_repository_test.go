//go:build unit

package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargobump/internal/infrastructure/repositories"
)

const cargoManifest = `[package]
name = "fixburn1"
version = "0.3.0"
edition = "2021"

[dependencies]
scrypto = { git = "https://github.com/radixdlt/radixdlt-scrypto", tag = "v0.3.0" }
`

func TestFileManifestRepository(t *testing.T) {
	t.Parallel()

	t.Run("should read lines without terminators", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("a = 1\r\nb = 2\rc = 3\n"), 0o644))
		repo := repositories.NewFileManifestRepository()

		// when
		lines, err := repo.Read(dir, "Cargo.toml")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"a = 1", "b = 2", "c = 3"}, lines)
	})

	t.Run("should overwrite in place keeping permissions", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "Cargo.toml")
		require.NoError(t, os.WriteFile(path, []byte("old\ncontent\nlonger than new\n"), 0o600))
		repo := repositories.NewFileManifestRepository()

		// when
		err := repo.Write(dir, "Cargo.toml", []string{"new"})

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "new\n", string(data))
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		entries, _ := os.ReadDir(dir)
		assert.Len(t, entries, 1)
	})

	t.Run("should return error for a missing manifest", func(t *testing.T) {
		t.Parallel()

		// given
		repo := repositories.NewFileManifestRepository()

		// when
		_, err := repo.Read(t.TempDir(), "Cargo.toml")

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("should describe the package table", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(cargoManifest), 0o644))
		repo := repositories.NewFileManifestRepository()

		// when
		info, err := repo.Describe(dir, "Cargo.toml")

		// then
		require.NoError(t, err)
		assert.Equal(t, "fixburn1", info.Name)
		assert.Equal(t, "0.3.0", info.Version)
	})

	t.Run("should return error when describing malformed TOML", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package\n"), 0o644))
		repo := repositories.NewFileManifestRepository()

		// when
		_, err := repo.Describe(dir, "Cargo.toml")

		// then
		require.Error(t, err)
	})
}
