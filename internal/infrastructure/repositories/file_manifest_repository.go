package repositories

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rios0rios0/cargobump/internal/domain/entities"
	"github.com/rios0rios0/cargobump/internal/domain/repositories"
)

const defaultManifestMode = 0o644

// FileManifestRepository reads and writes manifests on the local filesystem.
type FileManifestRepository struct{}

var _ repositories.ManifestRepository = (*FileManifestRepository)(nil)

// NewFileManifestRepository creates a new FileManifestRepository.
func NewFileManifestRepository() *FileManifestRepository {
	return &FileManifestRepository{}
}

// Read returns the lines of dir/name.
func (it *FileManifestRepository) Read(dir, name string) ([]string, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return entities.SplitLines(string(data)), nil
}

// Write overwrites dir/name in place, keeping its permissions. No backup is made.
func (it *FileManifestRepository) Write(dir, name string, lines []string) error {
	path := filepath.Join(dir, name)

	mode := os.FileMode(defaultManifestMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(entities.JoinLines(lines)), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// cargoManifest is the subset of a Cargo manifest used for logging.
type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// Describe decodes the [package] table of dir/name.
func (it *FileManifestRepository) Describe(dir, name string) (entities.ManifestInfo, error) {
	path := filepath.Join(dir, name)
	var manifest cargoManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return entities.ManifestInfo{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return entities.ManifestInfo{
		Name:    manifest.Package.Name,
		Version: manifest.Package.Version,
	}, nil
}
