//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"os"
	"path/filepath"

	"github.com/rios0rios0/cargobump/internal/domain/entities"
	"github.com/rios0rios0/cargobump/internal/domain/repositories"
)

// InMemoryManifestRepository implements repositories.ManifestRepository
// over a map keyed by dir/name.
type InMemoryManifestRepository struct {
	Files       map[string]string
	Info        entities.ManifestInfo
	ReadErr     error
	WriteErr    error
	DescribeErr error
	WriteCount  int
}

var _ repositories.ManifestRepository = (*InMemoryManifestRepository)(nil)

// NewInMemoryManifestRepository creates a repository holding a single manifest.
func NewInMemoryManifestRepository(dir, name, content string) *InMemoryManifestRepository {
	return &InMemoryManifestRepository{
		Files: map[string]string{filepath.Join(dir, name): content},
	}
}

func (r *InMemoryManifestRepository) Read(dir, name string) ([]string, error) {
	if r.ReadErr != nil {
		return nil, r.ReadErr
	}
	content, ok := r.Files[filepath.Join(dir, name)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entities.SplitLines(content), nil
}

func (r *InMemoryManifestRepository) Write(dir, name string, lines []string) error {
	if r.WriteErr != nil {
		return r.WriteErr
	}
	r.WriteCount++
	r.Files[filepath.Join(dir, name)] = entities.JoinLines(lines)
	return nil
}

func (r *InMemoryManifestRepository) Describe(_, _ string) (entities.ManifestInfo, error) {
	return r.Info, r.DescribeErr
}
