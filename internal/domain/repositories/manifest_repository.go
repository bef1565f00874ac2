package repositories

import "github.com/rios0rios0/cargobump/internal/domain/entities"

// ManifestRepository abstracts line-oriented access to a package manifest.
type ManifestRepository interface {
	// Read returns the manifest's lines, without terminators.
	Read(dir, name string) ([]string, error)

	// Write overwrites the manifest with lines, each terminated by "\n".
	Write(dir, name string, lines []string) error

	// Describe returns the package name and version declared by the manifest.
	Describe(dir, name string) (entities.ManifestInfo, error)
}
