package repositories

import (
	domainRepos "github.com/rios0rios0/cargobump/internal/domain/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.CommandRunner {
		return NewExecCommandRunner()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ManifestRepository {
		return NewFileManifestRepository()
	}); err != nil {
		return err
	}

	return nil
}
