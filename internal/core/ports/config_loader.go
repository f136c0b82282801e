package ports

import "go.osec.io/solverify/internal/core/domain"

// ConfigLoader resolves the tool configuration.
//
//go:generate mockgen -destination=mocks/config_loader_mock.go -package=mocks -source=config_loader.go
type ConfigLoader interface {
	// Load returns the configuration with defaults applied. A missing
	// configuration file is not an error.
	Load() (*domain.Config, error)
}
