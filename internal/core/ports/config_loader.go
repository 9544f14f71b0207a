package ports

import "go.trai.ch/pyrelgen/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting from cwd and returns the resolved settings.
	// Defaults are returned when no config file exists.
	Load(cwd string) (*domain.Config, error)
}
