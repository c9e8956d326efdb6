package ports

import "go.trai.ch/todo/internal/core/domain"

// ConfigLoader defines the interface for loading the application configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the given working directory.
	// When no config file can be found the defaults from domain.DefaultConfig are returned.
	Load(cwd string) (domain.Config, error)
}
