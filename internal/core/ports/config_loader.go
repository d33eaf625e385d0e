// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/scout/internal/core/domain"

// ConfigLoader defines the interface for loading the package manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path discovers
	// scout.toml or scout.yaml by walking up from the working directory.
	Load(path string) (*domain.Manifest, error)
}
