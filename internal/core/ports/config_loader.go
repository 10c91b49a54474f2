package ports

import "github.com/agragregra/jw/internal/core/domain"

// ConfigLoader defines the interface for loading the workflow configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory. A missing config file is not an error; compiled-in
	// defaults apply.
	Load(cwd string) (*domain.Config, error)
}
