package ports

import "go.trai.ch/hrdesk/internal/core/domain"

// ConfigLoader defines the interface for resolving the client settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the settings for the given working directory from defaults,
	// the nearest config file and environment overrides.
	Load(cwd string) (domain.Settings, error)

	// DiscoverConfigPath walks up from cwd to find the config file.
	// Returns an empty path if none exists.
	DiscoverConfigPath(cwd string) (string, error)
}
