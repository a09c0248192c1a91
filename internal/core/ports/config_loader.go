package ports

import "go.trai.ch/modpack/internal/core/domain"

// SettingsLoader defines the interface for loading the tool settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file from the given working directory, applying
	// environment overrides and defaults.
	Load(cwd string) (*domain.Settings, error)
}
