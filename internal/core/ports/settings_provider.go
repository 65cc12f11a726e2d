package ports

import "github.com/AntonioJCosta/okgate/internal/core/domain/settings"

// SettingsProvider supplies the wrapper settings.
type SettingsProvider interface {
	GetSettings() (settings.Settings, error)
	GetSourceIdentifier() string
}
