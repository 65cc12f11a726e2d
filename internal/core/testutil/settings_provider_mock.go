package testutil

import "github.com/AntonioJCosta/okgate/internal/core/domain/settings"

// MockSettingsProvider is a mock implementation of ports.SettingsProvider.
type MockSettingsProvider struct {
	GetSettingsFunc         func() (settings.Settings, error)
	GetSourceIdentifierFunc func() string
}

// GetSettings calls the mock GetSettingsFunc, or returns empty settings.
func (m *MockSettingsProvider) GetSettings() (settings.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	return settings.Settings{}, nil
}

// GetSourceIdentifier calls the mock GetSourceIdentifierFunc.
func (m *MockSettingsProvider) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return "mock"
}
