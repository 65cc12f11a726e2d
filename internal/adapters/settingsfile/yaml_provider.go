package settingsfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/okgate/internal/core/domain/settings"
	"github.com/AntonioJCosta/okgate/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is looked up in the working directory when no path is configured.
	DefaultFileName = ".okgate.yaml"
	// PathEnvVar overrides the settings file location.
	PathEnvVar = "OKGATE_CONFIG"
)

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML settings file.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultFilePath returns $OKGATE_CONFIG if set, otherwise DefaultFileName.
func DefaultFilePath() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	return DefaultFileName
}

// GetSettings reads and parses settings from the configured YAML file.
// A missing or empty file yields zero settings and no error; unknown keys are rejected.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	var s settings.Settings

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return s, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&s); err != nil {
		// A file holding only comments or "---" has no documents.
		if errors.Is(err, io.EOF) {
			return settings.Settings{}, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}
	return s, nil
}

// GetSourceIdentifier returns the path the settings are read from.
func (p *YAMLProvider) GetSourceIdentifier() string {
	return p.filePath
}
