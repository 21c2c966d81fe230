package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bozothegeek/pegasus-frontend/internal/paths"
)

// Key binding storage backends
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendTOML   = "toml"
)

// DefaultBindingsBackend is used when neither the CLI nor settings.json choose one
const DefaultBindingsBackend = BackendSQLite

// DefaultFullscreen is the fullscreen value used when settings.json has none
const DefaultFullscreen = true

// ValidBackends lists the accepted bindings_backend values
var ValidBackends = []string{BackendBolt, BackendSQLite, BackendTOML}

// Settings represents the structure of $PEGASUS_HOME/settings.json
type Settings struct {
	BindingsBackend string `json:"bindings_backend,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	Fullscreen      *bool  `json:"fullscreen,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
}

// Validate checks for configuration errors
func (s *Settings) Validate() error {
	if s.BindingsBackend == "" {
		return nil
	}
	for _, b := range ValidBackends {
		if s.BindingsBackend == b {
			return nil
		}
	}
	return fmt.Errorf("unknown bindings_backend '%s'", s.BindingsBackend)
}

// FullscreenOrDefault returns the stored fullscreen flag or DefaultFullscreen
func (s *Settings) FullscreenOrDefault() bool {
	if s.Fullscreen == nil {
		return DefaultFullscreen
	}
	return *s.Fullscreen
}

// LoadSettings loads settings from $PEGASUS_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PEGASUS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
