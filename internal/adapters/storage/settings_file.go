package storage

import (
	"github.com/bozothegeek/pegasus-frontend/internal/config"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// SettingsFile implements ports.SettingsRepository on top of settings.json
type SettingsFile struct{}

var _ ports.SettingsRepository = (*SettingsFile)(nil)

// NewSettingsFile creates a settings.json backed repository
func NewSettingsFile() *SettingsFile {
	return &SettingsFile{}
}

// Fullscreen returns the stored fullscreen flag, defaulting to true
func (r *SettingsFile) Fullscreen() (bool, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return config.DefaultFullscreen, err
	}
	return settings.FullscreenOrDefault(), nil
}

// SetFullscreen stores the fullscreen flag, keeping the other settings intact
func (r *SettingsFile) SetFullscreen(fullscreen bool) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	settings.Fullscreen = &fullscreen
	return config.SaveSettings(settings)
}
