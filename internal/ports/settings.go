package ports

import (
	"context"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
)

// SettingsRepository stores frontend settings that are not key bindings
type SettingsRepository interface {
	Fullscreen() (bool, error)
	SetFullscreen(fullscreen bool) error
}

// GameDirRepository stores the list of game directories
type GameDirRepository interface {
	// List returns the stored directories as written, possibly with duplicates
	List() ([]string, error)

	// Replace overwrites the stored list
	Replace(dirs []string) error
}

// ScriptRunner runs user scripts registered for an event
type ScriptRunner interface {
	RunScripts(ctx context.Context, event domain.ScriptEvent) error
}
