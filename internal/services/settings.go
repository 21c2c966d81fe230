package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bozothegeek/pegasus-frontend/internal/config"
	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// SettingsService handles the frontend settings that live next to the key bindings
type SettingsService struct {
	gameDirs  ports.GameDirRepository
	observers observers
	scripts   ports.ScriptRunner
	settings  ports.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(
	settings ports.SettingsRepository,
	gameDirs ports.GameDirRepository,
	scripts ports.ScriptRunner,
) *SettingsService {
	return &SettingsService{
		gameDirs: gameDirs,
		scripts:  scripts,
		settings: settings,
	}
}

// Subscribe registers fn to be called after every settings change
func (s *SettingsService) Subscribe(fn func()) *Subscription {
	return s.observers.subscribe(fn)
}

// Fullscreen returns the stored fullscreen flag.
// Read failures are logged and the default is returned.
func (s *SettingsService) Fullscreen() bool {
	fullscreen, err := s.settings.Fullscreen()
	if err != nil {
		logging.Logger.Error("Failed to read fullscreen setting", "error", err)
		return config.DefaultFullscreen
	}
	return fullscreen
}

// SetFullscreen stores the flag and runs the config-changed and settings-changed scripts
func (s *SettingsService) SetFullscreen(ctx context.Context, fullscreen bool) error {
	if s.Fullscreen() == fullscreen {
		logging.Logger.Debug("Fullscreen unchanged", "fullscreen", fullscreen)
		return nil
	}

	logging.Logger.Info("Setting fullscreen", "fullscreen", fullscreen)

	if err := s.settings.SetFullscreen(fullscreen); err != nil {
		logging.Logger.Error("Failed to update fullscreen", "error", err)
		return fmt.Errorf("failed to update fullscreen: %w", err)
	}

	s.observers.notify()
	s.runScripts(ctx, domain.ScriptConfigChanged, domain.ScriptSettingsChanged)
	return nil
}

// GameDirs returns the known game directories, sorted and without duplicates
func (s *SettingsService) GameDirs() ([]string, error) {
	dirs, err := s.gameDirs.List()
	if err != nil {
		logging.Logger.Error("Failed to list game directories", "error", err)
		return nil, fmt.Errorf("failed to list game directories: %w", err)
	}

	dirs = slices.Clone(dirs)
	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}

// AddGameDir adds an existing directory, stored as an absolute path with symlinks resolved
func (s *SettingsService) AddGameDir(ctx context.Context, path string) error {
	canonical, err := canonicalDir(path)
	if err != nil {
		logging.Logger.Warn("Game directory not added", "path", path, "error", err)
		return err
	}

	dirs, err := s.GameDirs()
	if err != nil {
		return err
	}

	if slices.Contains(dirs, canonical) {
		logging.Logger.Warn("Game directory already known", "path", canonical)
		return fmt.Errorf("%w: %s", domain.ErrGameDirExists, canonical)
	}

	dirs = append(dirs, canonical)
	slices.Sort(dirs)

	if err := s.gameDirs.Replace(dirs); err != nil {
		logging.Logger.Error("Failed to store game directories", "error", err)
		return fmt.Errorf("failed to store game directories: %w", err)
	}

	logging.Logger.Info("Game directory added", "path", canonical)
	s.observers.notify()
	return nil
}

// DelGameDir removes the directory at idx of the sorted list returned by GameDirs
func (s *SettingsService) DelGameDir(ctx context.Context, idx int) error {
	dirs, err := s.GameDirs()
	if err != nil {
		return err
	}

	if idx < 0 || idx >= len(dirs) {
		logging.Logger.Warn("Game directory index out of range", "index", idx, "count", len(dirs))
		return fmt.Errorf("%w: %d", domain.ErrGameDirIndex, idx)
	}

	removed := dirs[idx]
	dirs = slices.Delete(dirs, idx, idx+1)

	if err := s.gameDirs.Replace(dirs); err != nil {
		logging.Logger.Error("Failed to store game directories", "error", err)
		return fmt.Errorf("failed to store game directories: %w", err)
	}

	logging.Logger.Info("Game directory removed", "path", removed)
	s.observers.notify()
	return nil
}

func (s *SettingsService) runScripts(ctx context.Context, events ...domain.ScriptEvent) {
	for _, event := range events {
		if err := s.scripts.RunScripts(ctx, event); err != nil {
			logging.Logger.Warn("Scripts failed", "event", event, "error", err)
		}
	}
}

func canonicalDir(path string) (string, error) {
	expanded := paths.ExpandPath(path)

	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrGameDirNotFound, path)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", domain.ErrGameDirNotFound, path)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return resolved, nil
}
