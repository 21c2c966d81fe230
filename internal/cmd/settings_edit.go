package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bozothegeek/pegasus-frontend/internal/config"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
)

// SettingsEditCmd opens settings.json in an editor
type SettingsEditCmd struct {
	Editor string `help:"Editor to use (overrides $PEGASUS_EDITOR, $VISUAL, $EDITOR)"`
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	path := paths.GetSettingsPath()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logging.Logger.Info("Creating empty settings file", "path", path)
		if err := config.SaveSettings(&config.Settings{}); err != nil {
			return err
		}
	}

	if err := cli.Container.EditorOpener.Open(context.Background(), path, s.Editor); err != nil {
		return err
	}

	if _, err := config.LoadSettings(); err != nil {
		return fmt.Errorf("settings saved but not valid: %w", err)
	}

	fmt.Fprintf(stdout, "Settings saved to %s\n", path)
	return nil
}
