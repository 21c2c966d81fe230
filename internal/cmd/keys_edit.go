package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/ui"
)

// KeysEditCmd starts the binding editor TUI
type KeysEditCmd struct {
	Dev bool `help:"Enable development mode (shows version info in the header)"`
}

// Run executes the TUI
func (k *KeysEditCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting key binding editor")

	model := ui.NewKeyEditorModel(context.Background(), cli.Container.KeyEditorService, k.Dev)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}

	if err := cli.Container.KeyEditorService.PersistError(); err != nil {
		return err
	}
	return nil
}
