package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/bozothegeek/pegasus-frontend/internal/logging"
)

// KeysResetCmd restores the default bindings
type KeysResetCmd struct {
	Force bool `help:"Reset without confirmation" short:"f"`
}

// Run executes the reset command
func (k *KeysResetCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing keys reset command", "force", k.Force)

	if !k.Force {
		confirmed, err := k.confirmReset()
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled key binding reset")
			fmt.Fprintln(stdout, "Cancelled")
			return nil
		}
	}

	cli.Container.KeyEditorService.ResetKeys(context.Background())
	if err := cli.Container.KeyEditorService.PersistError(); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Key bindings reset to defaults")
	return nil
}

func (k *KeysResetCmd) confirmReset() (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all key bindings?").
				Description("Every event goes back to its default keys.").
				Value(&confirmed).
				Affirmative("Reset").
				Negative("Cancel"),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}
