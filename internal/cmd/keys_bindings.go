package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
)

// KeysAddCmd binds a key to an event
type KeysAddCmd struct {
	Event string `arg:"" help:"Event name or id (e.g., up, page_up, 2)"`
	Key   string `arg:"" help:"Key name or code (e.g., w, ctrl, f1, gamepad_a, 38, 0x26, #8)"`
}

// Run executes the add command
func (k *KeysAddCmd) Run(cli *CLI) error {
	container := cli.Container

	event, err := parseEvent(k.Event)
	if err != nil {
		return err
	}
	code, err := decodeKey(container, k.Key)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing keys add command", "event", event, "keyCode", int(code))

	if slices.Contains(container.KeyEditorService.KeyCodesOf(int(event)), code) {
		fmt.Fprintf(stdout, "%s is already bound to %s\n", container.Namer.KeyName(code), event)
		return nil
	}

	container.KeyEditorService.AddKey(context.Background(), int(event), code)
	if err := container.KeyEditorService.PersistError(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Added %s to %s\n", container.Namer.KeyName(code), event)
	return nil
}

// KeysDelCmd unbinds a key from an event
type KeysDelCmd struct {
	Event string `arg:"" help:"Event name or id"`
	Key   string `arg:"" help:"Key name or code (#8 for codes 0-9)"`
}

// Run executes the del command
func (k *KeysDelCmd) Run(cli *CLI) error {
	container := cli.Container

	event, err := parseEvent(k.Event)
	if err != nil {
		return err
	}
	code, err := decodeKey(container, k.Key)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing keys del command", "event", event, "keyCode", int(code))

	if !slices.Contains(container.KeyEditorService.KeyCodesOf(int(event)), code) {
		return fmt.Errorf("%w: %s is not bound to %s", domain.ErrNotBound, container.Namer.KeyName(code), event)
	}

	container.KeyEditorService.DelKey(context.Background(), int(event), code)
	if err := container.KeyEditorService.PersistError(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Removed %s from %s\n", container.Namer.KeyName(code), event)
	return nil
}

// KeysReplaceCmd swaps a bound key for another
type KeysReplaceCmd struct {
	Event string `arg:"" help:"Event name or id"`
	Old   string `arg:"" help:"Key to replace"`
	New   string `arg:"" help:"Replacement key"`
}

// Run executes the replace command
func (k *KeysReplaceCmd) Run(cli *CLI) error {
	container := cli.Container

	event, err := parseEvent(k.Event)
	if err != nil {
		return err
	}
	oldCode, err := decodeKey(container, k.Old)
	if err != nil {
		return err
	}
	newCode, err := decodeKey(container, k.New)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing keys replace command", "event", event, "oldKeyCode", int(oldCode), "newKeyCode", int(newCode))

	if !slices.Contains(container.KeyEditorService.KeyCodesOf(int(event)), oldCode) {
		logging.Logger.Warn("Replaced key is not bound, adding only", "event", event, "keyCode", int(oldCode))
	}

	container.KeyEditorService.ReplaceKey(context.Background(), int(event), oldCode, newCode)
	if err := container.KeyEditorService.PersistError(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %s\n", event, keyNames(container, container.KeyEditorService.KeyCodesOf(int(event))))
	return nil
}

// KeysWhichCmd shows the events a key triggers
type KeysWhichCmd struct {
	Key string `arg:"" help:"Key name or code (#8 for codes 0-9)"`
}

// Run executes the which command
func (k *KeysWhichCmd) Run(cli *CLI) error {
	container := cli.Container

	code, err := decodeKey(container, k.Key)
	if err != nil {
		return err
	}

	events := container.Dispatcher.Dispatch(k.Key)
	if len(events) == 0 {
		fmt.Fprintf(stdout, "%s is not bound\n", container.Namer.KeyName(code))
		return nil
	}

	names := make([]string, len(events))
	for i, event := range events {
		names[i] = event.String()
	}
	fmt.Fprintf(stdout, "%s: %s\n", container.Namer.KeyName(code), strings.Join(names, ", "))
	return nil
}
