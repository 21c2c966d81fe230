package cmd

import (
	"context"
	"fmt"

	"github.com/bozothegeek/pegasus-frontend/internal/logging"
)

// SettingsFullscreenCmd shows or sets fullscreen mode
type SettingsFullscreenCmd struct {
	Value string `arg:"" optional:"" help:"on or off (omit to show the current value)"`
}

// Run executes the fullscreen command
func (s *SettingsFullscreenCmd) Run(cli *CLI) error {
	service := cli.Container.SettingsService

	if s.Value == "" {
		fmt.Fprintln(stdout, onOff(service.Fullscreen()))
		return nil
	}

	var fullscreen bool
	switch s.Value {
	case "on":
		fullscreen = true
	case "off":
		fullscreen = false
	default:
		return fmt.Errorf("invalid value '%s': expected on or off", s.Value)
	}

	logging.Logger.Info("Executing settings fullscreen command", "fullscreen", fullscreen)

	if err := service.SetFullscreen(context.Background(), fullscreen); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Fullscreen: %s\n", onOff(fullscreen))
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
