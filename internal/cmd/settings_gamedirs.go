package cmd

import (
	"context"
	"fmt"

	"github.com/bozothegeek/pegasus-frontend/internal/logging"
)

// SettingsGameDirsCmd manages the game directory list
type SettingsGameDirsCmd struct {
	Add  SettingsGameDirsAddCmd  `cmd:"add" help:"Add a game directory"`
	Del  SettingsGameDirsDelCmd  `cmd:"del" help:"Remove a game directory by index"`
	List SettingsGameDirsListCmd `cmd:"list" help:"List game directories" default:"1"`
}

// SettingsGameDirsListCmd lists game directories with their index
type SettingsGameDirsListCmd struct{}

// Run executes the list command
func (s *SettingsGameDirsListCmd) Run(cli *CLI) error {
	dirs, err := cli.Container.SettingsService.GameDirs()
	if err != nil {
		return err
	}

	if len(dirs) == 0 {
		fmt.Fprintln(stdout, "No game directories")
		return nil
	}

	for i, dir := range dirs {
		fmt.Fprintf(stdout, "%d\t%s\n", i, dir)
	}
	return nil
}

// SettingsGameDirsAddCmd adds a game directory
type SettingsGameDirsAddCmd struct {
	Path string `arg:"" help:"Directory to add" type:"path"`
}

// Run executes the add command
func (s *SettingsGameDirsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing gamedirs add command", "path", s.Path)

	if err := cli.Container.SettingsService.AddGameDir(context.Background(), s.Path); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Added %s\n", s.Path)
	return nil
}

// SettingsGameDirsDelCmd removes a game directory
type SettingsGameDirsDelCmd struct {
	Index int `arg:"" help:"Index shown by 'pegasus settings gamedirs list'"`
}

// Run executes the del command
func (s *SettingsGameDirsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing gamedirs del command", "index", s.Index)

	if err := cli.Container.SettingsService.DelGameDir(context.Background(), s.Index); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Removed game directory %d\n", s.Index)
	return nil
}
