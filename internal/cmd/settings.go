package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/bozothegeek/pegasus-frontend/internal/config"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit       SettingsEditCmd       `cmd:"edit" help:"Open settings.json in an editor"`
	Fullscreen SettingsFullscreenCmd `cmd:"fullscreen" help:"Show or change fullscreen mode"`
	GameDirs   SettingsGameDirsCmd   `cmd:"" name:"gamedirs" help:"Manage game directories"`
	Meta       SettingsMetaCmd       `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := paths.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	fmt.Fprintf(stdout, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(stdout, "Example settings.json:")
	fmt.Fprintln(stdout)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Create or edit this file to configure pegasus.")
	fmt.Fprintf(stdout, "Valid bindings_backend values: %v\n", config.ValidBackends)
	return nil
}
