package ui

// KeyDefinition defines the metadata for one editor control.
// All editor controls are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains every control of the binding editor
var AllKeyDefinitions = []KeyDefinition{
	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next event"},
	{Name: "left", Defaults: []string{"left", "h"}, Help: "previous key"},
	{Name: "right", Defaults: []string{"right", "l"}, Help: "next key"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous event"},

	// Binding keys
	{Name: "add", Defaults: []string{"a"}, Help: "add key"},
	{Name: "delete", Defaults: []string{"d", "x"}, Help: "delete key"},
	{Name: "replace", Defaults: []string{"r"}, Help: "replace key"},
	{Name: "reset", Defaults: []string{"R"}, Help: "reset to defaults"},

	// Application keys
	{Name: "cancel", Defaults: []string{"esc"}, Help: "cancel"},
	{Name: "help", Defaults: []string{"?"}, Help: "more keys"},
	{Name: "quit", Defaults: []string{"q", "ctrl+c"}, Help: "quit"},
}

// keyDefinition returns the definition named name
func keyDefinition(name string) (KeyDefinition, bool) {
	for _, def := range AllKeyDefinitions {
		if def.Name == name {
			return def, true
		}
	}
	return KeyDefinition{}, false
}
