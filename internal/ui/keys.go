package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// EditorKeys contains the controls of the binding editor
type EditorKeys struct {
	Add     key.Binding
	Cancel  key.Binding
	Delete  key.Binding
	Down    key.Binding
	Help    key.Binding
	Left    key.Binding
	Quit    key.Binding
	Replace key.Binding
	Reset   key.Binding
	Right   key.Binding
	Up      key.Binding
}

// NewEditorKeys creates the editor controls from AllKeyDefinitions
func NewEditorKeys() EditorKeys {
	return EditorKeys{
		Add:     buildBinding("add"),
		Cancel:  buildBinding("cancel"),
		Delete:  buildBinding("delete"),
		Down:    buildBinding("down"),
		Help:    buildBinding("help"),
		Left:    buildBinding("left"),
		Quit:    buildBinding("quit"),
		Replace: buildBinding("replace"),
		Reset:   buildBinding("reset"),
		Right:   buildBinding("right"),
		Up:      buildBinding("up"),
	}
}

func buildBinding(name string) key.Binding {
	def, ok := keyDefinition(name)
	if !ok {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
	)
}

// ShortHelp returns the bindings shown in the bottom bar
func (k EditorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Replace, k.Delete, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped in columns
func (k EditorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Add, k.Replace, k.Delete, k.Reset},
		{k.Cancel, k.Help, k.Quit},
	}
}
