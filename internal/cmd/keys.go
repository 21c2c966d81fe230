package cmd

import (
	"fmt"
	"strings"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
)

// KeysCmd manages key bindings
type KeysCmd struct {
	Add     KeysAddCmd     `cmd:"add" help:"Bind a key to an event"`
	Del     KeysDelCmd     `cmd:"del" help:"Unbind a key from an event"`
	Edit    KeysEditCmd    `cmd:"edit" help:"Edit key bindings interactively (default)" default:"1"`
	Events  KeysEventsCmd  `cmd:"events" help:"List the logical events"`
	List    KeysListCmd    `cmd:"list" help:"List key bindings"`
	Replace KeysReplaceCmd `cmd:"replace" help:"Replace a bound key with another"`
	Reset   KeysResetCmd   `cmd:"reset" help:"Restore the default key bindings"`
	Which   KeysWhichCmd   `cmd:"which" help:"Show the events a key triggers"`
}

// parseEvent resolves an event identifier or ordinal given on the command line
func parseEvent(input string) (domain.KeyEvent, error) {
	event, err := domain.ParseKeyEvent(input)
	if err != nil {
		return 0, fmt.Errorf("%w (valid: %s)", err, strings.Join(domain.EventNames(), ", "))
	}
	return event, nil
}

// decodeKey resolves a key name or code given on the command line
func decodeKey(container *Container, input string) (domain.KeyCode, error) {
	code, ok := container.Decoder.Decode(input)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnresolvedInput, input)
	}
	return code, nil
}

// keyNames returns the display names of codes joined by ", "
func keyNames(container *Container, codes []domain.KeyCode) string {
	if len(codes) == 0 {
		return "-"
	}
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = container.Namer.KeyName(code)
	}
	return strings.Join(names, ", ")
}
