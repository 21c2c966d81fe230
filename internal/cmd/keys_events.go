package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
)

// KeysEventsCmd lists the logical events
type KeysEventsCmd struct{}

// Run executes the events command
func (k *KeysEventsCmd) Run(cli *CLI) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tEvent\tLabel")
	fmt.Fprintln(w, "──\t─────\t─────")
	for i, def := range domain.KeyEvents {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, def.Name, def.Label)
	}
	return w.Flush()
}
