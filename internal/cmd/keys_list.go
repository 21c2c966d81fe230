package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
)

// KeysListCmd lists all key bindings
type KeysListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type keyBindingOutput struct {
	Codes []int    `json:"codes" yaml:"codes"`
	Event string   `json:"event" yaml:"event"`
	Keys  []string `json:"keys" yaml:"keys"`
	Label string   `json:"label" yaml:"label"`
}

// Run executes the list command
func (k *KeysListCmd) Run(cli *CLI) error {
	container := cli.Container
	bindings := make([]keyBindingOutput, 0, domain.EventCount)

	for i := 0; i < container.KeyEditorService.EventCount(); i++ {
		event := domain.KeyEvent(i)
		codes := container.KeyEditorService.KeyCodesOf(i)
		out := keyBindingOutput{
			Codes: make([]int, len(codes)),
			Event: event.String(),
			Keys:  make([]string, len(codes)),
			Label: event.Label(),
		}
		for j, code := range codes {
			out.Codes[j] = int(code)
			out.Keys[j] = container.KeyEditorService.KeyName(code)
		}
		bindings = append(bindings, out)
	}

	switch k.Format {
	case "json":
		data, err := json.MarshalIndent(bindings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, err := yaml.Marshal(bindings)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(stdout, string(data))
	default:
		k.outputTable(bindings)
	}

	return nil
}

func (k *KeysListCmd) outputTable(bindings []keyBindingOutput) {
	fmt.Fprintf(stdout, "Key Bindings (home: %s)\n\n", paths.GetPegasusHome())

	w := tabwriter.NewWriter(stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Event\tLabel\tKeys")
	fmt.Fprintln(w, "─────\t─────\t────")

	for _, b := range bindings {
		keys := "-"
		if len(b.Keys) > 0 {
			keys = strings.Join(b.Keys, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Event, b.Label, keys)
	}

	w.Flush()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Use 'pegasus keys add <event> <key>' to customize.")
}
