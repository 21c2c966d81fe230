package keyinput

import (
	"fmt"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// Namer implements ports.KeyNamer from the built-in key table
type Namer struct {
	table *keyTable
}

// Compile-time interface verification
var _ ports.KeyNamer = (*Namer)(nil)

// NewNamer creates a new key namer
func NewNamer() *Namer {
	return &Namer{table: defaultTable}
}

// KeyName returns the display name of code, or a placeholder for unknown codes
func (n *Namer) KeyName(code domain.KeyCode) string {
	if name, ok := n.table.byCode[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown key (0x%x)", int(code))
}
