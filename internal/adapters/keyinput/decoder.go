package keyinput

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// Decoder implements ports.InputDecoder.
// It understands terminal key presses (tea.KeyMsg), key names and numeric codes.
type Decoder struct {
	table *keyTable
}

// Compile-time interface verification
var _ ports.InputDecoder = (*Decoder)(nil)

// NewDecoder creates a new input decoder
func NewDecoder() *Decoder {
	return &Decoder{table: defaultTable}
}

// Decode resolves raw into a key code
func (d *Decoder) Decode(raw any) (domain.KeyCode, bool) {
	switch v := raw.(type) {
	case tea.KeyMsg:
		return d.decodeKeyMsg(v)
	case string:
		return d.decodeString(v)
	case domain.KeyCode:
		return v, v > 0
	case int:
		return domain.KeyCode(v), v > 0
	default:
		return 0, false
	}
}

func (d *Decoder) decodeKeyMsg(msg tea.KeyMsg) (domain.KeyCode, bool) {
	if msg.Alt || msg.Paste {
		return 0, false
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return 0, false
		}
		return d.decodeRune(msg.Runes[0])
	}
	code, ok := d.table.byAlias[msg.String()]
	return code, ok
}

func (d *Decoder) decodeRune(r rune) (domain.KeyCode, bool) {
	if code, ok := domain.LetterKey(r); ok {
		return code, true
	}
	if code, ok := domain.DigitKey(r); ok {
		return code, true
	}
	if r == ' ' {
		return domain.KeySpace, true
	}
	return 0, false
}

// decodeString accepts key names ("up", "W", "gamepad_a") and codes ("38", "0x26").
// Single digits name the digit keys; "#8" forces a code.
func (d *Decoder) decodeString(s string) (domain.KeyCode, bool) {
	if s == " " {
		return domain.KeySpace, true
	}
	name := strings.ToLower(strings.TrimSpace(s))
	if code, ok := strings.CutPrefix(name, "#"); ok {
		return parseCode(code)
	}
	if name == "" {
		return 0, false
	}
	if code, ok := d.table.byAlias[name]; ok {
		return code, true
	}
	return parseCode(name)
}

func parseCode(s string) (domain.KeyCode, bool) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return domain.KeyCode(n), true
}
