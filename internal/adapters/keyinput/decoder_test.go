package keyinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
)

func TestDecoder_KeyMsg(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected domain.KeyCode
		ok       bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, domain.KeyUp, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, domain.KeyEnter, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, domain.KeyEscape, true},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, domain.KeyPageDown, true},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, domain.KeyF1, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, domain.KeySpace, true},
		{"lowercase w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, domain.KeyW, true},
		{"uppercase W", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, domain.KeyW, true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, domain.KeyCode(51), true},
		{"punctuation", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, 0, false},
		{"alt modified", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}, Alt: true}, 0, false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}, Paste: true}, 0, false},
		{"multiple runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a', 'b'}}, 0, false},
		{"ctrl combo", tea.KeyMsg{Type: tea.KeyCtrlA}, 0, false},
	}

	d := NewDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := d.Decode(tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, code)
			}
		})
	}
}

func TestDecoder_String(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.KeyCode
		ok       bool
	}{
		{"up", domain.KeyUp, true},
		{"W", domain.KeyW, true},
		{" ctrl ", domain.KeyCtrl, true},
		{"Return", domain.KeyEnter, true},
		{"f12", domain.KeyCode(123), true},
		{"gamepad_start", domain.GamepadStart, true},
		{"pad_a", domain.GamepadA, true},
		{"38", domain.KeyUp, true},
		{"0x57", domain.KeyW, true},
		{"7", domain.KeyCode(55), true},
		{"#8", domain.KeyBackspace, true},
		{"#0x26", domain.KeyUp, true},
		{"#38", domain.KeyUp, true},
		{"#", 0, false},
		{"#w", 0, false},
		{"#0", 0, false},
		{" ", domain.KeySpace, true},
		{"", 0, false},
		{"-4", 0, false},
		{"hyperkey", 0, false},
	}

	d := NewDecoder()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, ok := d.Decode(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, code)
			}
		})
	}
}

func TestDecoder_NumericAndUnknownTypes(t *testing.T) {
	d := NewDecoder()

	code, ok := d.Decode(domain.KeyCode(87))
	assert.True(t, ok)
	assert.Equal(t, domain.KeyW, code)

	code, ok = d.Decode(17)
	assert.True(t, ok)
	assert.Equal(t, domain.KeyCtrl, code)

	_, ok = d.Decode(0)
	assert.False(t, ok)

	_, ok = d.Decode(3.14)
	assert.False(t, ok)

	_, ok = d.Decode(nil)
	assert.False(t, ok)
}
