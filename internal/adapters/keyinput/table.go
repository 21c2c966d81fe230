package keyinput

import (
	"fmt"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
)

// keyInfo holds the display name and the accepted input names of a key
type keyInfo struct {
	Aliases []string
	Code    domain.KeyCode
	Name    string
}

var namedKeys = []keyInfo{
	{Code: domain.KeyBackspace, Name: "Backspace", Aliases: []string{"backspace", "bs"}},
	{Code: domain.KeyTab, Name: "Tab", Aliases: []string{"tab"}},
	{Code: domain.KeyEnter, Name: "Enter", Aliases: []string{"enter", "return"}},
	{Code: domain.KeyShift, Name: "Shift", Aliases: []string{"shift"}},
	{Code: domain.KeyCtrl, Name: "Ctrl", Aliases: []string{"ctrl", "control"}},
	{Code: domain.KeyAlt, Name: "Alt", Aliases: []string{"alt"}},
	{Code: 19, Name: "Pause", Aliases: []string{"pause"}},
	{Code: 20, Name: "Caps Lock", Aliases: []string{"capslock", "caps_lock"}},
	{Code: domain.KeyEscape, Name: "Escape", Aliases: []string{"esc", "escape"}},
	{Code: domain.KeySpace, Name: "Space", Aliases: []string{"space", " "}},
	{Code: domain.KeyPageUp, Name: "Page Up", Aliases: []string{"pgup", "pageup", "page_up"}},
	{Code: domain.KeyPageDown, Name: "Page Down", Aliases: []string{"pgdown", "pagedown", "page_down"}},
	{Code: domain.KeyEnd, Name: "End", Aliases: []string{"end"}},
	{Code: domain.KeyHome, Name: "Home", Aliases: []string{"home"}},
	{Code: domain.KeyLeft, Name: "Left arrow", Aliases: []string{"left"}},
	{Code: domain.KeyUp, Name: "Up arrow", Aliases: []string{"up"}},
	{Code: domain.KeyRight, Name: "Right arrow", Aliases: []string{"right"}},
	{Code: domain.KeyDown, Name: "Down arrow", Aliases: []string{"down"}},
	{Code: domain.KeyInsert, Name: "Insert", Aliases: []string{"insert", "ins"}},
	{Code: domain.KeyDelete, Name: "Delete", Aliases: []string{"delete", "del"}},

	{Code: domain.GamepadA, Name: "Gamepad A", Aliases: []string{"gamepad_a", "pad_a"}},
	{Code: domain.GamepadB, Name: "Gamepad B", Aliases: []string{"gamepad_b", "pad_b"}},
	{Code: domain.GamepadX, Name: "Gamepad X", Aliases: []string{"gamepad_x", "pad_x"}},
	{Code: domain.GamepadY, Name: "Gamepad Y", Aliases: []string{"gamepad_y", "pad_y"}},
	{Code: domain.GamepadL1, Name: "Gamepad L1", Aliases: []string{"gamepad_l1", "pad_l1"}},
	{Code: domain.GamepadR1, Name: "Gamepad R1", Aliases: []string{"gamepad_r1", "pad_r1"}},
	{Code: domain.GamepadL2, Name: "Gamepad L2", Aliases: []string{"gamepad_l2", "pad_l2"}},
	{Code: domain.GamepadR2, Name: "Gamepad R2", Aliases: []string{"gamepad_r2", "pad_r2"}},
	{Code: domain.GamepadSelect, Name: "Gamepad Select", Aliases: []string{"gamepad_select", "pad_select"}},
	{Code: domain.GamepadStart, Name: "Gamepad Start", Aliases: []string{"gamepad_start", "pad_start"}},
	{Code: domain.GamepadGuide, Name: "Gamepad Guide", Aliases: []string{"gamepad_guide", "pad_guide"}},
	{Code: domain.GamepadL3, Name: "Gamepad L3", Aliases: []string{"gamepad_l3", "pad_l3"}},
	{Code: domain.GamepadR3, Name: "Gamepad R3", Aliases: []string{"gamepad_r3", "pad_r3"}},
	{Code: domain.GamepadDPadUp, Name: "Gamepad Up", Aliases: []string{"gamepad_up", "pad_up"}},
	{Code: domain.GamepadDPadDown, Name: "Gamepad Down", Aliases: []string{"gamepad_down", "pad_down"}},
	{Code: domain.GamepadDPadLeft, Name: "Gamepad Left", Aliases: []string{"gamepad_left", "pad_left"}},
	{Code: domain.GamepadDPadRight, Name: "Gamepad Right", Aliases: []string{"gamepad_right", "pad_right"}},
}

// keyTable indexes the known keys by code and by input name
type keyTable struct {
	byAlias map[string]domain.KeyCode
	byCode  map[domain.KeyCode]string
}

func newKeyTable() *keyTable {
	t := &keyTable{
		byAlias: make(map[string]domain.KeyCode),
		byCode:  make(map[domain.KeyCode]string),
	}

	for _, k := range namedKeys {
		t.byCode[k.Code] = k.Name
		for _, alias := range k.Aliases {
			t.byAlias[alias] = k.Code
		}
	}

	for r := 'a'; r <= 'z'; r++ {
		code, _ := domain.LetterKey(r)
		t.byCode[code] = string(r - 'a' + 'A')
		t.byAlias[string(r)] = code
	}

	for r := '0'; r <= '9'; r++ {
		code, _ := domain.DigitKey(r)
		t.byCode[code] = string(r)
		t.byAlias[string(r)] = code
	}

	for n := 1; n <= 24; n++ {
		code, _ := domain.FunctionKey(n)
		name := fmt.Sprintf("F%d", n)
		t.byCode[code] = name
		t.byAlias[fmt.Sprintf("f%d", n)] = code
	}

	return t
}

var defaultTable = newKeyTable()
