package domain

// KeyCode is an opaque platform key identifier.
// Keyboard keys use virtual key numbering; gamepad buttons start at GamepadKeyBase.
type KeyCode int

// GamepadKeyBase is the first code used for gamepad buttons
const GamepadKeyBase KeyCode = 0x10000

// Keyboard codes referenced by the default bindings
const (
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyShift     KeyCode = 16
	KeyCtrl      KeyCode = 17
	KeyAlt       KeyCode = 18
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyPageUp    KeyCode = 33
	KeyPageDown  KeyCode = 34
	KeyEnd       KeyCode = 35
	KeyHome      KeyCode = 36
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
	KeyInsert    KeyCode = 45
	KeyDelete    KeyCode = 46
	Key0         KeyCode = 48
	KeyA         KeyCode = 65
	KeyE         KeyCode = 69
	KeyF         KeyCode = 70
	KeyI         KeyCode = 73
	KeyQ         KeyCode = 81
	KeyW         KeyCode = 87
	KeyF1        KeyCode = 112
)

// Gamepad button codes
const (
	GamepadA KeyCode = GamepadKeyBase + iota + 1
	GamepadB
	GamepadX
	GamepadY
	GamepadL1
	GamepadR1
	GamepadL2
	GamepadR2
	GamepadSelect
	GamepadStart
	GamepadGuide
	GamepadL3
	GamepadR3
	GamepadDPadUp
	GamepadDPadDown
	GamepadDPadLeft
	GamepadDPadRight
)

// LetterKey returns the code of an ASCII letter ('a'-'z' or 'A'-'Z')
func LetterKey(r rune) (KeyCode, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A'), true
	}
	return 0, false
}

// DigitKey returns the code of an ASCII digit
func DigitKey(r rune) (KeyCode, bool) {
	if r >= '0' && r <= '9' {
		return Key0 + KeyCode(r-'0'), true
	}
	return 0, false
}

// FunctionKey returns the code of F1..F24
func FunctionKey(n int) (KeyCode, bool) {
	if n < 1 || n > 24 {
		return 0, false
	}
	return KeyF1 + KeyCode(n-1), true
}

// IsGamepad reports whether the code belongs to a gamepad button
func (c KeyCode) IsGamepad() bool {
	return c > GamepadKeyBase
}
