package ports

import "github.com/bozothegeek/pegasus-frontend/internal/domain"

// InputDecoder turns a captured input event into a key code
type InputDecoder interface {
	// Decode returns false when the input does not resolve to a key code
	Decode(raw any) (domain.KeyCode, bool)
}

// KeyNamer translates key codes into display names
type KeyNamer interface {
	// KeyName never fails; unknown codes get a placeholder name
	KeyName(code domain.KeyCode) string
}
