package domain

// DefaultBindings returns a fresh copy of the built-in binding table,
// used on first run and on reset.
func DefaultBindings() BindingTable {
	return BindingTable{
		EventLeft:     NewKeySet(KeyLeft, GamepadDPadLeft),
		EventRight:    NewKeySet(KeyRight, GamepadDPadRight),
		EventUp:       NewKeySet(KeyUp, GamepadDPadUp),
		EventDown:     NewKeySet(KeyDown, GamepadDPadDown),
		EventAccept:   NewKeySet(KeyEnter, GamepadA),
		EventCancel:   NewKeySet(KeyEscape, KeyBackspace, GamepadB),
		EventDetails:  NewKeySet(KeyI, GamepadX),
		EventFilters:  NewKeySet(KeyF, GamepadY),
		EventNextPage: NewKeySet(KeyE, GamepadR1),
		EventPrevPage: NewKeySet(KeyQ, GamepadL1),
		EventPageUp:   NewKeySet(KeyPageUp, GamepadL2),
		EventPageDown: NewKeySet(KeyPageDown, GamepadR2),
		EventMainMenu: NewKeySet(KeyF1, GamepadStart),
	}
}
