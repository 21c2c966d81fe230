package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyEvent is a logical input action the frontend reacts to, independent of
// the physical key that triggers it. Values are ordinals in [0, EventCount).
type KeyEvent int

const (
	EventLeft KeyEvent = iota
	EventRight
	EventUp
	EventDown
	EventAccept
	EventCancel
	EventDetails
	EventFilters
	EventNextPage
	EventPrevPage
	EventPageUp
	EventPageDown
	EventMainMenu
)

// EventCount is the number of logical events
const EventCount = int(EventMainMenu) + 1

// KeyEventDefinition describes a logical event.
// Name is the stable identifier used by storage and the CLI.
type KeyEventDefinition struct {
	Event KeyEvent
	Label string
	Name  string
}

// KeyEvents is the canonical registry of all logical events, in ordinal order.
var KeyEvents = [EventCount]KeyEventDefinition{
	{Event: EventLeft, Name: "left", Label: "Move left"},
	{Event: EventRight, Name: "right", Label: "Move right"},
	{Event: EventUp, Name: "up", Label: "Move up"},
	{Event: EventDown, Name: "down", Label: "Move down"},
	{Event: EventAccept, Name: "accept", Label: "Accept"},
	{Event: EventCancel, Name: "cancel", Label: "Cancel / back"},
	{Event: EventDetails, Name: "details", Label: "Details"},
	{Event: EventFilters, Name: "filters", Label: "Filters"},
	{Event: EventNextPage, Name: "next_page", Label: "Next page"},
	{Event: EventPrevPage, Name: "prev_page", Label: "Previous page"},
	{Event: EventPageUp, Name: "page_up", Label: "Page up"},
	{Event: EventPageDown, Name: "page_down", Label: "Page down"},
	{Event: EventMainMenu, Name: "main_menu", Label: "Main menu"},
}

// Valid reports whether the event is inside [0, EventCount)
func (e KeyEvent) Valid() bool {
	return e >= 0 && int(e) < EventCount
}

// String returns the stable identifier of the event
func (e KeyEvent) String() string {
	if !e.Valid() {
		return fmt.Sprintf("KeyEvent(%d)", int(e))
	}
	return KeyEvents[e].Name
}

// Label returns the human readable name of the event
func (e KeyEvent) Label() string {
	if !e.Valid() {
		return e.String()
	}
	return KeyEvents[e].Label
}

// KeyEventFromID converts a raw ordinal into a KeyEvent.
// Returns ErrInvalidEvent when the ordinal is out of range.
func KeyEventFromID(id int) (KeyEvent, error) {
	e := KeyEvent(id)
	if !e.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidEvent, id)
	}
	return e, nil
}

// KeyEventByName looks up an event by its stable identifier
func KeyEventByName(name string) (KeyEvent, bool) {
	for _, def := range KeyEvents {
		if def.Name == name {
			return def.Event, true
		}
	}
	return 0, false
}

// ParseKeyEvent accepts either an identifier ("page_up", "page-up") or an ordinal ("10")
func ParseKeyEvent(s string) (KeyEvent, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if e, ok := KeyEventByName(normalized); ok {
		return e, nil
	}
	if id, err := strconv.Atoi(normalized); err == nil {
		return KeyEventFromID(id)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEvent, s)
}

// EventNames returns the identifiers of all events in ordinal order
func EventNames() []string {
	names := make([]string, EventCount)
	for i, def := range KeyEvents {
		names[i] = def.Name
	}
	return names
}
