package services

import (
	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// InputDispatcher translates key presses into logical events.
// Its lookup table is rebuilt from scratch whenever the bindings change.
type InputDispatcher struct {
	decoder  ports.InputDecoder
	registry *KeyEditorService
	lookup   map[domain.KeyCode][]domain.KeyEvent
	reloads  int
	sub      *Subscription
}

// NewInputDispatcher builds the lookup table and subscribes to registry changes
func NewInputDispatcher(registry *KeyEditorService, decoder ports.InputDecoder) *InputDispatcher {
	d := &InputDispatcher{
		decoder:  decoder,
		registry: registry,
	}
	d.rebuild()
	d.sub = registry.Subscribe(d.reload)
	return d
}

// EventsFor returns the events bound to code, ordered by event
func (d *InputDispatcher) EventsFor(code domain.KeyCode) []domain.KeyEvent {
	events := d.lookup[code]
	return append([]domain.KeyEvent{}, events...)
}

// Dispatch decodes rawInput and returns the events it triggers
func (d *InputDispatcher) Dispatch(rawInput any) []domain.KeyEvent {
	code, ok := d.decoder.Decode(rawInput)
	if !ok {
		return []domain.KeyEvent{}
	}
	return d.EventsFor(code)
}

// Reloads returns how many times the table was rebuilt after a change
func (d *InputDispatcher) Reloads() int {
	return d.reloads
}

// Close stops listening for binding changes
func (d *InputDispatcher) Close() {
	d.sub.Unsubscribe()
}

func (d *InputDispatcher) reload() {
	d.rebuild()
	d.reloads++
	logging.Logger.Debug("Input dispatcher reloaded", "keys", len(d.lookup), "reloads", d.reloads)
}

func (d *InputDispatcher) rebuild() {
	table := d.registry.Bindings()
	lookup := make(map[domain.KeyCode][]domain.KeyEvent)
	for i, set := range table {
		for code := range set {
			lookup[code] = append(lookup[code], domain.KeyEvent(i))
		}
	}
	d.lookup = lookup
}
