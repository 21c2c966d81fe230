package services

import (
	"context"
	"fmt"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// KeyEditorService owns the binding table: every logical event and the key
// codes that trigger it. Each mutation writes the whole table through to the
// store and then notifies subscribers.
//
// The service is not safe for concurrent use; it is driven by a single
// caller (the TUI update loop or one CLI command).
type KeyEditorService struct {
	decoder    ports.InputDecoder
	namer      ports.KeyNamer
	store      ports.BindingStore
	bindings   domain.BindingTable
	observers  observers
	persistErr error
}

// NewKeyEditorService loads persisted overrides on top of the default table.
// A load failure is logged and the defaults are used.
func NewKeyEditorService(
	ctx context.Context,
	store ports.BindingStore,
	decoder ports.InputDecoder,
	namer ports.KeyNamer,
) *KeyEditorService {
	s := &KeyEditorService{
		decoder:  decoder,
		namer:    namer,
		store:    store,
		bindings: domain.DefaultBindings(),
	}

	overrides, err := store.Load(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load key bindings, using defaults", "error", err)
		return s
	}

	skipped := s.bindings.Apply(overrides)
	for _, event := range skipped {
		logging.Logger.Warn("Ignoring persisted bindings for invalid event", "event", int(event))
	}

	logging.Logger.Debug("Key bindings loaded", "overrides", len(overrides)-len(skipped))
	return s
}

// AddKey binds the key decoded from rawInput to the event.
// Invalid ids and undecodable input are ignored. Adding a code that is
// already bound changes nothing and raises no notification.
func (s *KeyEditorService) AddKey(ctx context.Context, eventID int, rawInput any) {
	event, ok := s.event(eventID, "add")
	if !ok {
		return
	}

	code, ok := s.decoder.Decode(rawInput)
	if !ok {
		logging.Logger.Debug("Ignoring add", "event", event, "error", domain.ErrUnresolvedInput)
		return
	}

	if !s.bindings[event].Add(code) {
		logging.Logger.Debug("Key already bound", "event", event, "keyCode", int(code))
		return
	}

	logging.Logger.Info("Key added", "event", event, "keyCode", int(code))
	s.commit(ctx)
}

// DelKey unbinds code from the event. Removing the last key leaves the event unbound.
func (s *KeyEditorService) DelKey(ctx context.Context, eventID int, code domain.KeyCode) {
	event, ok := s.event(eventID, "delete")
	if !ok {
		return
	}

	if !s.bindings[event].Remove(code) {
		logging.Logger.Debug("Ignoring delete", "event", event, "keyCode", int(code), "error", domain.ErrNotBound)
		return
	}

	logging.Logger.Info("Key removed", "event", event, "keyCode", int(code))
	s.commit(ctx)
}

// ReplaceKey removes oldCode and adds the key decoded from rawInput as one change.
// Each half is applied independently of the other failing.
func (s *KeyEditorService) ReplaceKey(ctx context.Context, eventID int, oldCode domain.KeyCode, rawInput any) {
	event, ok := s.event(eventID, "replace")
	if !ok {
		return
	}

	set := s.bindings[event]
	before := set.Clone()

	if !set.Remove(oldCode) {
		logging.Logger.Debug("Replaced key not bound", "event", event, "keyCode", int(oldCode), "error", domain.ErrNotBound)
	}

	code, decoded := s.decoder.Decode(rawInput)
	if decoded {
		set.Add(code)
	} else {
		logging.Logger.Debug("Replacement key not decoded", "event", event, "error", domain.ErrUnresolvedInput)
	}

	if set.Equal(before) {
		return
	}

	logging.Logger.Info("Key replaced", "event", event, "oldKeyCode", int(oldCode), "newKeyCode", int(code), "decoded", decoded)
	s.commit(ctx)
}

// ResetKeys restores the default table and discards persisted overrides.
// Subscribers are always notified.
func (s *KeyEditorService) ResetKeys(ctx context.Context) {
	s.bindings = domain.DefaultBindings()

	if err := s.store.Reset(ctx); err != nil {
		s.recordPersistError(err)
	} else {
		s.persistErr = nil
	}

	logging.Logger.Info("Key bindings reset to defaults")
	s.observers.notify()
}

// KeyCodesOf returns the codes bound to the event in ascending order.
// Invalid ids yield an empty slice.
func (s *KeyEditorService) KeyCodesOf(eventID int) []domain.KeyCode {
	event, err := domain.KeyEventFromID(eventID)
	if err != nil {
		return []domain.KeyCode{}
	}
	return s.bindings[event].Sorted()
}

// KeyName returns a human readable name for code
func (s *KeyEditorService) KeyName(code domain.KeyCode) string {
	return s.namer.KeyName(code)
}

// EventCount returns the number of logical events
func (s *KeyEditorService) EventCount() int {
	return domain.EventCount
}

// Bindings returns a deep copy of the current table
func (s *KeyEditorService) Bindings() domain.BindingTable {
	return s.bindings.Clone()
}

// PersistError returns the last persistence failure, or nil once a write succeeds
func (s *KeyEditorService) PersistError() error {
	return s.persistErr
}

// Subscribe registers fn to be called after every change
func (s *KeyEditorService) Subscribe(fn func()) *Subscription {
	return s.observers.subscribe(fn)
}

func (s *KeyEditorService) event(eventID int, op string) (domain.KeyEvent, bool) {
	event, err := domain.KeyEventFromID(eventID)
	if err != nil {
		logging.Logger.Warn("Ignoring key binding change", "op", op, "eventID", eventID, "error", err)
		return 0, false
	}
	return event, true
}

func (s *KeyEditorService) commit(ctx context.Context) {
	if err := s.store.Save(ctx, s.bindings.Clone()); err != nil {
		s.recordPersistError(err)
	} else {
		s.persistErr = nil
	}
	s.observers.notify()
}

func (s *KeyEditorService) recordPersistError(err error) {
	s.persistErr = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	logging.Logger.Error("Failed to persist key bindings", "error", err)
}
