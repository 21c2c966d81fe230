package storage

import (
	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
)

// modelsToOverrides converts GORM rows to domain.BindingOverrides.
// Rows naming unknown events are skipped.
func modelsToOverrides(events []KeyEventModel, bindings []KeyBindingModel) domain.BindingOverrides {
	overrides := make(domain.BindingOverrides, len(events))

	for _, m := range events {
		event, ok := domain.KeyEventByName(m.Name)
		if !ok {
			logging.Logger.Warn("Ignoring unknown key event in database", "event", m.Name)
			continue
		}
		overrides[event] = []domain.KeyCode{}
	}

	for _, m := range bindings {
		event, ok := domain.KeyEventByName(m.EventName)
		if !ok {
			logging.Logger.Warn("Ignoring key binding for unknown event", "event", m.EventName, "keyCode", m.KeyCode)
			continue
		}
		overrides[event] = append(overrides[event], domain.KeyCode(m.KeyCode))
	}

	return overrides
}

// tableToModels converts a full binding table to GORM rows
func tableToModels(table domain.BindingTable) ([]KeyEventModel, []KeyBindingModel) {
	events := make([]KeyEventModel, 0, domain.EventCount)
	var bindings []KeyBindingModel

	for i, set := range table {
		name := domain.KeyEvent(i).String()
		events = append(events, KeyEventModel{Name: name})
		for _, code := range set.Sorted() {
			bindings = append(bindings, KeyBindingModel{EventName: name, KeyCode: int(code)})
		}
	}

	return events, bindings
}
