package domain

import "sort"

// KeySet is the set of key codes bound to one event
type KeySet map[KeyCode]struct{}

// NewKeySet creates a set holding the given codes, duplicates collapsed
func NewKeySet(codes ...KeyCode) KeySet {
	s := make(KeySet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts code and reports whether the set changed
func (s KeySet) Add(code KeyCode) bool {
	if _, ok := s[code]; ok {
		return false
	}
	s[code] = struct{}{}
	return true
}

// Remove deletes code and reports whether the set changed
func (s KeySet) Remove(code KeyCode) bool {
	if _, ok := s[code]; !ok {
		return false
	}
	delete(s, code)
	return true
}

// Has reports whether code is in the set
func (s KeySet) Has(code KeyCode) bool {
	_, ok := s[code]
	return ok
}

// Sorted returns the codes in ascending order. Never nil.
func (s KeySet) Sorted() []KeyCode {
	codes := make([]KeyCode, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Clone returns an independent copy
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	for code := range s {
		c[code] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold the same codes
func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// BindingTable maps every KeyEvent ordinal to its key set
type BindingTable [EventCount]KeySet

// Clone returns a deep copy of the table. Nil sets become empty sets.
func (t BindingTable) Clone() BindingTable {
	var c BindingTable
	for i, s := range t {
		c[i] = s.Clone()
	}
	return c
}

// Equal reports whether both tables bind the same codes to every event
func (t BindingTable) Equal(other BindingTable) bool {
	for i := range t {
		if !t[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Apply replaces the sets of every event present in overrides.
// Events outside [0, EventCount) are skipped and returned.
func (t *BindingTable) Apply(overrides BindingOverrides) []KeyEvent {
	var skipped []KeyEvent
	for event, codes := range overrides {
		if !event.Valid() {
			skipped = append(skipped, event)
			continue
		}
		t[event] = NewKeySet(codes...)
	}
	sort.Slice(skipped, func(i, j int) bool { return skipped[i] < skipped[j] })
	return skipped
}

// BindingOverrides is what a binding store loads: events present replace the
// default set (an empty slice means explicitly unbound), absent events keep it.
type BindingOverrides map[KeyEvent][]KeyCode

// Overrides converts the full table into BindingOverrides holding every event
func (t BindingTable) Overrides() BindingOverrides {
	o := make(BindingOverrides, EventCount)
	for i, s := range t {
		o[KeyEvent(i)] = s.Sorted()
	}
	return o
}
