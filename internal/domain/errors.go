package domain

import "errors"

var (
	ErrInvalidEvent    = errors.New("invalid key event")
	ErrNotBound        = errors.New("key code not bound to event")
	ErrPersistence     = errors.New("failed to persist key bindings")
	ErrUnresolvedInput = errors.New("input could not be decoded to a key code")

	ErrGameDirExists   = errors.New("game directory already known")
	ErrGameDirIndex    = errors.New("game directory index out of range")
	ErrGameDirNotFound = errors.New("game directory not found")
)
