package ports

import (
	"context"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
)

// BindingStore persists the key binding table
type BindingStore interface {
	// Load returns the persisted bindings. Events missing from the result keep their defaults.
	Load(ctx context.Context) (domain.BindingOverrides, error)

	// Save overwrites the persisted bindings with the full table, including empty sets
	Save(ctx context.Context, table domain.BindingTable) error

	// Reset discards every persisted binding
	Reset(ctx context.Context) error

	Close() error
}
