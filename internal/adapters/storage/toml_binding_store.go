package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// TOMLBindingStore implements ports.BindingStore with a hand-editable keys.toml
//
//	[keys]
//	accept = [13, 65536]
//	details = []
type TOMLBindingStore struct {
	path string
}

var _ ports.BindingStore = (*TOMLBindingStore)(nil)

type keysFile struct {
	Keys map[string][]int `toml:"keys"`
}

// NewTOMLBindingStore creates a store backed by the file at path
func NewTOMLBindingStore(path string) *TOMLBindingStore {
	return &TOMLBindingStore{path: paths.ExpandPath(path)}
}

// Path returns the file the store reads and writes
func (s *TOMLBindingStore) Path() string {
	return s.path
}

// Load implements BindingStore.Load. A missing file yields no overrides.
func (s *TOMLBindingStore) Load(ctx context.Context) (domain.BindingOverrides, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.BindingOverrides{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(s.path), err)
	}

	var file keysFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(s.path), err)
	}

	overrides := make(domain.BindingOverrides, len(file.Keys))
	for name, codes := range file.Keys {
		event, ok := domain.KeyEventByName(name)
		if !ok {
			logging.Logger.Warn("Ignoring unknown key event in keys file", "event", name, "path", s.path)
			continue
		}
		keys := make([]domain.KeyCode, 0, len(codes))
		for _, code := range codes {
			keys = append(keys, domain.KeyCode(code))
		}
		overrides[event] = keys
	}

	return overrides, nil
}

// Save implements BindingStore.Save
func (s *TOMLBindingStore) Save(ctx context.Context, table domain.BindingTable) error {
	file := keysFile{Keys: make(map[string][]int, domain.EventCount)}
	for i, set := range table {
		codes := make([]int, 0, len(set))
		for _, code := range set.Sorted() {
			codes = append(codes, int(code))
		}
		file.Keys[domain.KeyEvent(i).String()] = codes
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal key bindings: %w", err)
	}

	return withFileLock(s.path, func() error {
		if err := writeFileAtomic(s.path, data); err != nil {
			return err
		}
		logging.Logger.Debug("Key bindings saved", "backend", "toml", "path", s.path)
		return nil
	})
}

// Reset implements BindingStore.Reset by removing the file
func (s *TOMLBindingStore) Reset(ctx context.Context) error {
	return withFileLock(s.path, func() error {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", filepath.Base(s.path), err)
		}
		return nil
	})
}

// Close implements BindingStore.Close
func (s *TOMLBindingStore) Close() error {
	return nil
}
