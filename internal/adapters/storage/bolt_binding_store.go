package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

var bindingsBucket = []byte("key_bindings")

// BoltBindingStore implements ports.BindingStore on a bbolt file.
// Each event name maps to a JSON array of key codes.
type BoltBindingStore struct {
	db *bolt.DB
}

var _ ports.BindingStore = (*BoltBindingStore)(nil)

// NewBoltBindingStore opens the bolt database at path
func NewBoltBindingStore(path string) (*BoltBindingStore, error) {
	path = paths.ExpandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	return &BoltBindingStore{db: db}, nil
}

// Load implements BindingStore.Load
func (s *BoltBindingStore) Load(ctx context.Context) (domain.BindingOverrides, error) {
	overrides := domain.BindingOverrides{}

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bindingsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			event, ok := domain.KeyEventByName(string(k))
			if !ok {
				logging.Logger.Warn("Ignoring unknown key event in bolt store", "event", string(k))
				return nil
			}
			var codes []domain.KeyCode
			if err := json.Unmarshal(v, &codes); err != nil {
				return fmt.Errorf("invalid key codes for %s: %w", k, err)
			}
			if codes == nil {
				codes = []domain.KeyCode{}
			}
			overrides[event] = codes
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load key bindings: %w", err)
	}

	return overrides, nil
}

// Save implements BindingStore.Save
func (s *BoltBindingStore) Save(ctx context.Context, table domain.BindingTable) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bindingsBucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		bucket, err := tx.CreateBucket(bindingsBucket)
		if err != nil {
			return err
		}
		for event, codes := range table.Overrides() {
			data, err := json.Marshal(codes)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(event.String()), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save key bindings: %w", err)
	}

	logging.Logger.Debug("Key bindings saved", "backend", "bolt")
	return nil
}

// Reset implements BindingStore.Reset
func (s *BoltBindingStore) Reset(ctx context.Context) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bindingsBucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reset key bindings: %w", err)
	}
	return nil
}

// Close implements BindingStore.Close
func (s *BoltBindingStore) Close() error {
	return s.db.Close()
}
