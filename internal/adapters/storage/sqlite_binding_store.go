package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// SQLiteBindingStore implements ports.BindingStore using GORM
type SQLiteBindingStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.BindingStore = (*SQLiteBindingStore)(nil)

// NewSQLiteBindingStore opens (and migrates) the binding database at dbPath
func NewSQLiteBindingStore(dbPath string) (*SQLiteBindingStore, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&KeyEventModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate key_events schema: %w", err)
	}

	if !db.Migrator().HasTable(&KeyBindingModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS key_bindings (
				event_name TEXT NOT NULL,
				key_code INTEGER NOT NULL,
				created_at DATETIME,
				PRIMARY KEY (event_name, key_code),
				FOREIGN KEY (event_name) REFERENCES key_events(name) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create key_bindings table: %w", err)
		}
	}

	// The registry is single-threaded; one connection keeps every write serialized
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteBindingStore{db: db}, nil
}

// NewSQLiteBindingStoreForPath opens the binding database inside a PEGASUS_HOME directory
func NewSQLiteBindingStoreForPath(homePath string) (*SQLiteBindingStore, error) {
	return NewSQLiteBindingStore(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (s *SQLiteBindingStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements BindingStore.Load
func (s *SQLiteBindingStore) Load(ctx context.Context) (domain.BindingOverrides, error) {
	var events []KeyEventModel
	var bindings []KeyBindingModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Find(&events).Error; err != nil {
				return err
			}
			return tx.Order("event_name, key_code").Find(&bindings).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load key bindings: %w", err)
	}

	return modelsToOverrides(events, bindings), nil
}

// Save implements BindingStore.Save. The whole table is rewritten in one transaction.
func (s *SQLiteBindingStore) Save(ctx context.Context, table domain.BindingTable) error {
	events, bindings := tableToModels(table)

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := deleteAll(tx); err != nil {
				return err
			}
			if err := tx.Create(&events).Error; err != nil {
				return fmt.Errorf("failed to insert key events: %w", err)
			}
			if len(bindings) == 0 {
				return nil
			}
			if err := tx.Create(&bindings).Error; err != nil {
				return fmt.Errorf("failed to insert key bindings: %w", err)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save key bindings: %w", err)
	}

	logging.Logger.Debug("Key bindings saved", "backend", "sqlite", "bindings", len(bindings))
	return nil
}

// Reset implements BindingStore.Reset
func (s *SQLiteBindingStore) Reset(ctx context.Context) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(deleteAll)
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to reset key bindings: %w", err)
	}
	return nil
}

func deleteAll(tx *gorm.DB) error {
	if err := tx.Exec("DELETE FROM key_bindings").Error; err != nil {
		return fmt.Errorf("failed to delete key bindings: %w", err)
	}
	if err := tx.Exec("DELETE FROM key_events").Error; err != nil {
		return fmt.Errorf("failed to delete key events: %w", err)
	}
	return nil
}

// withRetry retries fn while sqlite reports the database busy or locked,
// backing off linearly. The last error is kept when retries run out.
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = fn(); err == nil || !isBusy(err) {
			return err
		}
		logging.Logger.Debug("Database busy, retrying", "attempt", i+1, "error", err)
		time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
