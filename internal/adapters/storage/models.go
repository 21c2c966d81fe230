package storage

import "time"

// KeyEventModel is the GORM model for key_events.
// A row marks the event as persisted, even when it has no key codes.
type KeyEventModel struct {
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (KeyEventModel) TableName() string { return "key_events" }

// KeyBindingModel is the GORM model for key_bindings
type KeyBindingModel struct {
	CreatedAt time.Time
	EventName string `gorm:"primaryKey"`
	KeyCode   int    `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for GORM
func (KeyBindingModel) TableName() string { return "key_bindings" }
