package gormrepo

import "time"

// SaveSlot holds one opaque save blob per slot. The payload is the codec's
// JSON; the database never interprets it.
type SaveSlot struct {
	Slot      string `gorm:"primaryKey;size:64"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

type JournalRow struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Slot       string `gorm:"size:64;index;not null"`
	Kind       string `gorm:"size:32;not null"`
	Message    string `gorm:"type:text;not null"`
	Delta      int
	Severity   string `gorm:"size:16;not null"`
	OccurredAt time.Time
}
