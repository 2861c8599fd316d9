package ports

import (
	"context"
	"time"

	"zooverse/internal/domain/zoo"
)

// SaveRepository stores one opaque save blob per slot. LoadBlob returns
// ErrNotFound when the slot has never been written; any other error is a
// storage failure the caller treats as a missing save.
type SaveRepository interface {
	LoadBlob(ctx context.Context, slot string) ([]byte, error)
	SaveBlob(ctx context.Context, slot string, blob []byte) error
	DeleteBlob(ctx context.Context, slot string) error
}

// JournalEntry records a simulation occurrence (random event, level-up,
// notable player action) for later inspection.
type JournalEntry struct {
	Slot       string
	Kind       string
	Message    string
	Delta      int
	Severity   zoo.Severity
	OccurredAt time.Time
}

type JournalRepository interface {
	Append(ctx context.Context, entry JournalEntry) error
	ListBySlot(ctx context.Context, slot string, limit int) ([]JournalEntry, error)
}
