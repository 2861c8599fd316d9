package memory

import (
	"context"

	"zooverse/internal/app/ports"
)

type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(_ context.Context, entry ports.JournalEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.journal[entry.Slot] = append(r.store.journal[entry.Slot], entry)
	return nil
}

// ListBySlot returns the newest entries first, matching the gorm twin.
func (r JournalRepo) ListBySlot(_ context.Context, slot string, limit int) ([]ports.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	entries := r.store.journal[slot]
	out := make([]ports.JournalEntry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}
