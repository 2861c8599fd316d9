package memory

import (
	"context"

	"zooverse/internal/app/ports"
)

type SaveRepo struct {
	store *Store
}

func NewSaveRepo(store *Store) SaveRepo {
	return SaveRepo{store: store}
}

func (r SaveRepo) LoadBlob(_ context.Context, slot string) ([]byte, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	blob, ok := r.store.saves[slot]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (r SaveRepo) SaveBlob(_ context.Context, slot string, blob []byte) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.saves[slot] = append([]byte(nil), blob...)
	return nil
}

func (r SaveRepo) DeleteBlob(_ context.Context, slot string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.saves[slot]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.saves, slot)
	return nil
}
