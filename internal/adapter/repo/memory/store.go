// Package memory provides in-memory twins of the gorm repositories for
// tests and DSN-less development runs.
package memory

import (
	"sync"

	"zooverse/internal/app/ports"
)

type Store struct {
	mu      sync.RWMutex
	saves   map[string][]byte
	journal map[string][]ports.JournalEntry
}

func NewStore() *Store {
	return &Store{
		saves:   make(map[string][]byte),
		journal: make(map[string][]ports.JournalEntry),
	}
}

// SeedSave pre-loads a slot, bypassing the repository interface.
func (s *Store) SeedSave(slot string, blob []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[slot] = append([]byte(nil), blob...)
}
