// Package inmemory keeps the most recent user-facing notifications in a
// ring buffer so the HTTP adapter can serve them as a toast feed.
package inmemory

import (
	"sync"
	"time"

	"zooverse/internal/domain/zoo"
)

const defaultCapacity = 50

type Notification struct {
	Message  string       `json:"message"`
	Severity zoo.Severity `json:"severity"`
	At       time.Time    `json:"at"`
}

type Sink struct {
	mu       sync.Mutex
	capacity int
	items    []Notification
	now      func() time.Time
}

func NewSink() *Sink {
	return &Sink{capacity: defaultCapacity, now: time.Now}
}

func (s *Sink) Notify(message string, severity zoo.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, Notification{Message: message, Severity: severity, At: s.now()})
	if len(s.items) > s.capacity {
		s.items = s.items[len(s.items)-s.capacity:]
	}
}

// Recent returns the newest notifications, newest first.
func (s *Sink) Recent(limit int) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > len(s.items) {
		limit = len(s.items)
	}
	out := make([]Notification, 0, limit)
	for i := len(s.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.items[i])
	}
	return out
}

// RecentAny adapts Recent for callers that only serialize the result.
func (s *Sink) RecentAny(limit int) any {
	return s.Recent(limit)
}
