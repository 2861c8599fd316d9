package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"zooverse/internal/app/ports"
)

func TestSaveRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveRepo(NewStore())

	if _, err := repo.LoadBlob(ctx, "s1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("load missing err = %v, want ErrNotFound", err)
	}

	if err := repo.SaveBlob(ctx, "s1", []byte(`{"gold":1}`)); err != nil {
		t.Fatalf("SaveBlob: %v", err)
	}
	got, err := repo.LoadBlob(ctx, "s1")
	if err != nil {
		t.Fatalf("LoadBlob: %v", err)
	}
	if string(got) != `{"gold":1}` {
		t.Fatalf("blob = %s", got)
	}

	// Mutating the returned slice must not corrupt the stored copy.
	got[2] = 'X'
	again, _ := repo.LoadBlob(ctx, "s1")
	if string(again) != `{"gold":1}` {
		t.Fatalf("stored blob mutated: %s", again)
	}

	if err := repo.SaveBlob(ctx, "s1", []byte(`{"gold":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = repo.LoadBlob(ctx, "s1")
	if string(got) != `{"gold":2}` {
		t.Fatalf("blob after overwrite = %s", got)
	}

	if err := repo.DeleteBlob(ctx, "s1"); err != nil {
		t.Fatalf("DeleteBlob: %v", err)
	}
	if err := repo.DeleteBlob(ctx, "s1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("delete missing err = %v, want ErrNotFound", err)
	}
}

func TestJournalRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewJournalRepo(NewStore())

	base := time.Unix(1700000000, 0)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, ports.JournalEntry{
			Slot:       "s1",
			Kind:       "random_event",
			Message:    string(rune('a' + i)),
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := repo.ListBySlot(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("ListBySlot: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Message != "c" || entries[2].Message != "a" {
		t.Fatalf("order wrong: %q .. %q, want newest first", entries[0].Message, entries[2].Message)
	}

	limited, _ := repo.ListBySlot(ctx, "s1", 2)
	if len(limited) != 2 || limited[0].Message != "c" {
		t.Fatalf("limited = %+v", limited)
	}

	other, _ := repo.ListBySlot(ctx, "s2", 0)
	if len(other) != 0 {
		t.Fatalf("foreign slot returned %d entries", len(other))
	}
}
