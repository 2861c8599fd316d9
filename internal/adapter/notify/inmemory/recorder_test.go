package inmemory

import (
	"strconv"
	"testing"

	"zooverse/internal/domain/zoo"
)

func TestSinkRecentNewestFirst(t *testing.T) {
	s := NewSink()
	s.Notify("first", zoo.SeverityInfo)
	s.Notify("second", zoo.SeverityError)
	s.Notify("third", zoo.SeveritySuccess)

	got := s.Recent(2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Message != "third" || got[1].Message != "second" {
		t.Fatalf("order = %q, %q, want newest first", got[0].Message, got[1].Message)
	}
	if got[0].Severity != zoo.SeveritySuccess {
		t.Fatalf("severity = %q", got[0].Severity)
	}

	if all := s.Recent(0); len(all) != 3 {
		t.Fatalf("Recent(0) = %d entries, want all 3", len(all))
	}
}

func TestSinkCapacity(t *testing.T) {
	s := NewSink()
	for i := 0; i < defaultCapacity+10; i++ {
		s.Notify("n"+strconv.Itoa(i), zoo.SeverityInfo)
	}

	all := s.Recent(0)
	if len(all) != defaultCapacity {
		t.Fatalf("len = %d, want %d", len(all), defaultCapacity)
	}
	if all[0].Message != "n"+strconv.Itoa(defaultCapacity+9) {
		t.Fatalf("newest = %q", all[0].Message)
	}
}
