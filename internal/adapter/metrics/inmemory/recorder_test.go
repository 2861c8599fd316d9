package inmemory

import "testing"

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.RecordIncome(70)
	r.RecordIncome(144)
	r.RecordEvent("Sponsorluk anlaşması!")
	r.RecordAutosave(true)
	r.RecordAutosave(false)
	r.RecordAction("build", true)
	r.RecordAction("build", false)
	r.RecordAction("explore", true)

	snap := r.Snapshot()
	if snap.IncomeTicks != 2 || snap.GoldEarned != 214 {
		t.Fatalf("income = (%d ticks, %d gold), want (2, 214)", snap.IncomeTicks, snap.GoldEarned)
	}
	if snap.EventsFired != 1 || snap.LastEventFired != "Sponsorluk anlaşması!" {
		t.Fatalf("events = (%d, %q)", snap.EventsFired, snap.LastEventFired)
	}
	if snap.AutosaveOK != 1 || snap.AutosaveFailed != 1 {
		t.Fatalf("autosaves = (%d ok, %d failed)", snap.AutosaveOK, snap.AutosaveFailed)
	}
	if snap.ActionTotal != 3 || snap.ActionRejected != 1 {
		t.Fatalf("actions = (%d total, %d rejected)", snap.ActionTotal, snap.ActionRejected)
	}
	if snap.ActionsByName["build"] != 2 || snap.ActionsByName["explore"] != 1 {
		t.Fatalf("by name = %v", snap.ActionsByName)
	}

	// Snapshots are copies; mutating one must not leak back.
	snap.ActionsByName["build"] = 99
	if r.Snapshot().ActionsByName["build"] != 2 {
		t.Fatal("snapshot map aliases recorder state")
	}
}
