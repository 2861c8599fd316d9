package inmemory

import "sync"

type Snapshot struct {
	IncomeTicks    uint64            `json:"income_ticks"`
	GoldEarned     uint64            `json:"gold_earned"`
	EventsFired    uint64            `json:"events_fired"`
	AutosaveOK     uint64            `json:"autosave_ok"`
	AutosaveFailed uint64            `json:"autosave_failed"`
	ActionTotal    uint64            `json:"action_total"`
	ActionRejected uint64            `json:"action_rejected"`
	ActionsByName  map[string]uint64 `json:"actions_by_name"`
	LastEventFired string            `json:"last_event_fired,omitempty"`
}

// Recorder counts simulation KPIs. Safe for concurrent use: ticks come from
// the simulation loop while HTTP reads snapshots.
type Recorder struct {
	mu             sync.Mutex
	incomeTicks    uint64
	goldEarned     uint64
	eventsFired    uint64
	autosaveOK     uint64
	autosaveFailed uint64
	actionTotal    uint64
	actionRejected uint64
	actionsByName  map[string]uint64
	lastEvent      string
}

func NewRecorder() *Recorder {
	return &Recorder{actionsByName: map[string]uint64{}}
}

func (r *Recorder) RecordIncome(gold int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incomeTicks++
	r.goldEarned += uint64(gold)
}

func (r *Recorder) RecordEvent(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eventsFired++
	r.lastEvent = message
}

func (r *Recorder) RecordAutosave(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.autosaveOK++
	} else {
		r.autosaveFailed++
	}
}

func (r *Recorder) RecordAction(name string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actionTotal++
	if !ok {
		r.actionRejected++
	}
	r.actionsByName[name]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := Snapshot{
		IncomeTicks:    r.incomeTicks,
		GoldEarned:     r.goldEarned,
		EventsFired:    r.eventsFired,
		AutosaveOK:     r.autosaveOK,
		AutosaveFailed: r.autosaveFailed,
		ActionTotal:    r.actionTotal,
		ActionRejected: r.actionRejected,
		ActionsByName:  make(map[string]uint64, len(r.actionsByName)),
		LastEventFired: r.lastEvent,
	}
	for k, v := range r.actionsByName {
		out.ActionsByName[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
