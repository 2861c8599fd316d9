package zoo

import "testing"

func TestDecayTick(t *testing.T) {
	w := WorldState{Animals: []Animal{
		{ID: "a1", Health: 80, Happiness: 60},
		{ID: "a2", Health: 1, Happiness: 2},
		{ID: "a3", Health: 1, Happiness: 1},
	}}

	DecayTick(&w)

	cases := []struct {
		idx                   int
		wantHealth, wantHappy int
	}{
		{0, 79, 58},
		{1, 0, 0},
		{2, 0, 0},
	}
	for _, tc := range cases {
		a := w.Animals[tc.idx]
		if a.Health != tc.wantHealth || a.Happiness != tc.wantHappy {
			t.Fatalf("animal %s = (%d, %d), want (%d, %d)", a.ID, a.Health, a.Happiness, tc.wantHealth, tc.wantHappy)
		}
	}
}

func TestDecayTickZeroStatsRestartFromFull(t *testing.T) {
	w := WorldState{Animals: []Animal{{ID: "a1", Health: 0, Happiness: 0}}}

	DecayTick(&w)

	a := w.Animals[0]
	if a.Health != 99 || a.Happiness != 98 {
		t.Fatalf("animal = (%d, %d), want (99, 98)", a.Health, a.Happiness)
	}
}

func TestDecayTickStaysInRange(t *testing.T) {
	w := WorldState{Animals: []Animal{{ID: "a1", Health: 50, Happiness: 50}}}
	for i := 0; i < 200; i++ {
		DecayTick(&w)
		a := w.Animals[0]
		if a.Health < 0 || a.Health > 100 || a.Happiness < 0 || a.Happiness > 100 {
			t.Fatalf("stats out of range after tick %d: (%d, %d)", i, a.Health, a.Happiness)
		}
	}
}
