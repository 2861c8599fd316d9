package zoo

import (
	"math/rand"
	"testing"
)

func TestRollEventInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	known := map[string]int{}
	for _, e := range RandomEvents {
		known[e.Message] = e.Delta
	}

	fired, skipped := 0, 0
	for i := 0; i < 500; i++ {
		w := WorldState{Gold: 50}
		out := RollEvent(&w, rng)
		if out == nil {
			skipped++
			if w.Gold != 50 {
				t.Fatalf("no-fire roll changed gold to %d", w.Gold)
			}
			continue
		}
		fired++

		delta, ok := known[out.Message]
		if !ok {
			t.Fatalf("unknown event message %q", out.Message)
		}
		if out.Delta != delta {
			t.Fatalf("event %q delta = %d, want %d", out.Message, out.Delta, delta)
		}
		if w.Gold < 0 {
			t.Fatalf("event %q drove gold negative: %d", out.Message, w.Gold)
		}
		if w.Gold != 50+out.Applied {
			t.Fatalf("Applied = %d but gold moved from 50 to %d", out.Applied, w.Gold)
		}
		if out.Delta > 0 && out.Applied != out.Delta {
			t.Fatalf("positive event applied %d, want %d", out.Applied, out.Delta)
		}
	}
	if fired == 0 || skipped == 0 {
		t.Fatalf("want both outcomes over 500 rolls, got fired=%d skipped=%d", fired, skipped)
	}
}

func TestRollEventClampsAtZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		w := WorldState{Gold: 10}
		out := RollEvent(&w, rng)
		if out == nil || out.Delta >= 0 {
			continue
		}
		if w.Gold != 0 {
			t.Fatalf("gold = %d after %d-gold event on balance 10, want 0", w.Gold, out.Delta)
		}
		if out.Applied != -10 {
			t.Fatalf("Applied = %d, want -10", out.Applied)
		}
		return
	}
	t.Fatal("no negative event fired in 500 rolls")
}

func TestCycleWeather(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	allowed := map[Weather]bool{}
	for _, wc := range WeatherCycle {
		allowed[wc] = true
	}

	w := WorldState{Weather: WeatherNight}
	for i := 0; i < 50; i++ {
		got := CycleWeather(&w, rng)
		if !allowed[got] {
			t.Fatalf("CycleWeather produced %q, not in cycle pool", got)
		}
		if w.Weather != got {
			t.Fatalf("world weather %q differs from returned %q", w.Weather, got)
		}
	}
}
