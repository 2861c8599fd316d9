package zoo

import "math/rand"

type EventOutcome struct {
	Message  string
	Delta    int
	Applied  int
	Severity Severity
}

// RollEvent fires a random event with probability 1-RandomEventThreshold.
// A positive delta is added to gold unconditionally; a negative delta is
// applied but the balance is clamped at zero. Returns nil when no event
// fires, in which case the world is untouched.
func RollEvent(w *WorldState, rng *rand.Rand) *EventOutcome {
	if rng.Float64() <= RandomEventThreshold {
		return nil
	}
	evt := RandomEvents[rng.Intn(len(RandomEvents))]

	before := w.Gold
	if evt.Delta > 0 {
		w.Gold += evt.Delta
	} else {
		w.Gold += evt.Delta
		if w.Gold < 0 {
			w.Gold = 0
		}
	}

	return &EventOutcome{
		Message:  evt.Message,
		Delta:    evt.Delta,
		Applied:  w.Gold - before,
		Severity: evt.Severity,
	}
}

// CycleWeather draws the next ambient weather from the weighted pool.
func CycleWeather(w *WorldState, rng *rand.Rand) Weather {
	w.Weather = WeatherCycle[rng.Intn(len(WeatherCycle))]
	return w.Weather
}
