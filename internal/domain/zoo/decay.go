package zoo

// DecayTick degrades every animal's vitals by one step. A zero stat is
// treated as unset and decays from the full default, mirroring the save
// format's loose numeric handling; results are floored at zero.
func DecayTick(w *WorldState) {
	for i := range w.Animals {
		a := &w.Animals[i]
		health := a.Health
		if health == 0 {
			health = DefaultStatValue
		}
		happiness := a.Happiness
		if happiness == 0 {
			happiness = DefaultStatValue
		}
		a.Health = clampStat(health - HealthDecayPerTick)
		a.Happiness = clampStat(happiness - HappinessDecayPerTick)
	}
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > DefaultStatValue {
		return DefaultStatValue
	}
	return v
}
