package zoo

import "math"

// IncomeTick computes one passive-income tick from the current world state
// and applies it to gold. The formula is evaluated fresh every call; nothing
// is accumulated between ticks. Returns the gold actually added (0 when the
// raw result floors to zero or below; the tick never takes gold away).
func IncomeTick(w *WorldState) int {
	if len(w.Animals) == 0 {
		return 0
	}

	animalFactor := 0.0
	for _, a := range w.Animals {
		happiness := a.Happiness
		if happiness == 0 {
			happiness = DefaultTickHappiness
		}
		animalFactor += float64(happiness) / HappinessIncomeDivisor
	}

	facilityFactor := float64(FacilityIncomePerUnit * countByCategory(w.Structures, CategoryFacility))

	raw := (animalFactor + facilityFactor + float64(w.Level*LevelIncomePerUnit)) *
		(w.TicketPrice / TicketPriceDivisor) *
		DemandMultiplier(w.TicketPrice) *
		WeatherMultiplier(w.Weather)

	income := int(math.Floor(raw))
	if income <= 0 {
		return 0
	}
	w.Gold += income
	return income
}

// DemandMultiplier models ticket-price sensitivity. The two branches are
// deliberately independent ifs, not an if/else chain: prices between 10 and
// 20 inclusive keep the base 1.0.
func DemandMultiplier(ticketPrice float64) float64 {
	m := 1.0
	if ticketPrice > HighPriceThreshold {
		m = math.Max(HighPriceMultiplierFloor, 1.0-((ticketPrice-HighPriceThreshold)*HighPricePenaltyPerUnit))
	}
	if ticketPrice < LowPriceThreshold {
		m = LowPriceMultiplier
	}
	return m
}

func WeatherMultiplier(w Weather) float64 {
	switch w {
	case WeatherRainy:
		return RainyIncomeMultiplier
	case WeatherSunny:
		return SunnyIncomeMultiplier
	default:
		return 1.0
	}
}

func countByCategory(structures []PlacedStructure, cat StructureCategory) int {
	n := 0
	for _, s := range structures {
		if s.Template.Category == cat {
			n++
		}
	}
	return n
}
