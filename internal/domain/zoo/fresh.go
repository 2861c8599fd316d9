package zoo

// FreshWorld is the documented new-game state: starting balances, the
// starter roster, default tasks and an empty map.
func FreshWorld() WorldState {
	return WorldState{
		Gold:         DefaultGold,
		Diamonds:     DefaultDiamonds,
		XP:           DefaultXP,
		Level:        DefaultLevel,
		ZooName:      DefaultZooName,
		TicketPrice:  DefaultTicketPrice,
		Animals:      StarterRoster(),
		Structures:   []PlacedStructure{},
		Tasks:        DefaultTasks(),
		MapLevel:     DefaultMapLevel,
		Weather:      WeatherSunny,
		SoundEnabled: true,
		MusicEnabled: true,
	}
}
