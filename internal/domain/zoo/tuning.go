package zoo

import "time"

const (
	DefaultGold        = 5000
	DefaultDiamonds    = 50
	DefaultXP          = 0
	DefaultLevel       = 1
	DefaultTicketPrice = 15
	DefaultMapLevel    = 1
	DefaultZooName     = "Mutlu Hayvanat Bahçesi"

	DefaultStatValue = 100

	// One grid cell in world units. Placement coordinates snap down to a
	// multiple of this before collision testing.
	CellSize = 50

	XPPerLevel = 1000

	LevelUpDiamondReward = 10

	HealthDecayPerTick    = 1
	HappinessDecayPerTick = 2

	// Income formula coefficients.
	HappinessIncomeDivisor   = 10
	DefaultTickHappiness     = 50
	FacilityIncomePerUnit    = 10
	LevelIncomePerUnit       = 5
	TicketPriceDivisor       = 5
	HighPriceThreshold       = 20
	LowPriceThreshold        = 10
	HighPricePenaltyPerUnit  = 0.05
	HighPriceMultiplierFloor = 0.2
	LowPriceMultiplier       = 1.2
	RainyIncomeMultiplier    = 0.7
	SunnyIncomeMultiplier    = 1.1

	// Random events fire when a uniform draw exceeds this threshold.
	RandomEventThreshold = 0.7

	BuildXPReward = 50

	MapExpandCostPerLevel = 2000

	FeedHealthGain    = 10
	FeedHappinessGain = 5
	PlayHappinessGain = 15
	HealHealthGain    = 20

	ExploreFindChance     = 0.4
	ExploreTreasureChance = 0.5
	ExploreMapXPReward    = 100
	ExploreTrailXPReward  = 50

	DailyBonusGold     = 500
	DailyBonusDiamonds = 5

	IncomeTickInterval   = 5 * time.Second
	DecayTickInterval    = 20 * time.Second
	EventTickInterval    = 60 * time.Second
	WeatherTickInterval  = 45 * time.Second
	AutosaveTickInterval = 30 * time.Second
)

// ReleaseRewards maps rarity to the gold/xp granted when an animal is
// released back to the wild.
var ReleaseRewards = map[Rarity]ReleaseReward{
	RarityCommon:    {Gold: 100, XP: 50},
	RarityRare:      {Gold: 250, XP: 100},
	RarityEpic:      {Gold: 500, XP: 250},
	RarityLegendary: {Gold: 1000, XP: 500},
}

type ReleaseReward struct {
	Gold int
	XP   int
}

func MapExpandCost(mapLevel int) int {
	return mapLevel * MapExpandCostPerLevel
}

func LevelThreshold(level int) int {
	return level * XPPerLevel
}
