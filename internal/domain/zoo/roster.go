package zoo

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
)

var ErrNoEligiblePartner = errors.New("no opposite-gender same-species partner")

type CareAction string

const (
	CareFeed CareAction = "feed"
	CarePlay CareAction = "play"
	CareHeal CareAction = "heal"
)

// ApplyCare boosts the animal's vitals, capped at 100. Unknown actions are
// a no-op and report false.
func ApplyCare(a *Animal, action CareAction) bool {
	switch action {
	case CareFeed:
		a.Health = clampStat(a.Health + FeedHealthGain)
		a.Happiness = clampStat(a.Happiness + FeedHappinessGain)
	case CarePlay:
		a.Happiness = clampStat(a.Happiness + PlayHappinessGain)
	case CareHeal:
		a.Health = clampStat(a.Health + HealHealthGain)
	default:
		return false
	}
	return true
}

// NewAnimalFromListing mints a fresh animal from a market listing with a
// random pool name and random gender.
func NewAnimalFromListing(l MarketListing, rng *rand.Rand) Animal {
	return Animal{
		ID:          "ani-" + uuid.NewString(),
		Name:        AnimalNamePool[rng.Intn(len(AnimalNamePool))],
		Species:     l.Species,
		HabitatType: l.HabitatType,
		Image:       l.Image,
		Health:      DefaultStatValue,
		Happiness:   DefaultStatValue,
		Gender:      randomGender(rng),
		Rarity:      l.Rarity,
	}
}

func randomGender(rng *rand.Rand) Gender {
	if rng.Float64() > 0.5 {
		return GenderMale
	}
	return GenderFemale
}

// FindBreedingPartner returns a same-species, opposite-gender animal other
// than the parent, or ErrNoEligiblePartner.
func FindBreedingPartner(roster []Animal, parent *Animal) (*Animal, error) {
	for i := range roster {
		a := &roster[i]
		if a.ID != parent.ID && a.Species == parent.Species && a.Gender != parent.Gender {
			return a, nil
		}
	}
	return nil, ErrNoEligiblePartner
}

// NewBaby copies the parent's species traits at full vitals and marks the
// provenance flag.
func NewBaby(parent *Animal, name string) Animal {
	baby := *parent
	baby.ID = "baby-" + uuid.NewString()
	baby.Name = name
	baby.Health = DefaultStatValue
	baby.Happiness = DefaultStatValue
	baby.IsBornInZoo = true
	return baby
}

// Release removes the animal and grants the rarity-scaled reward. Gold is
// credited immediately; the returned reward carries the xp for the caller's
// progression check.
func Release(w *WorldState, animalID string) (ReleaseReward, bool) {
	for i := range w.Animals {
		if w.Animals[i].ID != animalID {
			continue
		}
		reward, ok := ReleaseRewards[w.Animals[i].Rarity]
		if !ok {
			reward = ReleaseRewards[RarityCommon]
		}
		w.Animals = append(w.Animals[:i], w.Animals[i+1:]...)
		w.Gold += reward.Gold
		w.XP += reward.XP
		return reward, true
	}
	return ReleaseReward{}, false
}

// ApplyRewards credits a task/event reward list. Returns true when any xp
// was granted so the caller knows to run the progression check.
func ApplyRewards(w *WorldState, rewards []Reward) bool {
	grantedXP := false
	for _, r := range rewards {
		switch r.Kind {
		case RewardGold:
			w.Gold += r.Amount
		case RewardDiamond:
			w.Diamonds += r.Amount
		case RewardXP:
			w.XP += r.Amount
			grantedXP = true
		}
	}
	return grantedXP
}
