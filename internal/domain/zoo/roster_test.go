package zoo

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestApplyCare(t *testing.T) {
	cases := []struct {
		action                CareAction
		health, happy         int
		wantHealth, wantHappy int
	}{
		{CareFeed, 50, 50, 60, 55},
		{CarePlay, 50, 50, 50, 65},
		{CareHeal, 50, 50, 70, 50},
		{CareFeed, 95, 98, 100, 100},
		{CareHeal, 100, 100, 100, 100},
	}
	for _, tc := range cases {
		a := Animal{Health: tc.health, Happiness: tc.happy}
		if !ApplyCare(&a, tc.action) {
			t.Fatalf("ApplyCare(%s) rejected", tc.action)
		}
		if a.Health != tc.wantHealth || a.Happiness != tc.wantHappy {
			t.Fatalf("%s on (%d,%d) = (%d,%d), want (%d,%d)",
				tc.action, tc.health, tc.happy, a.Health, a.Happiness, tc.wantHealth, tc.wantHappy)
		}
	}

	a := Animal{Health: 50, Happiness: 50}
	if ApplyCare(&a, CareAction("groom")) {
		t.Fatal("unknown action accepted")
	}
	if a.Health != 50 || a.Happiness != 50 {
		t.Fatal("unknown action mutated animal")
	}
}

func TestNewAnimalFromListing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := MarketListing{Species: "Aslan", HabitatType: HabitatSavanna, Rarity: RarityEpic, Image: "img"}

	a := NewAnimalFromListing(l, rng)
	if !strings.HasPrefix(a.ID, "ani-") {
		t.Fatalf("ID = %q, want ani- prefix", a.ID)
	}
	if a.Species != "Aslan" || a.Rarity != RarityEpic || a.HabitatType != HabitatSavanna {
		t.Fatalf("listing traits not carried: %+v", a)
	}
	if a.Health != 100 || a.Happiness != 100 {
		t.Fatalf("vitals = (%d,%d), want (100,100)", a.Health, a.Happiness)
	}
	if a.Gender != GenderMale && a.Gender != GenderFemale {
		t.Fatalf("gender = %q", a.Gender)
	}
	if a.Name == "" {
		t.Fatal("name not drawn from pool")
	}
}

func TestFindBreedingPartner(t *testing.T) {
	parent := Animal{ID: "p", Species: "Zebra", Gender: GenderFemale}
	roster := []Animal{
		parent,
		{ID: "x1", Species: "Aslan", Gender: GenderMale},
		{ID: "x2", Species: "Zebra", Gender: GenderFemale},
		{ID: "x3", Species: "Zebra", Gender: GenderMale},
	}

	partner, err := FindBreedingPartner(roster, &parent)
	if err != nil {
		t.Fatalf("FindBreedingPartner: %v", err)
	}
	if partner.ID != "x3" {
		t.Fatalf("partner = %s, want x3", partner.ID)
	}

	_, err = FindBreedingPartner(roster[:3], &parent)
	if !errors.Is(err, ErrNoEligiblePartner) {
		t.Fatalf("err = %v, want ErrNoEligiblePartner", err)
	}
}

func TestNewBaby(t *testing.T) {
	parent := Animal{ID: "p", Species: "Zebra", HabitatType: HabitatSavanna, Gender: GenderFemale, Rarity: RarityRare, Health: 10, Happiness: 20}
	baby := NewBaby(&parent, "Minik")

	if !strings.HasPrefix(baby.ID, "baby-") {
		t.Fatalf("ID = %q, want baby- prefix", baby.ID)
	}
	if baby.Name != "Minik" || baby.Species != "Zebra" || baby.Rarity != RarityRare {
		t.Fatalf("baby traits wrong: %+v", baby)
	}
	if baby.Health != 100 || baby.Happiness != 100 || !baby.IsBornInZoo {
		t.Fatalf("baby vitals/provenance wrong: %+v", baby)
	}
}

func TestRelease(t *testing.T) {
	cases := []struct {
		rarity   Rarity
		wantGold int
		wantXP   int
	}{
		{RarityCommon, 100, 50},
		{RarityRare, 250, 100},
		{RarityEpic, 500, 250},
		{RarityLegendary, 1000, 500},
	}
	for _, tc := range cases {
		w := WorldState{Animals: []Animal{{ID: "a1", Rarity: tc.rarity}}}
		reward, ok := Release(&w, "a1")
		if !ok {
			t.Fatalf("Release(%s) failed", tc.rarity)
		}
		if reward.Gold != tc.wantGold || reward.XP != tc.wantXP {
			t.Fatalf("%s reward = %+v, want (%d, %d)", tc.rarity, reward, tc.wantGold, tc.wantXP)
		}
		if w.Gold != tc.wantGold || w.XP != tc.wantXP {
			t.Fatalf("%s world = (gold %d, xp %d), want (%d, %d)", tc.rarity, w.Gold, w.XP, tc.wantGold, tc.wantXP)
		}
		if len(w.Animals) != 0 {
			t.Fatalf("animal not removed on release")
		}
	}

	w := WorldState{Animals: []Animal{{ID: "a1"}}}
	if _, ok := Release(&w, "missing"); ok {
		t.Fatal("Release of unknown id succeeded")
	}
}

func TestApplyRewards(t *testing.T) {
	w := WorldState{}
	grantedXP := ApplyRewards(&w, []Reward{
		{Kind: RewardGold, Amount: 200},
		{Kind: RewardDiamond, Amount: 3},
	})
	if grantedXP {
		t.Fatal("grantedXP true without xp reward")
	}
	if w.Gold != 200 || w.Diamonds != 3 {
		t.Fatalf("world = (%d, %d), want (200, 3)", w.Gold, w.Diamonds)
	}

	if !ApplyRewards(&w, []Reward{{Kind: RewardXP, Amount: 120}}) {
		t.Fatal("grantedXP false with xp reward")
	}
	if w.XP != 120 {
		t.Fatalf("xp = %d, want 120", w.XP)
	}
}
