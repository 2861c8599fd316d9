package zoo

import (
	"errors"
	"testing"
)

func road() StructureTemplate {
	return StructureTemplate{ID: "road-1", Category: CategoryRoad, Cost: 50, Currency: CurrencyGold, Width: 1, Height: 1}
}

func habitat2x2() StructureTemplate {
	return StructureTemplate{ID: "hab-1", Category: CategoryHabitat, Cost: 1000, Currency: CurrencyGold, Width: 2, Height: 2}
}

func TestSnapToGrid(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{49, 0},
		{50, 50},
		{74, 50},
		{149, 100},
		{-1, -50},
		{-50, -50},
		{-51, -100},
	}
	for _, tc := range cases {
		if got := SnapToGrid(tc.in); got != tc.want {
			t.Fatalf("SnapToGrid(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPlaceRejectsOverlap(t *testing.T) {
	w := WorldState{}
	if _, err := Place(&w, "b1", habitat2x2(), 0, 0); err != nil {
		t.Fatalf("first placement: %v", err)
	}

	// Any cell inside the 2x2 footprint collides, even un-snapped input.
	for _, pos := range [][2]int{{0, 0}, {50, 50}, {99, 99}} {
		if _, err := Place(&w, "b2", road(), pos[0], pos[1]); !errors.Is(err, ErrPlacementCollision) {
			t.Fatalf("Place at (%d,%d): err = %v, want ErrPlacementCollision", pos[0], pos[1], err)
		}
	}
	if len(w.Structures) != 1 {
		t.Fatalf("structures = %d, want 1", len(w.Structures))
	}
}

func TestPlaceAllowsAdjacency(t *testing.T) {
	w := WorldState{}
	if _, err := Place(&w, "b1", habitat2x2(), 0, 0); err != nil {
		t.Fatalf("first placement: %v", err)
	}
	placed, err := Place(&w, "b2", road(), 100, 0)
	if err != nil {
		t.Fatalf("adjacent placement: %v", err)
	}
	if placed.X != 100 || placed.Y != 0 {
		t.Fatalf("placed at (%d,%d), want (100,0)", placed.X, placed.Y)
	}
}

func TestPlaceSnapsCoordinates(t *testing.T) {
	w := WorldState{}
	placed, err := Place(&w, "b1", road(), 74, 149)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placed.X != 50 || placed.Y != 100 {
		t.Fatalf("placed at (%d,%d), want (50,100)", placed.X, placed.Y)
	}
}

func TestDemolishRefund(t *testing.T) {
	if got := DemolishRefund(road()); got != 50 {
		t.Fatalf("road refund = %d, want 50", got)
	}
	if got := DemolishRefund(habitat2x2()); got != 500 {
		t.Fatalf("habitat refund = %d, want 500", got)
	}
	odd := StructureTemplate{Category: CategoryDecoration, Cost: 75}
	if got := DemolishRefund(odd); got != 37 {
		t.Fatalf("decoration refund = %d, want 37", got)
	}
}

func TestDemolishCreditsGoldAndRemoves(t *testing.T) {
	w := WorldState{Gold: 0}
	if _, err := Place(&w, "b1", habitat2x2(), 0, 0); err != nil {
		t.Fatalf("Place: %v", err)
	}

	refund, ok := Demolish(&w, "b1")
	if !ok {
		t.Fatal("Demolish reported missing structure")
	}
	if refund != 500 || w.Gold != 500 {
		t.Fatalf("refund = %d, gold = %d, want 500 both", refund, w.Gold)
	}
	if len(w.Structures) != 0 {
		t.Fatalf("structures = %d, want 0", len(w.Structures))
	}

	if _, ok := Demolish(&w, "b1"); ok {
		t.Fatal("second demolish of same instance succeeded")
	}
}

func TestChargeAndCanAfford(t *testing.T) {
	w := WorldState{Gold: 100, Diamonds: 5}

	if CanAfford(&w, 101, CurrencyGold) {
		t.Fatal("CanAfford(101 gold) on 100 gold")
	}
	if err := Charge(&w, 101, CurrencyGold); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Charge err = %v, want ErrInsufficientFunds", err)
	}
	if w.Gold != 100 || w.Diamonds != 5 {
		t.Fatalf("failed charge mutated wallet: gold %d diamonds %d", w.Gold, w.Diamonds)
	}

	if err := Charge(&w, 100, CurrencyGold); err != nil {
		t.Fatalf("Charge gold: %v", err)
	}
	if err := Charge(&w, 5, CurrencyDiamond); err != nil {
		t.Fatalf("Charge diamonds: %v", err)
	}
	if w.Gold != 0 || w.Diamonds != 0 {
		t.Fatalf("wallet = (%d, %d), want (0, 0)", w.Gold, w.Diamonds)
	}
}
