package staticcatalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestProviderDefaults(t *testing.T) {
	p := Provider{}
	ctx := context.Background()

	if got := len(p.Buildings(ctx)); got == 0 {
		t.Fatal("no default buildings")
	}
	if got := len(p.Market(ctx)); got == 0 {
		t.Fatal("no default market")
	}
	if got := len(p.Regions(ctx)); got == 0 {
		t.Fatal("no default regions")
	}
	if got := len(p.SpecialEvents(ctx)); got == 0 {
		t.Fatal("no default special events")
	}
}

func TestProviderYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	data := `
- id: custom-road
  name: Test Yolu
  cost: 10
  currency: gold
  icon: edit_road
  category: road
  width: 1
  height: 1
`
	if err := os.WriteFile(filepath.Join(dir, "buildings.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p := Provider{Root: dir}
	buildings := p.Buildings(context.Background())
	if len(buildings) != 1 || buildings[0].ID != "custom-road" || buildings[0].Cost != 10 {
		t.Fatalf("override not applied: %+v", buildings)
	}

	// Catalogs without an override file keep the defaults.
	if got := len(p.Market(context.Background())); got == 0 {
		t.Fatal("market defaults lost with partial override")
	}
}

func TestProviderBadYAMLFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "regions.yaml"), []byte(":\n  - ["), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p := Provider{Root: dir}
	if got := len(p.Regions(context.Background())); got == 0 {
		t.Fatal("bad yaml did not fall back to defaults")
	}
}
