// Package staticcatalog serves the build/market/region catalogs. Each
// catalog can be overridden by a YAML file in the provider root; anything
// absent or unreadable falls back to the built-in defaults, so a bare
// deployment still has a full shop.
package staticcatalog

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"zooverse/internal/domain/zoo"
)

type Provider struct {
	Root string
}

func (p Provider) Buildings(_ context.Context) []zoo.StructureTemplate {
	var out []zoo.StructureTemplate
	if p.loadYAML("buildings.yaml", &out) && len(out) > 0 {
		return out
	}
	return zoo.DefaultBuildings()
}

func (p Provider) Market(_ context.Context) []zoo.MarketListing {
	var out []zoo.MarketListing
	if p.loadYAML("market.yaml", &out) && len(out) > 0 {
		return out
	}
	return zoo.DefaultMarket()
}

func (p Provider) Regions(_ context.Context) []zoo.ExplorationRegion {
	var out []zoo.ExplorationRegion
	if p.loadYAML("regions.yaml", &out) && len(out) > 0 {
		return out
	}
	return zoo.DefaultRegions()
}

func (p Provider) SpecialEvents(_ context.Context) []zoo.SpecialEvent {
	var out []zoo.SpecialEvent
	if p.loadYAML("events.yaml", &out) && len(out) > 0 {
		return out
	}
	return zoo.DefaultSpecialEvents()
}

func (p Provider) loadYAML(name string, out any) bool {
	if p.Root == "" {
		return false
	}
	raw, err := os.ReadFile(filepath.Join(p.Root, name))
	if err != nil {
		return false
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		log.Printf("catalog %s: %v (using defaults)", name, err)
		return false
	}
	return true
}
