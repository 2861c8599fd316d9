package ports

import (
	"context"

	"zooverse/internal/domain/zoo"
)

// Notifier is the user-facing notification sink. The core never renders;
// it only emits (message, severity) pairs.
type Notifier interface {
	Notify(message string, severity zoo.Severity)
}

// Confirmer gates irreversible actions (demolish, release, save reset).
// A false answer means the caller should do nothing, not fail.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// NamePrompter asks for a free-text name (used when a bred baby is named).
// ok=false means the prompt was dismissed.
type NamePrompter interface {
	PromptName(ctx context.Context, prompt string) (name string, ok bool)
}

// CatalogProvider serves the immutable build/market/region catalogs.
type CatalogProvider interface {
	Buildings(ctx context.Context) []zoo.StructureTemplate
	Market(ctx context.Context) []zoo.MarketListing
	Regions(ctx context.Context) []zoo.ExplorationRegion
	SpecialEvents(ctx context.Context) []zoo.SpecialEvent
}

// TickRecorder collects simulation KPIs.
type TickRecorder interface {
	RecordIncome(gold int)
	RecordEvent(message string)
	RecordAutosave(ok bool)
	RecordAction(name string, ok bool)
}
