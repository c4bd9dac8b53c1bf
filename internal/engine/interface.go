// Package engine defines the rune rules engine interface
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rune-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// Engine provides the rune rules: classification, compatibility, and the
// derived values (slots, DCs, prices, display names) the orchestrators need.
// Implementations are pure rules plus an optional catalog oracle; they never
// mutate documents.
type Engine interface {
	// ClassifyRune determines whether an item is a rune and derives its
	// descriptor. A nil descriptor with a nil error means "not a rune";
	// classification is total and never fails on malformed items.
	ClassifyRune(ctx context.Context, input *ClassifyRuneInput) (*ClassifyRuneOutput, error)

	// EvaluateCompatibility decides whether a rune may legally attach to a
	// target item, with a failure reason when one is cheaply derivable.
	EvaluateCompatibility(
		ctx context.Context,
		input *EvaluateCompatibilityInput,
	) (*EvaluateCompatibilityOutput, error)

	// ResolvePropertyKey resolves the canonical property-rune identifier for
	// a rune on the given target category.
	// Returns errors.UnresolvedRune when no catalog or fallback mapping exists
	ResolvePropertyKey(ctx context.Context, input *ResolvePropertyKeyInput) (*ResolvePropertyKeyOutput, error)

	// RuneValue resolves the level and price of a single transferable rune,
	// preferring the catalog, then the built-in price tables, then
	// (0, 0) meaning "unknown, free".
	RuneValue(ctx context.Context, input *RuneValueInput) (*RuneValueOutput, error)

	// PropertyRuneSlots returns the item's property-rune slot capacity:
	// the catalog oracle when available, else max(0, potency).
	PropertyRuneSlots(ctx context.Context, item *pf2e.Item) int

	// PrunePropertyRunes canonicalizes a property-rune list before it is
	// persisted: the catalog normalizer when available, else order-preserving
	// deduplication.
	PrunePropertyRunes(ctx context.Context, target *pf2e.Item, runes []string) []string

	// Utility methods
	CraftingDC(level int) int
	RunedItemName(item *pf2e.Item, runes pf2e.RuneState) string
}
