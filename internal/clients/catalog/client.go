// Package catalog is the client for the authoritative rune metadata tables.
//
// The catalog is an optional oracle: when the host system publishes its rune
// data the engine prefers it over every built-in table, and when it is
// absent every method fails with CATALOG_UNAVAILABLE and the engine degrades
// to its fallback tables. Callers never re-check multiple global paths; this
// interface is the single injection point.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/rune-api/internal/clients/catalog Client

import (
	"context"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// Section selects a property-rune table
type Section string

// Catalog sections
const (
	SectionWeapon Section = "weapon"
	SectionArmor  Section = "armor"
)

// PropertyRuneData is a catalog entry for a property rune
type PropertyRuneData struct {
	Name    string   `json:"name"`
	Slug    string   `json:"slug"`
	Level   int      `json:"level"`
	PriceGP int      `json:"price"`
	Traits  []string `json:"traits,omitempty"`
	// Usage is the placement rule string, e.g. "etched-onto-a-weapon"
	Usage string `json:"usage,omitempty"`
}

// FundamentalRuneData is a catalog entry for a fundamental rune rank
type FundamentalRuneData struct {
	Name    string `json:"name"`
	Level   int    `json:"level"`
	PriceGP int    `json:"price"`
}

// Client defines the interface for rune catalog lookups
type Client interface {
	// WeaponPropertyRune fetches the weapon property rune entry for a slug
	// Returns errors.NotFound when the catalog has no such rune
	// Returns errors.CatalogUnavailable when the catalog is absent
	WeaponPropertyRune(ctx context.Context, slug string) (*PropertyRuneData, error)

	// ArmorPropertyRune fetches the armor property rune entry for a slug
	// Returns errors.NotFound when the catalog has no such rune
	// Returns errors.CatalogUnavailable when the catalog is absent
	ArmorPropertyRune(ctx context.Context, slug string) (*PropertyRuneData, error)

	// PrunePropertyRunes canonicalizes and deduplicates a property-rune list
	// against a catalog section, preserving order. The engine must call this
	// before persisting a property list whenever the catalog is available.
	PrunePropertyRunes(ctx context.Context, candidates []string, section Section) ([]string, error)

	// PropertyRuneSlots returns the host-computed slot capacity for an item
	// Returns errors.CatalogUnavailable when the oracle is absent; callers
	// fall back to max(0, potency)
	PropertyRuneSlots(ctx context.Context, item *pf2e.Item) (int, error)

	// Ping reports whether the catalog is reachable
	Ping(ctx context.Context) error
}
