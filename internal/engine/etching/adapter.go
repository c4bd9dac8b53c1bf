// Package etching implements the rune rules engine on top of the built-in
// rules tables and an optional catalog oracle.
package etching

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rune-api/internal/clients/catalog"
	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
)

// Config holds dependencies for the etching engine adapter
type Config struct {
	// CatalogClient is the rune catalog oracle. Required; pass
	// catalog.NewUnavailable() to run on the built-in tables alone.
	CatalogClient catalog.Client
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CatalogClient == nil {
		return errors.InvalidArgument("catalog client is required")
	}
	return nil
}

// Adapter implements engine.Engine. Catalog answers win over the built-in
// tables; catalog unavailability degrades to the tables rather than failing.
type Adapter struct {
	catalog catalog.Client
}

// New creates an etching engine adapter with the provided configuration
func New(cfg *Config) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Adapter{
		catalog: cfg.CatalogClient,
	}, nil
}

// PropertyRuneSlots returns the target's property-rune slot capacity
func (a *Adapter) PropertyRuneSlots(ctx context.Context, item *pf2e.Item) int {
	if item == nil {
		return 0
	}

	slots, err := a.catalog.PropertyRuneSlots(ctx, item)
	if err == nil {
		return slots
	}
	if !errors.IsCatalogUnavailable(err) {
		slog.Warn("catalog slot lookup failed, using potency fallback",
			"item_id", item.ID,
			"error", err.Error(),
		)
	}

	if item.Runes.Potency < 0 {
		return 0
	}
	return item.Runes.Potency
}

// PrunePropertyRunes canonicalizes a property-rune list before persistence
func (a *Adapter) PrunePropertyRunes(ctx context.Context, target *pf2e.Item, runes []string) []string {
	section := catalog.SectionWeapon
	if target != nil {
		if t, ok := target.RuneTargetType(); ok && t != pf2e.ItemTypeWeapon {
			section = catalog.SectionArmor
		}
	}

	pruned, err := a.catalog.PrunePropertyRunes(ctx, runes, section)
	if err == nil {
		return pruned
	}

	// Fallback keeps order and drops duplicates only. Membership is not
	// enforced here; third-party runes must survive a missing catalog.
	seen := make(map[string]struct{}, len(runes))
	out := make([]string, 0, len(runes))
	for _, r := range runes {
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// CraftingDC returns the crafting-check DC for an item level. Levels outside
// the table clamp to the nearest edge.
func (a *Adapter) CraftingDC(level int) int {
	if level < 0 {
		return craftingDCByLevel[0]
	}
	if level >= len(craftingDCByLevel) {
		return craftingDCByLevel[len(craftingDCByLevel)-1]
	}
	return craftingDCByLevel[level]
}

// ResolvePropertyKey resolves the canonical property-rune identifier for a
// rune on the given target category
func (a *Adapter) ResolvePropertyKey(
	ctx context.Context,
	input *engine.ResolvePropertyKeyInput,
) (*engine.ResolvePropertyKeyOutput, error) {
	if input == nil || input.Rune == nil {
		return nil, errors.InvalidArgument("rune descriptor is required")
	}
	if input.Rune.Kind != engine.RuneKindProperty {
		return nil, errors.InvalidArgumentf("rune %s is not a property rune", input.Rune.Slug)
	}

	slug := input.Rune.Slug
	if slug == "" {
		return nil, errors.UnresolvedRune("rune has no resolvable identifier")
	}

	data, err := a.catalogPropertyRune(ctx, slug, input.TargetType)
	if err == nil {
		return &engine.ResolvePropertyKeyOutput{Key: data.Slug}, nil
	}
	if errors.IsNotFound(err) {
		return nil, errors.UnresolvedRunef(
			"property rune %q is not known for %s targets", slug, input.TargetType)
	}

	// Catalog missing or failing: the fallback slug sets decide.
	if propertySlugKnown(slug, input.TargetType) {
		return &engine.ResolvePropertyKeyOutput{Key: slug}, nil
	}
	return nil, errors.UnresolvedRunef(
		"property rune %q is not known for %s targets", slug, input.TargetType)
}

// RuneValue resolves the level and price of a single transferable rune
func (a *Adapter) RuneValue(
	ctx context.Context,
	input *engine.RuneValueInput,
) (*engine.RuneValueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch input.Kind {
	case engine.RuneKindProperty:
		return a.propertyRuneValue(ctx, input)
	case engine.RuneKindFundamental:
		return fundamentalRuneValue(input)
	default:
		return nil, errors.InvalidArgumentf("unknown rune kind %q", input.Kind)
	}
}

func (a *Adapter) propertyRuneValue(
	ctx context.Context,
	input *engine.RuneValueInput,
) (*engine.RuneValueOutput, error) {
	if input.Slug == "" {
		return nil, errors.InvalidArgument("property rune slug is required")
	}

	if data, err := a.catalogPropertyRune(ctx, input.Slug, input.TargetType); err == nil {
		return &engine.RuneValueOutput{
			Level:   data.Level,
			PriceGP: data.PriceGP,
			Name:    data.Name,
			Traits:  lowerAll(data.Traits),
		}, nil
	}

	table := weaponPropertyValues
	if input.TargetType != pf2e.ItemTypeWeapon {
		table = armorPropertyValues
	}
	if v, ok := table[input.Slug]; ok {
		return &engine.RuneValueOutput{Level: v.level, PriceGP: v.priceGP}, nil
	}

	// Unknown runes transfer for free rather than blocking the move.
	return &engine.RuneValueOutput{}, nil
}

func fundamentalRuneValue(input *engine.RuneValueInput) (*engine.RuneValueOutput, error) {
	if input.Rank <= 0 {
		return nil, errors.InvalidArgumentf("fundamental rank must be positive, got %d", input.Rank)
	}

	var table map[int]runeValue
	switch input.Fundamental {
	case engine.FundamentalPotency:
		table = weaponPotencyValues
		if input.TargetType == pf2e.ItemTypeArmor {
			table = armorPotencyValues
		}
	case engine.FundamentalStriking:
		table = strikingValues
	case engine.FundamentalResilient:
		table = resilientValues
	case engine.FundamentalReinforcing:
		table = reinforcingValues
	default:
		return nil, errors.InvalidArgumentf("unknown fundamental field %q", input.Fundamental)
	}

	v, ok := table[input.Rank]
	if !ok {
		return nil, errors.InvalidArgumentf(
			"no %s rune at rank %d", input.Fundamental, input.Rank)
	}
	return &engine.RuneValueOutput{Level: v.level, PriceGP: v.priceGP}, nil
}

// catalogPropertyRune looks a slug up in the catalog section matching the
// target category
func (a *Adapter) catalogPropertyRune(
	ctx context.Context,
	slug string,
	targetType pf2e.ItemType,
) (*catalog.PropertyRuneData, error) {
	if targetType == pf2e.ItemTypeWeapon {
		return a.catalog.WeaponPropertyRune(ctx, slug)
	}
	return a.catalog.ArmorPropertyRune(ctx, slug)
}

// propertySlugKnown checks the built-in fallback slug sets
func propertySlugKnown(slug string, targetType pf2e.ItemType) bool {
	if targetType == pf2e.ItemTypeWeapon {
		_, ok := weaponPropertySlugs[slug]
		return ok
	}
	_, ok := armorPropertySlugs[slug]
	return ok
}
