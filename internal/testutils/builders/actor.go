// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// ActorBuilder provides a fluent interface for building test Actor instances
type ActorBuilder struct {
	actor *pf2e.Actor
}

// NewActorBuilder creates a new builder with minimal character defaults
func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		actor: &pf2e.Actor{
			ID:        "actor-test-123",
			Name:      "Valeros",
			Type:      pf2e.ActorTypeCharacter,
			Ownership: map[string]int{},
		},
	}
}

// NewPartyBuilder creates a new builder preset to a party stash actor
func NewPartyBuilder() *ActorBuilder {
	return &ActorBuilder{
		actor: &pf2e.Actor{
			ID:   "party-test-123",
			Name: "Party Stash",
			Type: pf2e.ActorTypeParty,
		},
	}
}

// WithID sets the actor ID
func (b *ActorBuilder) WithID(id string) *ActorBuilder {
	b.actor.ID = id
	return b
}

// WithName sets the actor name
func (b *ActorBuilder) WithName(name string) *ActorBuilder {
	b.actor.Name = name
	return b
}

// WithItems adds items to the actor's inventory
func (b *ActorBuilder) WithItems(items ...*pf2e.Item) *ActorBuilder {
	b.actor.Items = append(b.actor.Items, items...)
	return b
}

// WithCurrency sets the actor's coin purse
func (b *ActorBuilder) WithCurrency(gold, silver, copper int) *ActorBuilder {
	b.actor.Currency = pf2e.Currency{Gold: gold, Silver: silver, Copper: copper}
	return b
}

// WithOwner grants full ownership to a user
func (b *ActorBuilder) WithOwner(userID string) *ActorBuilder {
	if b.actor.Ownership == nil {
		b.actor.Ownership = map[string]int{}
	}
	b.actor.Ownership[userID] = pf2e.OwnershipOwner
	return b
}

// Build returns the built actor
func (b *ActorBuilder) Build() *pf2e.Actor {
	return b.actor.Clone()
}

// ItemBuilder provides a fluent interface for building test Item instances
type ItemBuilder struct {
	item *pf2e.Item
}

// NewWeaponBuilder creates a builder preset to a plain longsword
func NewWeaponBuilder() *ItemBuilder {
	return &ItemBuilder{
		item: &pf2e.Item{
			ID:         "weapon-test-123",
			Name:       "Longsword",
			Slug:       "longsword",
			Type:       pf2e.ItemTypeWeapon,
			DamageType: pf2e.DamageSlashing,
			Quantity:   1,
		},
	}
}

// NewArmorBuilder creates a builder preset to a breastplate
func NewArmorBuilder() *ItemBuilder {
	return &ItemBuilder{
		item: &pf2e.Item{
			ID:       "armor-test-123",
			Name:     "Breastplate",
			Slug:     "breastplate",
			Type:     pf2e.ItemTypeArmor,
			Category: pf2e.ArmorCategoryMedium,
			Quantity: 1,
		},
	}
}

// NewShieldBuilder creates a builder preset to a steel shield
func NewShieldBuilder() *ItemBuilder {
	return &ItemBuilder{
		item: &pf2e.Item{
			ID:       "shield-test-123",
			Name:     "Steel Shield",
			Slug:     "steel-shield",
			Type:     pf2e.ItemTypeArmor,
			Category: pf2e.ArmorCategoryShield,
			Quantity: 1,
		},
	}
}

// NewRuneItemBuilder creates a builder preset to a rune-type equipment item
func NewRuneItemBuilder(name, slug string) *ItemBuilder {
	return &ItemBuilder{
		item: &pf2e.Item{
			ID:       "rune-" + slug,
			Name:     name,
			Slug:     slug,
			Type:     pf2e.ItemTypeEquipment,
			Usage:    "etched-onto-a-weapon",
			Quantity: 1,
		},
	}
}

// WithID sets the item ID
func (b *ItemBuilder) WithID(id string) *ItemBuilder {
	b.item.ID = id
	return b
}

// WithName sets the display name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

// WithUsage sets the usage string
func (b *ItemBuilder) WithUsage(usage string) *ItemBuilder {
	b.item.Usage = usage
	return b
}

// WithLevel sets the item level
func (b *ItemBuilder) WithLevel(level int) *ItemBuilder {
	b.item.Level = level
	return b
}

// WithPrice sets the item price in gold pieces
func (b *ItemBuilder) WithPrice(gp int) *ItemBuilder {
	b.item.PriceGP = gp
	return b
}

// WithRunes sets the item's rune state
func (b *ItemBuilder) WithRunes(runes pf2e.RuneState) *ItemBuilder {
	b.item.Runes = runes
	return b
}

// WithTraits sets the item traits
func (b *ItemBuilder) WithTraits(traits ...string) *ItemBuilder {
	b.item.Traits = traits
	return b
}

// WithMaterial sets the item material
func (b *ItemBuilder) WithMaterial(material string) *ItemBuilder {
	b.item.Material = material
	return b
}

// Build returns the built item
func (b *ItemBuilder) Build() *pf2e.Item {
	return b.item.Clone()
}
