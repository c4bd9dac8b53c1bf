// Package pf2e implements the Pathfinder 2e document entities
package pf2e

import "strings"

// ItemType represents the broad category of an inventory item
type ItemType string

// Item types the rune engine cares about. Everything else (consumables,
// treasure, the runes themselves) is ItemTypeEquipment.
const (
	ItemTypeWeapon    ItemType = "weapon"
	ItemTypeArmor     ItemType = "armor"
	ItemTypeShield    ItemType = "shield"
	ItemTypeEquipment ItemType = "equipment"
)

// String returns the string representation of the item type
func (t ItemType) String() string {
	return string(t)
}

// IsValid checks if the item type is valid
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeArmor, ItemTypeShield, ItemTypeEquipment:
		return true
	default:
		return false
	}
}

// ItemTypeFromString converts a string to an ItemType
// Returns the type and true if valid, empty type and false if invalid
func ItemTypeFromString(s string) (ItemType, bool) {
	t := ItemType(s)
	if t.IsValid() {
		return t, true
	}
	return "", false
}

// Armor weight categories, plus the legacy "shield" category some documents
// use on armor-typed items.
const (
	ArmorCategoryLight  = "light"
	ArmorCategoryMedium = "medium"
	ArmorCategoryHeavy  = "heavy"
	ArmorCategoryShield = "shield"
)

// Damage types relevant to rune placement rules
const (
	DamageBludgeoning = "bludgeoning"
	DamagePiercing    = "piercing"
	DamageSlashing    = "slashing"
)

// RuneState is the persisted rune configuration of a weapon, armor, or
// shield. Fundamental values are stored as small integer ranks; the
// string-keyed host representation ("greaterStriking") is handled by the
// serialization helpers in runes.go.
type RuneState struct {
	Potency     int      `json:"potency,omitempty"`
	Striking    int      `json:"striking,omitempty"`
	Resilient   int      `json:"resilient,omitempty"`
	Reinforcing int      `json:"reinforcing,omitempty"`
	Property    []string `json:"property,omitempty"`
}

// Clone returns a deep copy of the rune state
func (r RuneState) Clone() RuneState {
	out := r
	if r.Property != nil {
		out.Property = make([]string, len(r.Property))
		copy(out.Property, r.Property)
	}
	return out
}

// HasProperty reports whether the given property rune slug is present
func (r RuneState) HasProperty(slug string) bool {
	for _, p := range r.Property {
		if p == slug {
			return true
		}
	}
	return false
}

// Item is a generic inventory entity. It is a data-only struct; all rune
// rules live in the engine.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug,omitempty"`
	Type     ItemType `json:"type"`
	Level    int      `json:"level,omitempty"`
	Traits   []string `json:"traits,omitempty"`
	Usage    string   `json:"usage,omitempty"`
	Material string   `json:"material,omitempty"`
	// Category holds the armor weight category (light/medium/heavy) for
	// armor, or "shield" on legacy armor-typed shields.
	Category   string    `json:"category,omitempty"`
	DamageType string    `json:"damageType,omitempty"`
	Range      int       `json:"range,omitempty"`
	Thrown     bool      `json:"thrown,omitempty"`
	BaseItem   string    `json:"baseItem,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	PriceGP    int       `json:"priceGp,omitempty"`
	Runes      RuneState `json:"runes"`
}

// RuneTargetType resolves the rune target category of the item: weapon,
// armor, or shield. Armor-typed items with the "shield" category count as
// shields, matching how older documents encode them.
func (i *Item) RuneTargetType() (ItemType, bool) {
	switch i.Type {
	case ItemTypeWeapon:
		return ItemTypeWeapon, true
	case ItemTypeShield:
		return ItemTypeShield, true
	case ItemTypeArmor:
		if i.Category == ArmorCategoryShield {
			return ItemTypeShield, true
		}
		return ItemTypeArmor, true
	default:
		return "", false
	}
}

// IsEquipmentTarget reports whether the item can hold runes at all
func (i *Item) IsEquipmentTarget() bool {
	_, ok := i.RuneTargetType()
	return ok
}

// HasTrait reports whether the item carries the given lowercase trait
func (i *Item) HasTrait(trait string) bool {
	for _, t := range i.Traits {
		if strings.EqualFold(t, trait) {
			return true
		}
	}
	return false
}

// IsMelee reports whether a weapon counts as melee: not flagged thrown and
// no listed range.
func (i *Item) IsMelee() bool {
	return !i.Thrown && i.Range == 0 && !i.HasTrait("thrown")
}

// metalMaterials are the precious and base materials that count as metal for
// placement rules like "etched onto a metal weapon".
var metalMaterials = map[string]struct{}{
	"iron":            {},
	"steel":           {},
	"cold-iron":       {},
	"silver":          {},
	"gold":            {},
	"adamantine":      {},
	"mithral":         {},
	"orichalcum":      {},
	"noqual":          {},
	"inubrix":         {},
	"djezet":          {},
	"siccatite":       {},
	"sovereign-steel": {},
}

// IsMetal reports whether the item is made of metal, derived from the
// explicit material field or a "metal" trait.
func (i *Item) IsMetal() bool {
	if i.HasTrait("metal") {
		return true
	}
	_, ok := metalMaterials[strings.ToLower(i.Material)]
	return ok
}

// IsRunestone reports whether the item is a runestone container able to
// absorb an evicted property rune.
func (i *Item) IsRunestone() bool {
	if i.Type != ItemTypeEquipment {
		return false
	}
	if i.Slug == "runestone" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Name), "runestone")
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := *i
	if i.Traits != nil {
		out.Traits = make([]string, len(i.Traits))
		copy(out.Traits, i.Traits)
	}
	out.Runes = i.Runes.Clone()
	return &out
}
