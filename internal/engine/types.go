package engine

import (
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// RuneKind is the resolved kind of a rune item
type RuneKind string

// Rune kinds
const (
	// RuneKindProperty is a situational rune, slot-limited per item
	RuneKindProperty RuneKind = "property"
	// RuneKindFundamental is a potency/striking/resilient/reinforcing rune
	RuneKindFundamental RuneKind = "fundamental"
)

// RuneDescriptor is a derived, never stored, view of a rune-type item
type RuneDescriptor struct {
	// Slug is the normalized identifier the tables key on
	Slug string
	// Kind is the resolved rune kind
	Kind RuneKind
	// Traits is the lowercase trait set of the rune item
	Traits []string
	// TargetTypes lists the broad categories this rune may attach to
	TargetTypes []pf2e.ItemType
	// Placement is the parsed usage rule, nil when the item declares none
	Placement *Placement

	// Fundamental fields. A descriptor may carry a potency bonus and a
	// secondary rank at the same time; the fields are independent.
	Potency     int
	Striking    int
	Resilient   int
	Reinforcing int
}

// HasTrait reports whether the descriptor carries the given trait
func (d *RuneDescriptor) HasTrait(trait string) bool {
	for _, t := range d.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// TargetsType reports whether the descriptor may attach to the given
// category
func (d *RuneDescriptor) TargetsType(t pf2e.ItemType) bool {
	for _, tt := range d.TargetTypes {
		if tt == t {
			return true
		}
	}
	return false
}

// IsFundamental reports whether any fundamental field is set
func (d *RuneDescriptor) IsFundamental() bool {
	return d.Potency > 0 || d.Striking > 0 || d.Resilient > 0 || d.Reinforcing > 0
}

// Placement is the parsed form of an "etched-onto-..." usage string: a
// closed set of predicate parameters evaluated against a target item, parsed
// once instead of re-probing the raw string at every call site.
type Placement struct {
	// Raw is the original usage string
	Raw string
	// Target restricts the broad category; empty means any etchable item
	Target pf2e.ItemType
	// ArmorCategories restricts armor weight (light/medium/heavy); empty
	// means any weight
	ArmorCategories []string
	// DamageTypes restricts the weapon's damage type; empty means any
	DamageTypes []string
	// Melee requires a melee weapon (not thrown, zero range)
	Melee bool
	// Thrown requires a thrown weapon
	Thrown bool
	// Metal requires a metal target
	Metal bool
	// WithoutRunes lists property runes that must not already be present
	WithoutRunes []string
}

// Incompatibility reasons, surfaced where they are cheaply derivable
const (
	ReasonNotEtchable    = "target cannot hold runes"
	ReasonWrongCategory  = "rune does not fit this item category"
	ReasonPlacement      = "target does not satisfy the rune's placement rule"
	ReasonOpposedTrait   = "an opposed rune is already present"
	ReasonDamageType     = "damage type does not match"
	ReasonNoFreeSlot     = "no free property rune slot"
	ReasonCatalogRefused = "catalog placement rules refused the rune"
)

// ClassifyRuneInput defines the request for classifying an item
type ClassifyRuneInput struct {
	Item *pf2e.Item
}

// ClassifyRuneOutput defines the response for classifying an item.
// Descriptor is nil when the item is not recognizable as a rune.
type ClassifyRuneOutput struct {
	Descriptor *RuneDescriptor
}

// EvaluateCompatibilityInput defines the request for a compatibility check
type EvaluateCompatibilityInput struct {
	Rune   *RuneDescriptor
	Target *pf2e.Item
}

// EvaluateCompatibilityOutput defines the response for a compatibility check
type EvaluateCompatibilityOutput struct {
	Compatible bool
	// Reason is set when Compatible is false and a specific cause is known
	Reason string
}

// ResolvePropertyKeyInput defines the request for resolving a property key
type ResolvePropertyKeyInput struct {
	Rune       *RuneDescriptor
	TargetType pf2e.ItemType
}

// ResolvePropertyKeyOutput defines the response for resolving a property key
type ResolvePropertyKeyOutput struct {
	Key string
}

// RuneValueInput defines the request for resolving a rune's level and price
type RuneValueInput struct {
	// Kind selects which value to resolve
	Kind RuneKind
	// Slug identifies a property rune; ignored for fundamentals
	Slug string
	// TargetType selects the table section
	TargetType pf2e.ItemType
	// Fundamental selects the field for fundamental runes:
	// potency/striking/resilient/reinforcing
	Fundamental string
	// Rank is the fundamental rank
	Rank int
}

// RuneValueOutput defines the response for resolving a rune's level and
// price. Level 0 / PriceGP 0 together mean "unknown, free". Name and
// Traits are filled only when the catalog resolved the rune.
type RuneValueOutput struct {
	Level   int
	PriceGP int
	Name    string
	Traits  []string
}

// Fundamental field names used in RuneValueInput and transfer choices
const (
	FundamentalPotency     = "potency"
	FundamentalStriking    = "striking"
	FundamentalResilient   = "resilient"
	FundamentalReinforcing = "reinforcing"
)
