package etching

import (
	"context"

	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
)

// opposedAspects maps a sanctification aspect carried by the incoming rune
// to the aspects that refuse it when already etched on the target. The
// wo- entries are anti-runes: wo-holy wards an item against holy, so the
// pairs are directed rather than symmetric.
var opposedAspects = map[string][]string{
	"holy":      {"unholy", "wo-holy"},
	"unholy":    {"holy", "wo-unholy"},
	"wo-holy":   {"holy"},
	"wo-unholy": {"unholy"},
}

// EvaluateCompatibility decides whether a rune may legally attach to a
// target. Checks run cheapest first; the first failure wins and sets the
// reason. Slot capacity is not part of legality, callers gate on
// PropertyRuneSlots separately so a full item still shows as a valid
// target for eviction flows. When the catalog resolves the slug it gets
// final say over the placement, after every built-in check has passed.
func (a *Adapter) EvaluateCompatibility(
	ctx context.Context,
	input *engine.EvaluateCompatibilityInput,
) (*engine.EvaluateCompatibilityOutput, error) {
	if input == nil || input.Rune == nil || input.Target == nil {
		return nil, errors.InvalidArgument("rune descriptor and target are required")
	}

	targetType, ok := input.Target.RuneTargetType()
	if !ok {
		return incompatible(engine.ReasonNotEtchable), nil
	}

	if len(input.Rune.TargetTypes) > 0 && !input.Rune.TargetsType(targetType) {
		return incompatible(engine.ReasonWrongCategory), nil
	}

	if matched, reason := matchPlacement(input.Rune.Placement, input.Target); !matched {
		return incompatible(reason), nil
	}

	if hasOpposedAspect(input.Rune, input.Target) {
		return incompatible(engine.ReasonOpposedTrait), nil
	}

	if dt, ok := traitDamageType(input.Rune); ok &&
		input.Target.DamageType != "" && input.Target.DamageType != dt {
		return incompatible(engine.ReasonDamageType), nil
	}

	if refused := a.catalogRefuses(ctx, input.Rune, input.Target, targetType); refused {
		return incompatible(engine.ReasonCatalogRefused), nil
	}

	return &engine.EvaluateCompatibilityOutput{Compatible: true}, nil
}

func incompatible(reason string) *engine.EvaluateCompatibilityOutput {
	return &engine.EvaluateCompatibilityOutput{Reason: reason}
}

// catalogRefuses re-validates a property rune's placement against the
// catalog's own usage rules. A missing entry or an unavailable catalog is
// no opinion, only an authoritative entry that disagrees refuses.
func (a *Adapter) catalogRefuses(
	ctx context.Context,
	desc *engine.RuneDescriptor,
	target *pf2e.Item,
	targetType pf2e.ItemType,
) bool {
	if desc.Kind != engine.RuneKindProperty || desc.Slug == "" {
		return false
	}

	data, err := a.catalogPropertyRune(ctx, desc.Slug, targetType)
	if err != nil {
		return false
	}

	matched, _ := matchPlacement(parseUsage(data.Usage), target)
	return !matched
}

// traitDamageType returns the physical damage type a rune pins its target
// to. Only an unambiguous trait counts: zero or several physical damage
// traits mean the rune does not constrain the target's damage type.
func traitDamageType(d *engine.RuneDescriptor) (string, bool) {
	found := ""
	for _, t := range []string{pf2e.DamageBludgeoning, pf2e.DamagePiercing, pf2e.DamageSlashing} {
		if !d.HasTrait(t) {
			continue
		}
		if found != "" {
			return "", false
		}
		found = t
	}
	return found, found != ""
}

// hasOpposedAspect reports whether the rune carries a sanctification aspect
// opposed to one already etched on the target. The aspect is read from the
// rune's slug and traits, and from the target's existing property runes.
func hasOpposedAspect(desc *engine.RuneDescriptor, target *pf2e.Item) bool {
	for aspect, opposed := range opposedAspects {
		if !runeBearsAspect(desc, aspect) {
			continue
		}
		for _, existing := range target.Runes.Property {
			for _, opp := range opposed {
				if bearsAspect(existing, opp) {
					return true
				}
			}
		}
	}
	return false
}

func runeBearsAspect(d *engine.RuneDescriptor, aspect string) bool {
	return bearsAspect(d.Slug, aspect) || d.HasTrait(aspect)
}

// bearsAspect matches an aspect inside a hyphenated slug on word
// boundaries, so "greater-unholy" carries unholy while "holy" does not
// match "unholy". The wo- anti-rune prefix binds to the word after it:
// "wo-holy" carries wo-holy, not holy.
func bearsAspect(slug, aspect string) bool {
	words := splitHyphens(slug)
	parts := splitHyphens(aspect)
	for i := 0; i+len(parts) <= len(words); i++ {
		if i > 0 && words[i-1] == "wo" && parts[0] != "wo" {
			continue
		}
		if wordsMatchAt(words, parts, i) {
			return true
		}
	}
	return false
}

func wordsMatchAt(words, parts []string, at int) bool {
	for j, p := range parts {
		if words[at+j] != p {
			return false
		}
	}
	return true
}

func splitHyphens(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '-' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
