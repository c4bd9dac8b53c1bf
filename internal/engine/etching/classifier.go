package etching

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	potencySlug   = regexp.MustCompile(`^([1-4])-(weapon|armor)-potency$`)
)

// normalizeRuneSlug derives the canonical kebab slug for a rune item. The
// item's own slug wins when present; display names get camelCase expanded
// and the trailing "rune" word stripped so "Greater Striking Rune",
// "greaterStriking" and "greater-striking" all land on the same key.
func normalizeRuneSlug(item *pf2e.Item) string {
	s := item.Slug
	if s == "" {
		s = item.Name
	}
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = strings.TrimSuffix(s, "-runes")
	s = strings.TrimSuffix(s, "-rune")
	return s
}

// ClassifyRune determines whether an item is a rune and derives its
// descriptor. Resolution order: exact display-name map, fundamental slug
// tables, potency naming, catalog oracle, built-in property slug sets,
// fundamental naming heuristics, then a bare etched usage as the last
// signal. A miss on every layer returns a nil descriptor, not an error.
func (a *Adapter) ClassifyRune(
	ctx context.Context,
	input *engine.ClassifyRuneInput,
) (*engine.ClassifyRuneOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}

	item := input.Item
	slug := normalizeRuneSlug(item)
	placement := parseUsage(item.Usage)
	traits := lowerAll(item.Traits)

	if def, ok := runeNameMap[strings.TrimSpace(item.Name)]; ok {
		return &engine.ClassifyRuneOutput{
			Descriptor: descriptorFromDefinition(def, slug, traits, placement),
		}, nil
	}

	if def, ok := fundamentalSlugs[slug]; ok {
		return &engine.ClassifyRuneOutput{
			Descriptor: fundamentalDescriptor(slug, def.field, def.rank, traits, placement),
		}, nil
	}

	if m := potencySlug.FindStringSubmatch(slug); m != nil {
		rank, _ := strconv.Atoi(m[1])
		d := fundamentalDescriptor(slug, fieldPotency, rank, traits, placement)
		if m[2] == "weapon" {
			d.TargetTypes = []pf2e.ItemType{pf2e.ItemTypeWeapon}
		} else {
			d.TargetTypes = []pf2e.ItemType{pf2e.ItemTypeArmor}
		}
		return &engine.ClassifyRuneOutput{Descriptor: d}, nil
	}

	if d := a.classifyViaCatalog(ctx, slug, traits, placement); d != nil {
		return &engine.ClassifyRuneOutput{Descriptor: d}, nil
	}

	if _, ok := weaponPropertySlugs[slug]; ok {
		return &engine.ClassifyRuneOutput{
			Descriptor: propertyDescriptor(slug, traits, placement, pf2e.ItemTypeWeapon),
		}, nil
	}
	if _, ok := armorPropertySlugs[slug]; ok {
		return &engine.ClassifyRuneOutput{
			Descriptor: propertyDescriptor(slug, traits, placement, pf2e.ItemTypeArmor),
		}, nil
	}

	if d := fundamentalFromWords(slug, traits, placement); d != nil {
		return &engine.ClassifyRuneOutput{Descriptor: d}, nil
	}

	// An etched usage on an otherwise unknown item still marks a rune;
	// homebrew property runes carry nothing else to recognize them by.
	if placement != nil {
		return &engine.ClassifyRuneOutput{
			Descriptor: propertyDescriptor(slug, traits, placement, placementTargets(placement)...),
		}, nil
	}

	return &engine.ClassifyRuneOutput{}, nil
}

func (a *Adapter) classifyViaCatalog(
	ctx context.Context,
	slug string,
	traits []string,
	placement *engine.Placement,
) *engine.RuneDescriptor {
	if data, err := a.catalog.WeaponPropertyRune(ctx, slug); err == nil {
		d := propertyDescriptor(data.Slug, mergeTraits(traits, data.Traits), placement, pf2e.ItemTypeWeapon)
		if placement == nil {
			d.Placement = parseUsage(data.Usage)
		}
		return d
	}
	if data, err := a.catalog.ArmorPropertyRune(ctx, slug); err == nil {
		d := propertyDescriptor(data.Slug, mergeTraits(traits, data.Traits), placement, pf2e.ItemTypeArmor)
		if placement == nil {
			d.Placement = parseUsage(data.Usage)
		}
		return d
	}
	return nil
}

// fundamentalFromWords recognizes fundamental runes by the words in their
// slug when no table matched, e.g. "flaming-greater-striking" compendium
// duplicates or renamed homebrew tiers. A numeric bonus token and a rank
// word are independent signals: "2-greater-striking" yields potency 2 and
// striking 2 on the same descriptor.
func fundamentalFromWords(slug string, traits []string, placement *engine.Placement) *engine.RuneDescriptor {
	words := strings.Split(slug, "-")

	rankFor := func(qualifiers map[string]int) int {
		for _, w := range words {
			if r, ok := qualifiers[w]; ok {
				return r
			}
		}
		return 1
	}

	var d *engine.RuneDescriptor
	switch {
	case containsString(words, fieldStriking):
		rank := rankFor(map[string]int{"greater": 2, "major": 3, "mythic": 4})
		d = fundamentalDescriptor(slug, fieldStriking, rank, traits, placement)
	case containsString(words, fieldResilient):
		rank := rankFor(map[string]int{"greater": 2, "major": 3, "mythic": 4})
		d = fundamentalDescriptor(slug, fieldResilient, rank, traits, placement)
	case containsString(words, fieldReinforcing):
		rank := rankFor(map[string]int{
			"minor": 1, "lesser": 2, "moderate": 3,
			"greater": 4, "major": 5, "supreme": 6,
		})
		d = fundamentalDescriptor(slug, fieldReinforcing, rank, traits, placement)
	}

	potency := potencyFromWords(words)
	if d == nil {
		if potency == 0 {
			return nil
		}
		d = fundamentalDescriptor(slug, fieldPotency, potency, traits, placement)
		switch {
		case containsString(words, "weapon"):
			d.TargetTypes = []pf2e.ItemType{pf2e.ItemTypeWeapon}
		case containsString(words, "armor"):
			d.TargetTypes = []pf2e.ItemType{pf2e.ItemTypeArmor}
		}
		return d
	}
	d.Potency = potency
	return d
}

// potencyFromWords finds a bare numeric bonus token in a normalized slug,
// where "+2" has already been reduced to the word "2"
func potencyFromWords(words []string) int {
	for _, w := range words {
		if len(w) == 1 && w[0] >= '1' && w[0] <= '4' {
			return int(w[0] - '0')
		}
	}
	return 0
}

func descriptorFromDefinition(
	def runeNameDefinition,
	slug string,
	traits []string,
	placement *engine.Placement,
) *engine.RuneDescriptor {
	if def.propertyKey != "" {
		return propertyDescriptor(def.propertyKey, traits, placement, def.targetTypes...)
	}
	d := &engine.RuneDescriptor{
		Slug:        slug,
		Kind:        engine.RuneKindFundamental,
		Traits:      traits,
		TargetTypes: def.targetTypes,
		Placement:   placement,
		Potency:     def.potency,
		Striking:    def.striking,
		Resilient:   def.resilient,
		Reinforcing: def.reinforcing,
	}
	if len(d.TargetTypes) == 0 {
		d.TargetTypes = fundamentalTargetsFor(d)
	}
	return d
}

func propertyDescriptor(
	slug string,
	traits []string,
	placement *engine.Placement,
	targets ...pf2e.ItemType,
) *engine.RuneDescriptor {
	if len(targets) == 0 {
		targets = []pf2e.ItemType{pf2e.ItemTypeWeapon, pf2e.ItemTypeArmor}
	}
	return &engine.RuneDescriptor{
		Slug:        slug,
		Kind:        engine.RuneKindProperty,
		Traits:      traits,
		TargetTypes: targets,
		Placement:   placement,
	}
}

func fundamentalDescriptor(
	slug string,
	field string,
	rank int,
	traits []string,
	placement *engine.Placement,
) *engine.RuneDescriptor {
	d := &engine.RuneDescriptor{
		Slug:      slug,
		Kind:      engine.RuneKindFundamental,
		Traits:    traits,
		Placement: placement,
	}
	switch field {
	case fieldPotency:
		d.Potency = rank
	case fieldStriking:
		d.Striking = rank
	case fieldResilient:
		d.Resilient = rank
	case fieldReinforcing:
		d.Reinforcing = rank
	}
	d.TargetTypes = fundamentalTargetsFor(d)
	return d
}

// fundamentalTargetsFor derives the legal target categories from the set
// fundamental field: striking etches onto weapons, resilient onto armor,
// reinforcing onto shields, potency onto weapons and armor.
func fundamentalTargetsFor(d *engine.RuneDescriptor) []pf2e.ItemType {
	switch {
	case d.Striking > 0:
		return []pf2e.ItemType{pf2e.ItemTypeWeapon}
	case d.Resilient > 0:
		return []pf2e.ItemType{pf2e.ItemTypeArmor}
	case d.Reinforcing > 0:
		return []pf2e.ItemType{pf2e.ItemTypeShield}
	default:
		return []pf2e.ItemType{pf2e.ItemTypeWeapon, pf2e.ItemTypeArmor}
	}
}

func placementTargets(p *engine.Placement) []pf2e.ItemType {
	if p != nil && p.Target != "" {
		return []pf2e.ItemType{p.Target}
	}
	return nil
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func mergeTraits(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, t := range base {
		t = strings.ToLower(t)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, t := range extra {
		t = strings.ToLower(t)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
