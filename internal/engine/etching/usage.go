package etching

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// etchedPrefix marks a usage string as a rune placement rule
const etchedPrefix = "etched-onto-"

var (
	nonAlnum        = regexp.MustCompile(`[^a-z0-9]+`)
	withoutRuneTail = regexp.MustCompile(`without-(?:an?-)?([a-z0-9-]+?)-runes?$`)
)

// normalizeUsage lowercases and hyphenates a usage string so data-entry
// variants ("etched onto a weapon", "etched-onto-a-weapon") parse the same.
func normalizeUsage(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// parseUsage parses an "etched-onto-..." usage string into a placement rule.
// Returns nil when the usage does not describe a rune placement. Unknown
// tokens are ignored rather than rejected; compendium usage strings are
// free text and new qualifiers must not make old runes unattachable.
func parseUsage(raw string) *engine.Placement {
	norm := normalizeUsage(raw)
	if !strings.HasPrefix(norm, etchedPrefix) {
		return nil
	}

	p := &engine.Placement{Raw: raw}
	rest := strings.TrimPrefix(norm, etchedPrefix)

	// The exclusion suffix nests hyphens inside the rune name, so it is
	// peeled off before tokenizing.
	for {
		m := withoutRuneTail.FindStringSubmatch(rest)
		if m == nil {
			break
		}
		p.WithoutRunes = append(p.WithoutRunes, m[1])
		rest = strings.TrimSuffix(rest, m[0])
		rest = strings.TrimSuffix(rest, "-")
	}

	for _, tok := range strings.Split(rest, "-") {
		switch tok {
		case "weapon", "weapons":
			p.Target = pf2e.ItemTypeWeapon
		case "armor", "armour":
			p.Target = pf2e.ItemTypeArmor
		case "shield", "shields", "buckler":
			p.Target = pf2e.ItemTypeShield
		case pf2e.ArmorCategoryLight:
			p.ArmorCategories = append(p.ArmorCategories, pf2e.ArmorCategoryLight)
		case pf2e.ArmorCategoryMedium:
			p.ArmorCategories = append(p.ArmorCategories, pf2e.ArmorCategoryMedium)
		case pf2e.ArmorCategoryHeavy:
			p.ArmorCategories = append(p.ArmorCategories, pf2e.ArmorCategoryHeavy)
		case pf2e.DamageBludgeoning:
			p.DamageTypes = append(p.DamageTypes, pf2e.DamageBludgeoning)
		case pf2e.DamagePiercing:
			p.DamageTypes = append(p.DamageTypes, pf2e.DamagePiercing)
		case pf2e.DamageSlashing:
			p.DamageTypes = append(p.DamageTypes, pf2e.DamageSlashing)
		case "melee":
			p.Melee = true
		case "thrown":
			p.Thrown = true
		case "metal":
			p.Metal = true
		}
	}

	return p
}

// matchPlacement evaluates a placement rule against a target item. The
// second return is the incompatibility reason when the match fails.
func matchPlacement(p *engine.Placement, target *pf2e.Item) (bool, string) {
	if p == nil {
		return true, ""
	}

	targetType, ok := target.RuneTargetType()
	if !ok {
		return false, engine.ReasonNotEtchable
	}

	if p.Target != "" && p.Target != targetType {
		return false, engine.ReasonPlacement
	}

	if len(p.ArmorCategories) > 0 {
		if targetType != pf2e.ItemTypeArmor || !containsString(p.ArmorCategories, target.Category) {
			return false, engine.ReasonPlacement
		}
	}

	if len(p.DamageTypes) > 0 && !containsString(p.DamageTypes, target.DamageType) {
		return false, engine.ReasonDamageType
	}

	if p.Melee && !target.IsMelee() {
		return false, engine.ReasonPlacement
	}
	if p.Thrown && !target.Thrown && !target.HasTrait("thrown") {
		return false, engine.ReasonPlacement
	}
	if p.Metal && !target.IsMetal() {
		return false, engine.ReasonPlacement
	}

	for _, slug := range p.WithoutRunes {
		if target.Runes.HasProperty(slug) {
			return false, engine.ReasonOpposedTrait
		}
	}

	return true, ""
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
