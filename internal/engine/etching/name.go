package etching

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// titleWords capitalizes each hyphen- or space-separated word of a slug
// for display, "ghost-touch" -> "Ghost Touch"
func titleWords(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// runePrefixWords are the rune-derived words stripped from the front of a
// display name before rebuilding it, so repeated renames never stack.
var runePrefixWords = map[string]struct{}{
	"striking": {}, "resilient": {}, "reinforcing": {},
	"greater": {}, "major": {}, "mythic": {},
	"minor": {}, "lesser": {}, "moderate": {}, "supreme": {},
}

// stripRunePrefixes removes a leading potency bonus, fundamental rune words,
// and known property rune names from a display name, returning the base
// item name.
func stripRunePrefixes(name string, targetType pf2e.ItemType) string {
	words := strings.Fields(name)
	propertyNames := weaponPropertySlugs
	if targetType == pf2e.ItemTypeArmor || targetType == pf2e.ItemTypeShield {
		propertyNames = armorPropertySlugs
	}

	i := 0
	for i < len(words) {
		w := strings.ToLower(words[i])
		if i == 0 && strings.HasPrefix(w, "+") {
			i++
			continue
		}
		if _, ok := runePrefixWords[w]; ok {
			i++
			continue
		}
		// Property rune names can span two words ("ghost touch")
		if i+1 < len(words) {
			two := w + "-" + strings.ToLower(words[i+1])
			if _, ok := propertyNames[two]; ok {
				i += 2
				continue
			}
		}
		if _, ok := propertyNames[w]; ok {
			i++
			continue
		}
		break
	}
	if i >= len(words) {
		return name
	}
	return strings.Join(words[i:], " ")
}

// RunedItemName rebuilds an item's display name from its rune state:
// potency bonus, fundamental rune words, property rune names, base name.
func (a *Adapter) RunedItemName(item *pf2e.Item, runes pf2e.RuneState) string {
	if item == nil {
		return ""
	}

	targetType, ok := item.RuneTargetType()
	if !ok {
		return item.Name
	}

	base := item.BaseItem
	if base == "" {
		base = stripRunePrefixes(item.Name, targetType)
	} else {
		base = titleWords(base)
	}

	var parts []string
	if runes.Potency > 0 {
		parts = append(parts, fmt.Sprintf("+%d", runes.Potency))
	}
	switch targetType {
	case pf2e.ItemTypeWeapon:
		if runes.Striking > 0 {
			parts = append(parts, titleWords(strikingWords(runes.Striking)))
		}
	case pf2e.ItemTypeArmor:
		if runes.Resilient > 0 {
			parts = append(parts, titleWords(resilientWords(runes.Resilient)))
		}
	case pf2e.ItemTypeShield:
		if runes.Reinforcing > 0 {
			parts = append(parts, titleWords(reinforcingWords(runes.Reinforcing)))
		}
	}
	for _, slug := range runes.Property {
		parts = append(parts, titleWords(slug))
	}
	parts = append(parts, base)

	return strings.Join(parts, " ")
}

func strikingWords(rank int) string {
	switch rank {
	case 2:
		return "greater striking"
	case 3:
		return "major striking"
	case 4:
		return "mythic striking"
	default:
		return "striking"
	}
}

func resilientWords(rank int) string {
	switch rank {
	case 2:
		return "greater resilient"
	case 3:
		return "major resilient"
	case 4:
		return "mythic resilient"
	default:
		return "resilient"
	}
}

func reinforcingWords(rank int) string {
	tier := pf2e.ReinforcingTier(rank)
	if tier == "" {
		return "reinforcing"
	}
	return tier + " reinforcing"
}
