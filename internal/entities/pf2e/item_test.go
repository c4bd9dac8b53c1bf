package pf2e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

func TestRuneTargetType(t *testing.T) {
	tests := []struct {
		name       string
		item       pf2e.Item
		targetType pf2e.ItemType
		ok         bool
	}{
		{
			name:       "weapon",
			item:       pf2e.Item{Type: pf2e.ItemTypeWeapon},
			targetType: pf2e.ItemTypeWeapon,
			ok:         true,
		},
		{
			name:       "armor",
			item:       pf2e.Item{Type: pf2e.ItemTypeArmor, Category: pf2e.ArmorCategoryMedium},
			targetType: pf2e.ItemTypeArmor,
			ok:         true,
		},
		{
			name:       "shield",
			item:       pf2e.Item{Type: pf2e.ItemTypeShield},
			targetType: pf2e.ItemTypeShield,
			ok:         true,
		},
		{
			name:       "legacy armor-typed shield",
			item:       pf2e.Item{Type: pf2e.ItemTypeArmor, Category: pf2e.ArmorCategoryShield},
			targetType: pf2e.ItemTypeShield,
			ok:         true,
		},
		{
			name: "equipment holds no runes",
			item: pf2e.Item{Type: pf2e.ItemTypeEquipment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.item.RuneTargetType()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.targetType, got)
		})
	}
}

func TestIsMelee(t *testing.T) {
	melee := pf2e.Item{Type: pf2e.ItemTypeWeapon}
	assert.True(t, melee.IsMelee())

	thrown := pf2e.Item{Type: pf2e.ItemTypeWeapon, Thrown: true}
	assert.False(t, thrown.IsMelee())

	ranged := pf2e.Item{Type: pf2e.ItemTypeWeapon, Range: 60}
	assert.False(t, ranged.IsMelee())

	thrownByTrait := pf2e.Item{Type: pf2e.ItemTypeWeapon, Traits: []string{"Thrown"}}
	assert.False(t, thrownByTrait.IsMelee())
}

func TestIsMetal(t *testing.T) {
	assert.True(t, (&pf2e.Item{Material: "cold-iron"}).IsMetal())
	assert.True(t, (&pf2e.Item{Material: "Steel"}).IsMetal())
	assert.True(t, (&pf2e.Item{Traits: []string{"metal"}}).IsMetal())
	assert.False(t, (&pf2e.Item{Material: "wood"}).IsMetal())
	assert.False(t, (&pf2e.Item{}).IsMetal())
}

func TestIsRunestone(t *testing.T) {
	assert.True(t, (&pf2e.Item{Type: pf2e.ItemTypeEquipment, Slug: "runestone"}).IsRunestone())
	assert.True(t, (&pf2e.Item{Type: pf2e.ItemTypeEquipment, Name: "Greater Runestone"}).IsRunestone())
	assert.False(t, (&pf2e.Item{Type: pf2e.ItemTypeWeapon, Name: "Runestone Blade"}).IsRunestone())
	assert.False(t, (&pf2e.Item{Type: pf2e.ItemTypeEquipment, Name: "Backpack"}).IsRunestone())
}

func TestItemCloneIsDeep(t *testing.T) {
	original := &pf2e.Item{
		ID:     "w1",
		Name:   "Longsword",
		Type:   pf2e.ItemTypeWeapon,
		Traits: []string{"versatile"},
		Runes:  pf2e.RuneState{Potency: 1, Property: []string{"flaming"}},
	}

	clone := original.Clone()
	require.NotNil(t, clone)
	clone.Runes.Property[0] = "frost"
	clone.Traits[0] = "agile"

	assert.Equal(t, "flaming", original.Runes.Property[0])
	assert.Equal(t, "versatile", original.Traits[0])
}

func TestRuneStateHasProperty(t *testing.T) {
	state := pf2e.RuneState{Property: []string{"flaming", "ghost-touch"}}
	assert.True(t, state.HasProperty("ghost-touch"))
	assert.False(t, state.HasProperty("frost"))
	assert.False(t, pf2e.RuneState{}.HasProperty("flaming"))
}

func TestFundamentalKeyRoundTrips(t *testing.T) {
	for rank := 1; rank <= pf2e.MaxStrikingRank; rank++ {
		assert.Equal(t, rank, pf2e.StrikingRank(pf2e.StrikingKey(rank)))
	}
	for rank := 1; rank <= pf2e.MaxResilientRank; rank++ {
		assert.Equal(t, rank, pf2e.ResilientRank(pf2e.ResilientKey(rank)))
	}
	for rank := 1; rank <= pf2e.MaxReinforcingRank; rank++ {
		assert.Equal(t, rank, pf2e.ReinforcingRank(pf2e.ReinforcingTier(rank)))
	}

	assert.Empty(t, pf2e.StrikingKey(0))
	assert.Zero(t, pf2e.StrikingRank("no-such-key"))
}
