package etching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rune-api/internal/clients/catalog"
	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
)

// fakeCatalog serves canned answers for the catalog-backed paths
type fakeCatalog struct {
	weapons map[string]*catalog.PropertyRuneData
	armors  map[string]*catalog.PropertyRuneData
	slots   map[string]int
}

func (f *fakeCatalog) WeaponPropertyRune(_ context.Context, slug string) (*catalog.PropertyRuneData, error) {
	if d, ok := f.weapons[slug]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("weapon property rune %q not found", slug)
}

func (f *fakeCatalog) ArmorPropertyRune(_ context.Context, slug string) (*catalog.PropertyRuneData, error) {
	if d, ok := f.armors[slug]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("armor property rune %q not found", slug)
}

func (f *fakeCatalog) PrunePropertyRunes(_ context.Context, candidates []string, _ catalog.Section) ([]string, error) {
	return candidates, nil
}

func (f *fakeCatalog) PropertyRuneSlots(_ context.Context, item *pf2e.Item) (int, error) {
	if n, ok := f.slots[item.ID]; ok {
		return n, nil
	}
	return 0, errors.NotFoundf("item %s not found", item.ID)
}

func (f *fakeCatalog) Ping(_ context.Context) error { return nil }

type AdapterTestSuite struct {
	suite.Suite
	adapter *Adapter
	ctx     context.Context
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()

	adapter, err := New(&Config{
		CatalogClient: catalog.NewUnavailable(),
	})
	s.Require().NoError(err)
	s.adapter = adapter
}

func (s *AdapterTestSuite) classify(item *pf2e.Item) *engine.RuneDescriptor {
	output, err := s.adapter.ClassifyRune(s.ctx, &engine.ClassifyRuneInput{Item: item})
	s.Require().NoError(err)
	return output.Descriptor
}

func (s *AdapterTestSuite) TestNewRequiresCatalogClient() {
	_, err := New(&Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestClassifyPotencyRune() {
	desc := s.classify(&pf2e.Item{
		ID:    "item-1",
		Name:  "+1 Weapon Potency Rune",
		Type:  pf2e.ItemTypeEquipment,
		Usage: "etched-onto-a-weapon",
	})

	s.Require().NotNil(desc)
	s.Equal(engine.RuneKindFundamental, desc.Kind)
	s.Equal(1, desc.Potency)
	s.Equal([]pf2e.ItemType{pf2e.ItemTypeWeapon}, desc.TargetTypes)
}

func (s *AdapterTestSuite) TestClassifyStrikingRanks() {
	cases := []struct {
		slug string
		rank int
	}{
		{"striking", 1},
		{"greater-striking", 2},
		{"major-striking", 3},
		{"mythic-striking", 4},
	}
	for _, tc := range cases {
		desc := s.classify(&pf2e.Item{ID: "i", Name: tc.slug, Slug: tc.slug, Type: pf2e.ItemTypeEquipment})
		s.Require().NotNil(desc, tc.slug)
		s.Equal(tc.rank, desc.Striking, tc.slug)
		s.Equal([]pf2e.ItemType{pf2e.ItemTypeWeapon}, desc.TargetTypes, tc.slug)
	}
}

func (s *AdapterTestSuite) TestClassifyReinforcingTiers() {
	desc := s.classify(&pf2e.Item{ID: "i", Slug: "supreme-reinforcing", Name: "Supreme Reinforcing Rune", Type: pf2e.ItemTypeEquipment})
	s.Require().NotNil(desc)
	s.Equal(6, desc.Reinforcing)
	s.Equal([]pf2e.ItemType{pf2e.ItemTypeShield}, desc.TargetTypes)
}

func (s *AdapterTestSuite) TestClassifyByDisplayName() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Flaming Rune", Type: pf2e.ItemTypeEquipment})
	s.Require().NotNil(desc)
	s.Equal(engine.RuneKindProperty, desc.Kind)
	s.Equal("flaming", desc.Slug)
	s.Equal([]pf2e.ItemType{pf2e.ItemTypeWeapon}, desc.TargetTypes)
}

func (s *AdapterTestSuite) TestClassifyLocalizedDisplayName() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Frostrune", Type: pf2e.ItemTypeEquipment})
	s.Require().NotNil(desc)
	s.Equal("frost", desc.Slug)
}

func (s *AdapterTestSuite) TestClassifyCamelCaseSlug() {
	desc := s.classify(&pf2e.Item{ID: "i", Slug: "greaterStriking", Name: "whatever", Type: pf2e.ItemTypeEquipment})
	s.Require().NotNil(desc)
	s.Equal(2, desc.Striking)
}

func (s *AdapterTestSuite) TestClassifyNonRuneReturnsNilDescriptor() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Healing Potion", Type: pf2e.ItemTypeEquipment, Usage: "held-in-1-hand"})
	s.Nil(desc)
}

func (s *AdapterTestSuite) TestClassifyEtchedUsageDefaultsToProperty() {
	desc := s.classify(&pf2e.Item{
		ID:    "i",
		Name:  "Homebrew Rune of Mystery",
		Slug:  "homebrew-rune-of-mystery",
		Type:  pf2e.ItemTypeEquipment,
		Usage: "etched-onto-a-weapon",
	})
	s.Require().NotNil(desc)
	s.Equal(engine.RuneKindProperty, desc.Kind)
	s.Equal([]pf2e.ItemType{pf2e.ItemTypeWeapon}, desc.TargetTypes)
}

func (s *AdapterTestSuite) TestClassifyIsRepeatable() {
	item := &pf2e.Item{ID: "i", Name: "Flaming Rune", Type: pf2e.ItemTypeEquipment}
	first := s.classify(item)
	second := s.classify(item)
	s.Equal(first, second)
}

func (s *AdapterTestSuite) TestClassifyPrefersCatalog() {
	adapter, err := New(&Config{
		CatalogClient: &fakeCatalog{
			weapons: map[string]*catalog.PropertyRuneData{
				"whirlwind": {
					Name:  "Whirlwind Rune",
					Slug:  "whirlwind",
					Usage: "etched-onto-a-melee-weapon",
				},
			},
		},
	})
	s.Require().NoError(err)

	output, err := adapter.ClassifyRune(s.ctx, &engine.ClassifyRuneInput{
		Item: &pf2e.Item{ID: "i", Slug: "whirlwind", Name: "Whirlwind Rune", Type: pf2e.ItemTypeEquipment},
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Descriptor)
	s.Equal(engine.RuneKindProperty, output.Descriptor.Kind)
	s.Require().NotNil(output.Descriptor.Placement)
	s.True(output.Descriptor.Placement.Melee)
}

func (s *AdapterTestSuite) TestCompatibilityWrongCategory() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Flaming Rune", Type: pf2e.ItemTypeEquipment})

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune:   desc,
		Target: &pf2e.Item{ID: "a", Name: "Breastplate", Type: pf2e.ItemTypeArmor, Category: pf2e.ArmorCategoryMedium},
	})
	s.Require().NoError(err)
	s.False(output.Compatible)
	s.Equal(engine.ReasonWrongCategory, output.Reason)
}

func (s *AdapterTestSuite) TestCompatibilityNotEtchable() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Flaming Rune", Type: pf2e.ItemTypeEquipment})

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune:   desc,
		Target: &pf2e.Item{ID: "p", Name: "Backpack", Type: pf2e.ItemTypeEquipment},
	})
	s.Require().NoError(err)
	s.False(output.Compatible)
	s.Equal(engine.ReasonNotEtchable, output.Reason)
}

func (s *AdapterTestSuite) TestCompatibilityOpposedAspect() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Holy Rune", Type: pf2e.ItemTypeEquipment})

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune: desc,
		Target: &pf2e.Item{
			ID:    "w",
			Name:  "Unholy Longsword",
			Type:  pf2e.ItemTypeWeapon,
			Runes: pf2e.RuneState{Potency: 1, Property: []string{"unholy"}},
		},
	})
	s.Require().NoError(err)
	s.False(output.Compatible)
	s.Equal(engine.ReasonOpposedTrait, output.Reason)
}

func (s *AdapterTestSuite) TestCompatibilityMeleePlacement() {
	desc := s.classify(&pf2e.Item{
		ID:    "i",
		Slug:  "kin-warding",
		Name:  "Kin-Warding Rune",
		Type:  pf2e.ItemTypeEquipment,
		Usage: "etched-onto-a-melee-weapon",
	})

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune:   desc,
		Target: &pf2e.Item{ID: "w", Name: "Javelin", Type: pf2e.ItemTypeWeapon, Thrown: true},
	})
	s.Require().NoError(err)
	s.False(output.Compatible)
	s.Equal(engine.ReasonPlacement, output.Reason)
}

func (s *AdapterTestSuite) TestCompatibilityDamageType() {
	desc := s.classify(&pf2e.Item{
		ID:    "i",
		Slug:  "shockwave",
		Name:  "Shockwave Rune",
		Type:  pf2e.ItemTypeEquipment,
		Usage: "etched-onto-a-bludgeoning-weapon",
	})

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune: desc,
		Target: &pf2e.Item{
			ID: "w", Name: "Longsword", Type: pf2e.ItemTypeWeapon,
			DamageType: pf2e.DamageSlashing,
		},
	})
	s.Require().NoError(err)
	s.False(output.Compatible)
	s.Equal(engine.ReasonDamageType, output.Reason)
}

func (s *AdapterTestSuite) TestCompatibilityHappyPath() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Flaming Rune", Type: pf2e.ItemTypeEquipment})

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune:   desc,
		Target: &pf2e.Item{ID: "w", Name: "Longsword", Type: pf2e.ItemTypeWeapon},
	})
	s.Require().NoError(err)
	s.True(output.Compatible)
	s.Empty(output.Reason)
}

func (s *AdapterTestSuite) TestCraftingDCMonotonic() {
	prev := 0
	for level := 0; level <= 20; level++ {
		dc := s.adapter.CraftingDC(level)
		s.GreaterOrEqual(dc, prev, "level %d", level)
		prev = dc
	}
	s.Equal(14, s.adapter.CraftingDC(-3))
	s.Equal(40, s.adapter.CraftingDC(25))
}

func (s *AdapterTestSuite) TestRuneValueProperty() {
	output, err := s.adapter.RuneValue(s.ctx, &engine.RuneValueInput{
		Kind:       engine.RuneKindProperty,
		Slug:       "flaming",
		TargetType: pf2e.ItemTypeWeapon,
	})
	s.Require().NoError(err)
	s.Equal(8, output.Level)
	s.Equal(500, output.PriceGP)
}

func (s *AdapterTestSuite) TestRuneValueUnknownPropertyIsFree() {
	output, err := s.adapter.RuneValue(s.ctx, &engine.RuneValueInput{
		Kind:       engine.RuneKindProperty,
		Slug:       "bolkas-blessing",
		TargetType: pf2e.ItemTypeWeapon,
	})
	s.Require().NoError(err)
	s.Zero(output.Level)
	s.Zero(output.PriceGP)
}

func (s *AdapterTestSuite) TestRuneValueFundamentals() {
	cases := []struct {
		field   string
		target  pf2e.ItemType
		rank    int
		level   int
		priceGP int
	}{
		{engine.FundamentalPotency, pf2e.ItemTypeWeapon, 1, 2, 35},
		{engine.FundamentalPotency, pf2e.ItemTypeArmor, 1, 5, 160},
		{engine.FundamentalStriking, pf2e.ItemTypeWeapon, 2, 12, 1065},
		{engine.FundamentalResilient, pf2e.ItemTypeArmor, 3, 20, 49440},
		{engine.FundamentalReinforcing, pf2e.ItemTypeShield, 6, 19, 55000},
	}
	for _, tc := range cases {
		output, err := s.adapter.RuneValue(s.ctx, &engine.RuneValueInput{
			Kind:        engine.RuneKindFundamental,
			TargetType:  tc.target,
			Fundamental: tc.field,
			Rank:        tc.rank,
		})
		s.Require().NoError(err, tc.field)
		s.Equal(tc.level, output.Level, tc.field)
		s.Equal(tc.priceGP, output.PriceGP, tc.field)
	}
}

func (s *AdapterTestSuite) TestRuneValueInvalidRank() {
	_, err := s.adapter.RuneValue(s.ctx, &engine.RuneValueInput{
		Kind:        engine.RuneKindFundamental,
		Fundamental: engine.FundamentalStriking,
		Rank:        0,
	})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestPropertyRuneSlotsPotencyFallback() {
	item := &pf2e.Item{ID: "w", Type: pf2e.ItemTypeWeapon, Runes: pf2e.RuneState{Potency: 2}}
	s.Equal(2, s.adapter.PropertyRuneSlots(s.ctx, item))

	bare := &pf2e.Item{ID: "w2", Type: pf2e.ItemTypeWeapon}
	s.Equal(0, s.adapter.PropertyRuneSlots(s.ctx, bare))
}

func (s *AdapterTestSuite) TestPropertyRuneSlotsPrefersCatalog() {
	adapter, err := New(&Config{
		CatalogClient: &fakeCatalog{slots: map[string]int{"w": 3}},
	})
	s.Require().NoError(err)

	item := &pf2e.Item{ID: "w", Type: pf2e.ItemTypeWeapon, Runes: pf2e.RuneState{Potency: 1}}
	s.Equal(3, adapter.PropertyRuneSlots(s.ctx, item))
}

func (s *AdapterTestSuite) TestPrunePropertyRunesFallbackDedupes() {
	target := &pf2e.Item{ID: "w", Type: pf2e.ItemTypeWeapon}
	pruned := s.adapter.PrunePropertyRunes(s.ctx, target, []string{"flaming", "frost", "flaming", ""})
	s.Equal([]string{"flaming", "frost"}, pruned)
}

func (s *AdapterTestSuite) TestResolvePropertyKey() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "Flaming Rune", Type: pf2e.ItemTypeEquipment})

	output, err := s.adapter.ResolvePropertyKey(s.ctx, &engine.ResolvePropertyKeyInput{
		Rune:       desc,
		TargetType: pf2e.ItemTypeWeapon,
	})
	s.Require().NoError(err)
	s.Equal("flaming", output.Key)
}

func (s *AdapterTestSuite) TestResolvePropertyKeyUnknownRune() {
	desc := &engine.RuneDescriptor{
		Slug: "rune-of-unremarkable-origin",
		Kind: engine.RuneKindProperty,
	}

	_, err := s.adapter.ResolvePropertyKey(s.ctx, &engine.ResolvePropertyKeyInput{
		Rune:       desc,
		TargetType: pf2e.ItemTypeWeapon,
	})
	s.Error(err)
	s.True(errors.IsUnresolvedRune(err))
}

func (s *AdapterTestSuite) TestRunedItemName() {
	item := &pf2e.Item{
		ID:   "w",
		Name: "Longsword",
		Type: pf2e.ItemTypeWeapon,
	}
	name := s.adapter.RunedItemName(item, pf2e.RuneState{
		Potency:  2,
		Striking: 2,
		Property: []string{"flaming", "ghost-touch"},
	})
	s.Equal("+2 Greater Striking Flaming Ghost Touch Longsword", name)
}

func (s *AdapterTestSuite) TestRunedItemNameStripsOldPrefixes() {
	item := &pf2e.Item{
		ID:   "w",
		Name: "+1 Striking Flaming Longsword",
		Type: pf2e.ItemTypeWeapon,
	}
	name := s.adapter.RunedItemName(item, pf2e.RuneState{Potency: 1})
	s.Equal("+1 Longsword", name)
}

func (s *AdapterTestSuite) TestRunedItemNameShield() {
	item := &pf2e.Item{
		ID:       "sh",
		Name:     "Steel Shield",
		Type:     pf2e.ItemTypeArmor,
		Category: pf2e.ArmorCategoryShield,
	}
	name := s.adapter.RunedItemName(item, pf2e.RuneState{Reinforcing: 4})
	s.Equal("Greater Reinforcing Steel Shield", name)
}

func (s *AdapterTestSuite) TestClassifyPotencyDisplayNames() {
	cases := []struct {
		name    string
		potency int
		targets []pf2e.ItemType
	}{
		{"Weapon Potency Rune (+2)", 2, []pf2e.ItemType{pf2e.ItemTypeWeapon}},
		{"Armor Potency Rune (+3)", 3, []pf2e.ItemType{pf2e.ItemTypeArmor}},
		{"Potency Rune (+1)", 1, []pf2e.ItemType{pf2e.ItemTypeWeapon, pf2e.ItemTypeArmor}},
		{"Waffen-Potenzrune +1", 1, []pf2e.ItemType{pf2e.ItemTypeWeapon}},
		{"Rüstungs-Potenzrune +2", 2, []pf2e.ItemType{pf2e.ItemTypeArmor}},
		{"Potenzrune +3", 3, []pf2e.ItemType{pf2e.ItemTypeWeapon, pf2e.ItemTypeArmor}},
	}
	for _, tc := range cases {
		desc := s.classify(&pf2e.Item{ID: "i", Name: tc.name, Type: pf2e.ItemTypeEquipment})
		s.Require().NotNil(desc, tc.name)
		s.Equal(engine.RuneKindFundamental, desc.Kind, tc.name)
		s.Equal(tc.potency, desc.Potency, tc.name)
		s.Equal(tc.targets, desc.TargetTypes, tc.name)
	}
}

func (s *AdapterTestSuite) TestClassifyPotencyWithRankWord() {
	desc := s.classify(&pf2e.Item{ID: "i", Name: "+2 Greater Striking", Type: pf2e.ItemTypeEquipment})

	s.Require().NotNil(desc)
	s.Equal(engine.RuneKindFundamental, desc.Kind)
	s.Equal(2, desc.Potency, "numeric bonus and rank word are independent fields")
	s.Equal(2, desc.Striking)
}

func (s *AdapterTestSuite) TestClassifyHomebrewFallbackSlugs() {
	for _, slug := range []string{"kolss-oath", "greater-trudds-strength", "greater-bolkas-blessing"} {
		desc := s.classify(&pf2e.Item{ID: "i", Slug: slug, Name: slug, Type: pf2e.ItemTypeEquipment})
		s.Require().NotNil(desc, slug)
		s.Equal(engine.RuneKindProperty, desc.Kind, slug)
		s.Equal([]pf2e.ItemType{pf2e.ItemTypeWeapon}, desc.TargetTypes, slug)
	}
}

func (s *AdapterTestSuite) TestCompatibilityAntiRuneAspects() {
	cases := []struct {
		rune       string
		existing   string
		compatible bool
	}{
		{"holy", "wo-holy", false},
		{"holy", "unholy", false},
		{"unholy", "wo-unholy", false},
		{"wo-holy", "holy", false},
		{"wo-unholy", "unholy", false},
		{"wo-holy", "unholy", true},
		{"wo-unholy", "holy", true},
		{"holy", "wo-unholy", true},
	}
	for _, tc := range cases {
		label := tc.rune + " onto " + tc.existing
		desc := s.classify(&pf2e.Item{
			ID:    "i",
			Slug:  tc.rune,
			Name:  tc.rune,
			Type:  pf2e.ItemTypeEquipment,
			Usage: "etched-onto-a-weapon",
		})
		s.Require().NotNil(desc, label)

		output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
			Rune: desc,
			Target: &pf2e.Item{
				ID:    "w",
				Name:  "Longsword",
				Type:  pf2e.ItemTypeWeapon,
				Runes: pf2e.RuneState{Potency: 1, Property: []string{tc.existing}},
			},
		})
		s.Require().NoError(err, label)
		s.Equal(tc.compatible, output.Compatible, label)
		if !tc.compatible {
			s.Equal(engine.ReasonOpposedTrait, output.Reason, label)
		}
	}
}

func (s *AdapterTestSuite) TestCompatibilityDamageTypeTrait() {
	desc := &engine.RuneDescriptor{
		Slug:   "crushing",
		Kind:   engine.RuneKindProperty,
		Traits: []string{"magical", pf2e.DamageBludgeoning},
	}

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune: desc,
		Target: &pf2e.Item{
			ID: "w", Name: "Longsword", Type: pf2e.ItemTypeWeapon,
			DamageType: pf2e.DamageSlashing,
		},
	})
	s.Require().NoError(err)
	s.False(output.Compatible)
	s.Equal(engine.ReasonDamageType, output.Reason)

	output, err = s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune: desc,
		Target: &pf2e.Item{
			ID: "m", Name: "Mace", Type: pf2e.ItemTypeWeapon,
			DamageType: pf2e.DamageBludgeoning,
		},
	})
	s.Require().NoError(err)
	s.True(output.Compatible)
}

func (s *AdapterTestSuite) TestCompatibilityDamageTypeTraitAmbiguous() {
	desc := &engine.RuneDescriptor{
		Slug:   "versatile",
		Kind:   engine.RuneKindProperty,
		Traits: []string{pf2e.DamageBludgeoning, pf2e.DamageSlashing},
	}

	output, err := s.adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune: desc,
		Target: &pf2e.Item{
			ID: "w", Name: "Longsword", Type: pf2e.ItemTypeWeapon,
			DamageType: pf2e.DamagePiercing,
		},
	})
	s.Require().NoError(err)
	s.True(output.Compatible, "multiple physical traits do not pin the damage type")
}

func (s *AdapterTestSuite) TestCompatibilityCatalogFinalSay() {
	adapter, err := New(&Config{
		CatalogClient: &fakeCatalog{
			weapons: map[string]*catalog.PropertyRuneData{
				"kin-warding": {
					Name:  "Kin-Warding Rune",
					Slug:  "kin-warding",
					Usage: "etched-onto-a-melee-weapon",
				},
			},
		},
	})
	s.Require().NoError(err)

	// A descriptor resolved elsewhere may carry no placement; the
	// catalog entry still gets the last word.
	desc := &engine.RuneDescriptor{Slug: "kin-warding", Kind: engine.RuneKindProperty}

	output, err := adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune:   desc,
		Target: &pf2e.Item{ID: "w", Name: "Javelin", Type: pf2e.ItemTypeWeapon, Thrown: true},
	})
	s.Require().NoError(err)
	s.False(output.Compatible)
	s.Equal(engine.ReasonCatalogRefused, output.Reason)

	output, err = adapter.EvaluateCompatibility(s.ctx, &engine.EvaluateCompatibilityInput{
		Rune:   desc,
		Target: &pf2e.Item{ID: "w2", Name: "Longsword", Type: pf2e.ItemTypeWeapon},
	})
	s.Require().NoError(err)
	s.True(output.Compatible)
}

func (s *AdapterTestSuite) TestRuneValueCarriesCatalogIdentity() {
	adapter, err := New(&Config{
		CatalogClient: &fakeCatalog{
			weapons: map[string]*catalog.PropertyRuneData{
				"flaming": {
					Name:    "Flaming Rune",
					Slug:    "flaming",
					Level:   8,
					PriceGP: 500,
					Traits:  []string{"Fire", "Magical"},
				},
			},
		},
	})
	s.Require().NoError(err)

	output, err := adapter.RuneValue(s.ctx, &engine.RuneValueInput{
		Kind:       engine.RuneKindProperty,
		Slug:       "flaming",
		TargetType: pf2e.ItemTypeWeapon,
	})
	s.Require().NoError(err)
	s.Equal("Flaming Rune", output.Name)
	s.Equal([]string{"fire", "magical"}, output.Traits)
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}
