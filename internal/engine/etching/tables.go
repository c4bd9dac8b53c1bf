package etching

import (
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// runeNameDefinition is a built-in classification entry keyed by exact
// display name. Localized display names (the German client is common at the
// tables this shipped for) alias the same definitions.
type runeNameDefinition struct {
	targetTypes []pf2e.ItemType
	propertyKey string
	potency     int
	striking    int
	resilient   int
	reinforcing int
}

func weaponProperty(key string) runeNameDefinition {
	return runeNameDefinition{targetTypes: []pf2e.ItemType{pf2e.ItemTypeWeapon}, propertyKey: key}
}

func weaponPotency(rank int) runeNameDefinition {
	return runeNameDefinition{targetTypes: []pf2e.ItemType{pf2e.ItemTypeWeapon}, potency: rank}
}

func armorPotency(rank int) runeNameDefinition {
	return runeNameDefinition{targetTypes: []pf2e.ItemType{pf2e.ItemTypeArmor}, potency: rank}
}

func anyPotency(rank int) runeNameDefinition {
	return runeNameDefinition{
		targetTypes: []pf2e.ItemType{pf2e.ItemTypeWeapon, pf2e.ItemTypeArmor},
		potency:     rank,
	}
}

var runeNameMap = map[string]runeNameDefinition{
	"Weapon Potency Rune (+1)": weaponPotency(1),
	"Weapon Potency Rune (+2)": weaponPotency(2),
	"Weapon Potency Rune (+3)": weaponPotency(3),
	"Armor Potency Rune (+1)":  armorPotency(1),
	"Armor Potency Rune (+2)":  armorPotency(2),
	"Armor Potency Rune (+3)":  armorPotency(3),
	"Potency Rune (+1)":        anyPotency(1),
	"Potency Rune (+2)":        anyPotency(2),
	"Potency Rune (+3)":        anyPotency(3),
	"Waffen-Potenzrune +1":     weaponPotency(1),
	"Waffen-Potenzrune +2":     weaponPotency(2),
	"Waffen-Potenzrune +3":     weaponPotency(3),
	"Rüstungs-Potenzrune +1":   armorPotency(1),
	"Rüstungs-Potenzrune +2":   armorPotency(2),
	"Rüstungs-Potenzrune +3":   armorPotency(3),
	"Potenzrune +1":            anyPotency(1),
	"Potenzrune +2":            anyPotency(2),
	"Potenzrune +3":            anyPotency(3),

	"Flaming Rune":       weaponProperty("flaming"),
	"Frost Rune":         weaponProperty("frost"),
	"Shock Rune":         weaponProperty("shock"),
	"Thundering Rune":    weaponProperty("thundering"),
	"Corrosive Rune":     weaponProperty("corrosive"),
	"Ghost Touch Rune":   weaponProperty("ghost-touch"),
	"Returning Rune":     weaponProperty("returning"),
	"Shifting Rune":      weaponProperty("shifting"),
	"Speed Rune":         weaponProperty("speed"),
	"Vorpal Rune":        weaponProperty("vorpal"),
	"Wounding Rune":      weaponProperty("wounding"),
	"Anarchic Rune":      weaponProperty("anarchic"),
	"Axiomatic Rune":     weaponProperty("axiomatic"),
	"Holy Rune":          weaponProperty("holy"),
	"Unholy Rune":        weaponProperty("unholy"),
	"Disrupting Rune":    weaponProperty("disrupting"),
	"Grievous Rune":      weaponProperty("grievous"),
	"Keen Rune":          weaponProperty("keen"),
	"Brilliant Rune":     weaponProperty("brilliant"),
	"Merciful Rune":      weaponProperty("merciful"),
	"Fanged Rune":        weaponProperty("fanged"),
	"Anchoring Rune":     weaponProperty("anchoring"),
	"Impactful Rune":     weaponProperty("impactful"),
	"Dancing Rune":       weaponProperty("dancing"),
	"Spell Storing Rune": weaponProperty("spell-storing"),
	"Spell-Storing Rune": weaponProperty("spell-storing"),

	// German client display names
	"Flammenrune":           weaponProperty("flaming"),
	"Frostrune":             weaponProperty("frost"),
	"Schockrune":            weaponProperty("shock"),
	"Donnernde Rune":        weaponProperty("thundering"),
	"Geisterberührungsrune": weaponProperty("ghost-touch"),
	"Rückkehrrune":          weaponProperty("returning"),
	"Verwandlungsrune":      weaponProperty("shifting"),
	"Geschwindigkeitsrune":  weaponProperty("speed"),
	"Vorpalrune":            weaponProperty("vorpal"),
	"Wundrune":              weaponProperty("wounding"),
	"Heilige Rune":          weaponProperty("holy"),
	"Unheilige Rune":        weaponProperty("unholy"),
	"Störende Rune":         weaponProperty("disrupting"),
	"Grausame Rune":         weaponProperty("grievous"),
	"Scharfe Rune":          weaponProperty("keen"),
	"Brillante Rune":        weaponProperty("brilliant"),
	"Barmherzige Rune":      weaponProperty("merciful"),
	"Fangrune":              weaponProperty("fanged"),
}

// weaponPropertySlugs is the built-in fallback set of known weapon property
// rune slugs, used when the catalog oracle is absent.
var weaponPropertySlugs = map[string]struct{}{
	"ancestral-echoing":       {},
	"anchoring":               {},
	"anarchic":                {},
	"ashen":                   {},
	"astral":                  {},
	"authorized":              {},
	"axiomatic":               {},
	"bane":                    {},
	"bloodbane":               {},
	"bloodthirsty":            {},
	"bolkas-blessing":         {},
	"brilliant":               {},
	"called":                  {},
	"coating":                 {},
	"conducting":              {},
	"corrosive":               {},
	"crushing":                {},
	"cunning":                 {},
	"dancing":                 {},
	"decaying":                {},
	"deathdrinking":           {},
	"demolishing":             {},
	"disrupting":              {},
	"earthbinding":            {},
	"energizing":              {},
	"extending":               {},
	"fanged":                  {},
	"fearsome":                {},
	"flaming":                 {},
	"flickering":              {},
	"flurrying":               {},
	"frost":                   {},
	"ghost-touch":             {},
	"giant-killing":           {},
	"greater-anchoring":       {},
	"greater-ashen":           {},
	"greater-astral":          {},
	"greater-bloodbane":       {},
	"greater-bolkas-blessing": {},
	"greater-brilliant":       {},
	"greater-corrosive":       {},
	"greater-crushing":        {},
	"greater-decaying":        {},
	"greater-disrupting":      {},
	"greater-extending":       {},
	"greater-fanged":          {},
	"greater-fearsome":        {},
	"greater-flaming":         {},
	"greater-frost":           {},
	"greater-giant-killing":   {},
	"greater-hauling":         {},
	"greater-impactful":       {},
	"greater-kolss-oath":      {},
	"greater-rooting":         {},
	"greater-shock":           {},
	"greater-thundering":      {},
	"greater-trudds-strength": {},
	"grievous":                {},
	"hauling":                 {},
	"holy":                    {},
	"hooked":                  {},
	"hopeful":                 {},
	"impactful":               {},
	"impossible":              {},
	"keen":                    {},
	"kin-warding":             {},
	"kolss-oath":              {},
	"major-fanged":            {},
	"major-rooting":           {},
	"merciful":                {},
	"nightmare":               {},
	"pacifying":               {},
	"returning":               {},
	"rooting":                 {},
	"serrating":               {},
	"shifting":                {},
	"shock":                   {},
	"shockwave":               {},
	"speed":                   {},
	"spell-storing":           {},
	"swarming":                {},
	"thundering":              {},
	"trudds-strength":         {},
	"true-rooting":            {},
	"underwater":              {},
	"unholy":                  {},
	"vorpal":                  {},
	"wounding":                {},
}

// armorPropertySlugs is the built-in fallback set of known armor property
// rune slugs.
var armorPropertySlugs = map[string]struct{}{
	"acid-resistant":                {},
	"advancing":                     {},
	"aim-aiding":                    {},
	"antimagic":                     {},
	"assisting":                     {},
	"bitter":                        {},
	"cold-resistant":                {},
	"deathless":                     {},
	"electricity-resistant":         {},
	"energy-adaptive":               {},
	"ethereal":                      {},
	"fire-resistant":                {},
	"fortification":                 {},
	"glamered":                      {},
	"gliding":                       {},
	"greater-acid-resistant":        {},
	"greater-advancing":             {},
	"greater-cold-resistant":        {},
	"greater-dread":                 {},
	"greater-electricity-resistant": {},
	"greater-fire-resistant":        {},
	"greater-fortification":         {},
	"greater-invisibility":          {},
	"greater-ready":                 {},
	"greater-shadow":                {},
	"greater-slick":                 {},
	"greater-stanching":             {},
	"greater-quenching":             {},
	"greater-swallow-spike":         {},
	"greater-winged":                {},
	"immovable":                     {},
	"implacable":                    {},
	"invisibility":                  {},
	"lesser-dread":                  {},
	"magnetizing":                   {},
	"major-quenching":               {},
	"major-shadow":                  {},
	"major-slick":                   {},
	"major-stanching":               {},
	"major-swallow-spike":           {},
	"malleable":                     {},
	"misleading":                    {},
	"moderate-dread":                {},
	"portable":                      {},
	"quenching":                     {},
	"raiment":                       {},
	"ready":                         {},
	"rock-braced":                   {},
	"shadow":                        {},
	"sinister-knight":               {},
	"size-changing":                 {},
	"slick":                         {},
	"soaring":                       {},
	"spellwatch":                    {},
	"stanching":                     {},
	"swallow-spike":                 {},
	"true-quenching":                {},
	"true-stanching":                {},
	"winged":                        {},
}

// fundamentalSlugDef maps a fundamental rune slug to its field and rank
type fundamentalSlugDef struct {
	field string
	rank  int
}

// fundamentalSlugs is the built-in fallback mapping of fundamental rune
// slugs. Striking/resilient run base/greater/major/mythic; reinforcing uses
// the six named tiers.
var fundamentalSlugs = map[string]fundamentalSlugDef{
	"striking":             {fieldStriking, 1},
	"greater-striking":     {fieldStriking, 2},
	"major-striking":       {fieldStriking, 3},
	"mythic-striking":      {fieldStriking, 4},
	"resilient":            {fieldResilient, 1},
	"greater-resilient":    {fieldResilient, 2},
	"major-resilient":      {fieldResilient, 3},
	"mythic-resilient":     {fieldResilient, 4},
	"reinforcing":          {fieldReinforcing, 1},
	"minor-reinforcing":    {fieldReinforcing, 1},
	"lesser-reinforcing":   {fieldReinforcing, 2},
	"moderate-reinforcing": {fieldReinforcing, 3},
	"greater-reinforcing":  {fieldReinforcing, 4},
	"major-reinforcing":    {fieldReinforcing, 5},
	"supreme-reinforcing":  {fieldReinforcing, 6},
}

const (
	fieldPotency     = "potency"
	fieldStriking    = "striking"
	fieldResilient   = "resilient"
	fieldReinforcing = "reinforcing"
)

// runeValue is a level/price pair from the built-in fallback tables
type runeValue struct {
	level   int
	priceGP int
}

// weaponPropertyValues is the fallback price table for weapon property
// runes. Unlisted slugs (third-party content) resolve as unknown/free.
var weaponPropertyValues = map[string]runeValue{
	"anarchic":              {11, 1400},
	"ancestral-echoing":     {15, 9500},
	"anchoring":             {10, 900},
	"ashen":                 {9, 700},
	"astral":                {8, 450},
	"authorized":            {3, 50},
	"axiomatic":             {11, 1400},
	"bane":                  {4, 100},
	"bloodbane":             {8, 475},
	"bloodthirsty":          {16, 8500},
	"brilliant":             {12, 2000},
	"called":                {7, 350},
	"coating":               {9, 700},
	"conducting":            {7, 300},
	"corrosive":             {8, 500},
	"crushing":              {3, 50},
	"cunning":               {5, 140},
	"dancing":               {13, 2700},
	"deathdrinking":         {7, 360},
	"decaying":              {4, 75},
	"demolishing":           {6, 225},
	"disrupting":            {5, 150},
	"earthbinding":          {5, 125},
	"energizing":            {6, 250},
	"extending":             {7, 700},
	"fanged":                {2, 30},
	"fearsome":              {5, 160},
	"flaming":               {8, 500},
	"flickering":            {6, 250},
	"flurrying":             {7, 360},
	"frost":                 {8, 500},
	"ghost-touch":           {4, 75},
	"giant-killing":         {9, 750},
	"greater-anchoring":     {18, 22000},
	"greater-ashen":         {16, 9000},
	"greater-astral":        {15, 6000},
	"greater-bloodbane":     {13, 2800},
	"greater-brilliant":     {18, 24000},
	"greater-corrosive":     {15, 6500},
	"greater-crushing":      {9, 650},
	"greater-decaying":      {10, 1000},
	"greater-disrupting":    {14, 4300},
	"greater-extending":     {13, 3000},
	"greater-fanged":        {8, 425},
	"greater-fearsome":      {12, 2000},
	"greater-flaming":       {15, 6500},
	"greater-frost":         {15, 6500},
	"greater-giant-killing": {15, 6000},
	"greater-hauling":       {11, 1300},
	"greater-impactful":     {17, 15000},
	"greater-rooting":       {11, 1400},
	"greater-shock":         {15, 6500},
	"greater-thundering":    {15, 6500},
	"grievous":              {9, 700},
	"hauling":               {6, 225},
	"holy":                  {11, 1400},
	"hooked":                {5, 140},
	"hopeful":               {11, 1200},
	"impactful":             {10, 1000},
	"impossible":            {20, 70000},
	"keen":                  {13, 3000},
	"kin-warding":           {3, 52},
	"major-fanged":          {15, 6000},
	"major-rooting":         {15, 6500},
	"merciful":              {4, 70},
	"nightmare":             {9, 700},
	"pacifying":             {5, 150},
	"returning":             {3, 55},
	"rooting":               {7, 360},
	"serrating":             {10, 1000},
	"shifting":              {6, 225},
	"shock":                 {8, 500},
	"shockwave":             {13, 3000},
	"speed":                 {16, 10000},
	"spell-storing":         {13, 2700},
	"swarming":              {9, 700},
	"thundering":            {8, 500},
	"true-rooting":          {19, 40000},
	"underwater":            {3, 50},
	"unholy":                {11, 1400},
	"vorpal":                {17, 15000},
	"wounding":              {7, 340},
}

// armorPropertyValues is the fallback price table for armor property runes
var armorPropertyValues = map[string]runeValue{
	"acid-resistant":                {8, 420},
	"advancing":                     {9, 625},
	"aim-aiding":                    {6, 225},
	"antimagic":                     {15, 6500},
	"assisting":                     {5, 125},
	"bitter":                        {9, 700},
	"cold-resistant":                {8, 420},
	"deathless":                     {7, 330},
	"electricity-resistant":         {8, 420},
	"energy-adaptive":               {6, 225},
	"ethereal":                      {17, 13500},
	"fire-resistant":                {8, 420},
	"fortification":                 {12, 2000},
	"glamered":                      {5, 140},
	"gliding":                       {8, 450},
	"greater-acid-resistant":        {12, 1650},
	"greater-advancing":             {16, 8000},
	"greater-cold-resistant":        {12, 1650},
	"greater-dread":                 {18, 21000},
	"greater-electricity-resistant": {12, 1650},
	"greater-fire-resistant":        {12, 1650},
	"greater-fortification":         {18, 24000},
	"greater-invisibility":          {10, 1000},
	"greater-ready":                 {11, 1200},
	"greater-shadow":                {9, 650},
	"greater-slick":                 {8, 450},
	"greater-stanching":             {9, 600},
	"greater-quenching":             {10, 1000},
	"greater-swallow-spike":         {9, 625},
	"greater-winged":                {19, 35000},
	"immovable":                     {12, 1800},
	"implacable":                    {11, 1200},
	"invisibility":                  {8, 500},
	"lesser-dread":                  {6, 220},
	"magnetizing":                   {10, 900},
	"major-quenching":               {14, 4500},
	"major-shadow":                  {17, 14000},
	"major-slick":                   {16, 9000},
	"major-stanching":               {13, 2500},
	"major-swallow-spike":           {13, 2750},
	"malleable":                     {9, 600},
	"misleading":                    {16, 8000},
	"moderate-dread":                {12, 1800},
	"portable":                      {9, 660},
	"quenching":                     {6, 250},
	"raiment":                       {5, 140},
	"ready":                         {6, 200},
	"rock-braced":                   {13, 3000},
	"shadow":                        {5, 55},
	"sinister-knight":               {14, 4500},
	"size-changing":                 {10, 1000},
	"slick":                         {5, 45},
	"soaring":                       {14, 3750},
	"spellwatch":                    {13, 3000},
	"stanching":                     {5, 130},
	"swallow-spike":                 {6, 200},
	"true-quenching":                {18, 24000},
	"true-stanching":                {17, 12500},
	"winged":                        {13, 2500},
}

// Fundamental rune value tables, indexed by rank.
var (
	weaponPotencyValues = map[int]runeValue{
		1: {2, 35},
		2: {10, 935},
		3: {16, 8935},
		4: {20, 70000},
	}
	armorPotencyValues = map[int]runeValue{
		1: {5, 160},
		2: {11, 1060},
		3: {18, 20560},
		4: {20, 70000},
	}
	strikingValues = map[int]runeValue{
		1: {4, 65},
		2: {12, 1065},
		3: {19, 31065},
		4: {20, 80000},
	}
	resilientValues = map[int]runeValue{
		1: {8, 340},
		2: {14, 3440},
		3: {20, 49440},
		4: {20, 100000},
	}
	reinforcingValues = map[int]runeValue{
		1: {4, 75},
		2: {7, 300},
		3: {10, 900},
		4: {13, 2500},
		5: {16, 8000},
		6: {19, 55000},
	}
)

// craftingDCByLevel is the level-to-DC table for the crafting-check gate.
// Monotonically non-decreasing by construction; levels outside the table
// clamp to the nearest edge.
var craftingDCByLevel = []int{
	14, // 0
	15, // 1
	16, // 2
	18, // 3
	19, // 4
	20, // 5
	22, // 6
	23, // 7
	24, // 8
	26, // 9
	27, // 10
	28, // 11
	30, // 12
	31, // 13
	32, // 14
	34, // 15
	35, // 16
	36, // 17
	38, // 18
	39, // 19
	40, // 20
}
