package pf2e

// Fundamental rune rank bounds. Striking and resilient run 1-4 (base,
// greater, major, mythic); reinforcing runs 1-6 (minor through supreme).
const (
	MaxPotencyRank     = 4
	MaxStrikingRank    = 4
	MaxResilientRank   = 4
	MaxReinforcingRank = 6
)

// strikingKeys maps striking ranks to the host's string-keyed encoding
var strikingKeys = map[int]string{
	1: "striking",
	2: "greaterStriking",
	3: "majorStriking",
	4: "mythicStriking",
}

// resilientKeys maps resilient ranks to the host's string-keyed encoding
var resilientKeys = map[int]string{
	1: "resilient",
	2: "greaterResilient",
	3: "majorResilient",
	4: "mythicResilient",
}

// reinforcingTiers maps reinforcing ranks to their named tiers
var reinforcingTiers = map[int]string{
	1: "minor",
	2: "lesser",
	3: "moderate",
	4: "greater",
	5: "major",
	6: "supreme",
}

func invert(m map[int]string) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

var (
	strikingRanks    = invert(strikingKeys)
	resilientRanks   = invert(resilientKeys)
	reinforcingRanks = invert(reinforcingTiers)
)

// StrikingKey returns the host's string key for a striking rank, empty for 0
// or out-of-range values.
func StrikingKey(rank int) string {
	return strikingKeys[rank]
}

// ResilientKey returns the host's string key for a resilient rank, empty for
// 0 or out-of-range values.
func ResilientKey(rank int) string {
	return resilientKeys[rank]
}

// ReinforcingTier returns the named tier for a reinforcing rank, empty for 0
// or out-of-range values.
func ReinforcingTier(rank int) string {
	return reinforcingTiers[rank]
}

// StrikingRank resolves a string-keyed striking value to its rank, 0 when
// unknown.
func StrikingRank(key string) int {
	return strikingRanks[key]
}

// ResilientRank resolves a string-keyed resilient value to its rank, 0 when
// unknown.
func ResilientRank(key string) int {
	return resilientRanks[key]
}

// ReinforcingRank resolves a named reinforcing tier to its rank, 0 when
// unknown.
func ReinforcingRank(tier string) int {
	return reinforcingRanks[tier]
}
