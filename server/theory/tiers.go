package theory

// Starting-hand strength tiers, 1 (premium) through 5 (trash).
const (
	TierPremium  = 1
	TierStrong   = 2
	TierPlayable = 3
	TierMarginal = 4
	TierWeak     = 5
)

var tierSets = map[int]map[string]bool{
	TierPremium: set("AA", "KK", "QQ", "AKs", "AKo"),
	TierStrong:  set("JJ", "TT", "99", "AQs", "AJs", "AQo", "KQs", "AJo"),
	TierPlayable: set(
		"88", "77", "66", "55",
		"ATs", "A9s", "A8s",
		"KJs", "KTs", "KQo",
		"QJs", "QTs",
		"JTs",
	),
	TierMarginal: set(
		"44", "33", "22",
		"A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"ATo", "A9o",
		"K9s", "K8s",
		"KJo", "KTo",
		"Q9s", "QJo",
		"J9s", "JTo",
		"T9s", "T8s",
		"98s", "97s",
		"87s", "86s",
		"76s", "75s",
		"65s",
	),
}

var tierWords = map[int]string{
	TierPremium:  "a premium hand",
	TierStrong:   "a strong hand",
	TierPlayable: "a playable hand",
	TierMarginal: "a marginal hand",
	TierWeak:     "a weak hand",
}

// StrengthTier classifies a starting hand into tiers 1..5.
// Anything outside the explicit tier sets is tier 5.
func StrengthTier(notation string) int {
	for tier := TierPremium; tier <= TierMarginal; tier++ {
		if tierSets[tier][notation] {
			return tier
		}
	}
	return TierWeak
}

// TierWord is the phrase used in explanations ("a premium hand").
func TierWord(tier int) string { return tierWords[tier] }
