// Package theory holds the static strategic reference data: per-position
// opening ranges, starting-hand strength tiers, pot-odds math, and the
// best-action oracle shared by the scenario generator and the grading
// evaluator. Everything here is read-only after init and safe to share
// across sessions.
package theory

import "poker-trainer/server/engine"

func set(hands ...string) map[string]bool {
	m := make(map[string]bool, len(hands))
	for _, h := range hands {
		m[h] = true
	}
	return m
}

// Simplified GTO-style opening ranges for a 6-max table, keyed by
// starting-hand notation. Ranges widen from UTG (tightest) to BTN (widest);
// the blinds sit between CO and BTN. Adding a seat means adding an entry
// here, nothing else.
var openingRanges = map[engine.Position]map[string]bool{
	engine.UTG: set(
		// ~15% of hands
		"AA", "KK", "QQ", "JJ", "TT", "99",
		"AKs", "AQs", "AJs", "ATs",
		"AKo", "AQo",
		"KQs", "KJs",
	),
	engine.MP: set(
		// ~18% of hands
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A5s",
		"AKo", "AQo", "AJo", "ATo",
		"KQs", "KJs", "KTs", "K9s",
		"QJs", "QTs",
		"JTs", "J9s",
		"T9s",
	),
	engine.CO: set(
		// ~25% of hands
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQs", "KJs", "KTs", "K9s", "K8s",
		"KQo", "KJo",
		"QJs", "QTs", "Q9s",
		"JTs", "J9s", "J8s",
		"T9s", "T8s",
		"98s", "97s",
		"87s",
	),
	engine.BTN: set(
		// ~45% of hands
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s",
		"KQo", "KJo", "KTo", "K9o",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s",
		"QJo", "QTo",
		"JTs", "J9s", "J8s", "J7s",
		"JTo", "J9o",
		"T9s", "T8s", "T7s",
		"T9o",
		"98s", "97s", "96s",
		"98o",
		"87s", "86s",
		"76s",
		"65s",
	),
	engine.SB: set(
		// like CO but tighter, bad postflop position
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQs", "KJs", "KTs", "K9s",
		"KQo", "KJo",
		"QJs", "QTs", "Q9s",
		"JTs", "J9s",
		"T9s", "T8s",
		"98s",
		"87s",
	),
	engine.BB: set(
		// defense-shaped; mirrors SB for opening purposes
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQs", "KJs", "KTs", "K9s",
		"KQo", "KJo",
		"QJs", "QTs", "Q9s",
		"JTs", "J9s",
		"T9s", "T8s",
		"98s",
		"87s",
	),
}

// InOpeningRange reports whether a starting hand is profitable to open
// from the given seat.
func InOpeningRange(notation string, pos engine.Position) bool {
	return openingRanges[pos][notation]
}
