package engine

import "fmt"

// Notation returns standard starting-hand notation for two hole cards:
// "AA" for pairs, "AKs" suited, "AKo" offsuit. Higher rank comes first.
func Notation(a, b Card) string {
	if a.Rank < b.Rank {
		a, b = b, a
	}
	n := fmt.Sprintf("%c%c", rankSymbols[a.Rank], rankSymbols[b.Rank])
	switch {
	case a.Rank == b.Rank:
		return n
	case a.Suit == b.Suit:
		return n + "s"
	default:
		return n + "o"
	}
}

// AllNotations enumerates the 169 distinct starting-hand classes.
func AllNotations() []string {
	out := make([]string, 0, 169)
	for hi := 14; hi >= 2; hi-- {
		for lo := hi; lo >= 2; lo-- {
			if hi == lo {
				out = append(out, fmt.Sprintf("%c%c", rankSymbols[hi], rankSymbols[lo]))
				continue
			}
			out = append(out,
				fmt.Sprintf("%c%cs", rankSymbols[hi], rankSymbols[lo]),
				fmt.Sprintf("%c%co", rankSymbols[hi], rankSymbols[lo]),
			)
		}
	}
	return out
}
