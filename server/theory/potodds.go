package theory

// Pot-odds thresholds: a call needs at least this much equity to break even.
// Preflop facing-action decisions use the loose cutoff; postflop pair-type
// calls use the tighter one.
const (
	PreflopCallCutoff  = 0.25
	PostflopCallCutoff = 1.0 / 3.0
)

// PotOdds returns the equity required to call: bet / (pot + bet).
// Zero when there is nothing to call.
func PotOdds(pot, bet float64) float64 {
	if bet <= 0 {
		return 0
	}
	return bet / (pot + bet)
}
