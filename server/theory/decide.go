package theory

import (
	"fmt"

	"poker-trainer/server/engine"
)

// Archetype selects which grading rule set applies to a decision point.
type Archetype int

const (
	Opening   Archetype = iota // preflop, nothing to call
	FacingBet                  // preflop, facing a raise
	Postflop                   // board dealt
)

func (a Archetype) String() string {
	switch a {
	case Opening:
		return "opening"
	case FacingBet:
		return "facing-bet"
	case Postflop:
		return "postflop"
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// Situation is the theory-relevant slice of a scenario. The generator and
// the evaluator both reduce a scenario to a Situation and consult the same
// tables, so the best action embedded at generation time always agrees with
// the one the evaluator grades against.
type Situation struct {
	Notation string
	Position engine.Position
	Pot      float64
	Bet      float64
	OnBoard  bool                // true once board cards are dealt
	Made     engine.MadeCategory // only meaningful when OnBoard
	MadeDesc string              // library description, only when OnBoard
}

func (s Situation) Archetype() Archetype {
	switch {
	case s.OnBoard:
		return Postflop
	case s.Bet > 0:
		return FacingBet
	default:
		return Opening
	}
}

// BestAction returns the theoretically best action for a situation and the
// rationale behind it. Deterministic; pure table lookup.
func BestAction(s Situation) (engine.Action, string) {
	switch s.Archetype() {
	case Opening:
		return bestOpening(s)
	case FacingBet:
		return bestFacingBet(s)
	default:
		return bestPostflop(s)
	}
}

func bestOpening(s Situation) (engine.Action, string) {
	tier := StrengthTier(s.Notation)
	if InOpeningRange(s.Notation, s.Position) {
		return engine.Raise, fmt.Sprintf("%s is %s and should be raised from %s.",
			s.Notation, TierWord(tier), s.Position)
	}
	return engine.Fold, fmt.Sprintf("%s is too weak to open from %s.", s.Notation, s.Position)
}

func bestFacingBet(s Situation) (engine.Action, string) {
	odds := PotOdds(s.Pot, s.Bet)
	switch StrengthTier(s.Notation) {
	case TierPremium:
		return engine.Raise, fmt.Sprintf("%s is premium. Re-raising is the best play.", s.Notation)
	case TierStrong:
		return engine.Call, fmt.Sprintf("%s is strong enough to continue.", s.Notation)
	case TierPlayable:
		if odds < PreflopCallCutoff {
			return engine.Call, fmt.Sprintf("%s can call with good pot odds (%.0f%%).", s.Notation, odds*100)
		}
		return engine.Fold, fmt.Sprintf("%s is marginal. Folding is correct with poor odds (%.0f%%).", s.Notation, odds*100)
	default:
		return engine.Fold, fmt.Sprintf("%s is too weak to continue. Easy fold.", s.Notation)
	}
}

func bestPostflop(s Situation) (engine.Action, string) {
	odds := PotOdds(s.Pot, s.Bet)
	if s.Bet > 0 {
		switch {
		case s.Made >= engine.TwoPair:
			return engine.Raise, fmt.Sprintf("You have %s. Raise for value.", s.MadeDesc)
		case s.Made == engine.OnePair:
			if odds < PostflopCallCutoff {
				return engine.Call, fmt.Sprintf("With %s you can call at these odds (%.0f%%).", s.MadeDesc, odds*100)
			}
			return engine.Fold, fmt.Sprintf("%s is not worth %.0f%% pot odds. Fold.", s.MadeDesc, odds*100)
		default:
			return engine.Fold, fmt.Sprintf("You have only %s facing a bet. Fold.", s.MadeDesc)
		}
	}
	switch {
	case s.Made >= engine.TwoPair:
		return engine.Raise, fmt.Sprintf("You have %s. Bet for value.", s.MadeDesc)
	default:
		return engine.Check, fmt.Sprintf("You have %s. Checking keeps the pot small.", s.MadeDesc)
	}
}
