// Package grading turns (scenario, chosen action) pairs into graded
// verdicts with theory-backed explanations. Evaluation is a pure function:
// same inputs, same verdict, no I/O.
package grading

import (
	"errors"
	"fmt"

	"poker-trainer/server/engine"
	"poker-trainer/server/scenario"
	"poker-trainer/server/theory"
)

// Grade is a decision quality tier, ordered worst to best.
type Grade int

const (
	Blunder Grade = iota + 1
	Mistake
	Inaccurate
	Good
	Excellent
)

var gradeLabels = map[Grade]string{
	Excellent:  "Excellent",
	Good:       "Good",
	Inaccurate: "Inaccurate",
	Mistake:    "Mistake",
	Blunder:    "Blunder",
}

var gradeDescriptions = map[Grade]string{
	Excellent:  "The best or one of the best moves",
	Good:       "A solid move, close to optimal",
	Inaccurate: "Playable but not ideal",
	Mistake:    "A clear error",
	Blunder:    "A serious mistake",
}

func (g Grade) Label() string       { return gradeLabels[g] }
func (g Grade) Description() string { return gradeDescriptions[g] }
func (g Grade) Value() int          { return int(g) }

func (g Grade) String() string {
	if s, ok := gradeLabels[g]; ok {
		return s
	}
	return fmt.Sprintf("grade(%d)", int(g))
}

// Verdict is the graded outcome of one decision.
type Verdict struct {
	Chosen      engine.Action
	Best        engine.Action
	Grade       Grade
	Explanation string
}

var (
	// ErrInvalidAction means the chosen action is not legal in the scenario.
	ErrInvalidAction = errors.New("action not available in scenario")
	// ErrTheoryGap means no grading rule set covers the scenario archetype.
	// It indicates the theory tables need extending, never a neutral grade.
	ErrTheoryGap = errors.New("no grading rules for scenario archetype")
)

// Evaluate grades a chosen action against the scenario's embedded theory.
// "bet" and "raise" are interchangeable on input.
func Evaluate(s *scenario.Scenario, chosen engine.Action) (Verdict, error) {
	if chosen == engine.Bet {
		chosen = engine.Raise
	}
	if !s.Allows(chosen) {
		return Verdict{}, fmt.Errorf("%w: %q", ErrInvalidAction, chosen)
	}

	sit := s.Situation()
	best, rationale := theory.BestAction(sit)
	v := Verdict{Chosen: chosen, Best: best}

	var err error
	switch sit.Archetype() {
	case theory.Opening:
		v.Grade, v.Explanation = gradeOpening(sit, chosen, best, rationale)
	case theory.FacingBet:
		v.Grade, v.Explanation = gradeFacingBet(sit, chosen, rationale)
	case theory.Postflop:
		v.Grade, v.Explanation, err = gradePostflop(sit, chosen, rationale)
	default:
		err = ErrTheoryGap
	}
	if err != nil {
		return Verdict{}, err
	}
	return v, nil
}

// gradeOpening covers unopened pots: raise your range, fold the rest,
// never limp.
func gradeOpening(sit theory.Situation, chosen, best engine.Action, rationale string) (Grade, string) {
	hand := sit.Notation
	pos := sit.Position
	tier := theory.StrengthTier(hand)
	inRange := theory.InOpeningRange(hand, pos)

	if chosen == best {
		return Excellent, rationale
	}
	switch chosen {
	case engine.Raise: // best was fold
		if tier <= 3 {
			return Inaccurate, fmt.Sprintf("%s is marginal from %s. Folding is more standard, but raising can work.", hand, pos)
		}
		if tier == 5 && pos == engine.UTG {
			return Blunder, fmt.Sprintf("Raising %s from under the gun is as bad as it gets. The weakest hands from the earliest seat should always be folded.", hand)
		}
		return Mistake, fmt.Sprintf("%s is too weak to raise from %s. This hand should be folded.", hand, pos)
	case engine.Fold: // best was raise
		switch tier {
		case 1:
			return Blunder, fmt.Sprintf("Folding %s is a serious mistake! This is a premium hand that should always be raised.", hand)
		case 2:
			return Mistake, fmt.Sprintf("%s is a strong hand that should be raised from %s.", hand, pos)
		}
		return Inaccurate, fmt.Sprintf("%s should be raised from %s, though it's not a critical error to fold.", hand, pos)
	case engine.Check:
		if best == engine.Fold {
			return Good, fmt.Sprintf("Checking %s costs nothing, though folding to any action is the plan.", hand)
		}
		// best was raise
		switch {
		case inRange && tier >= 3:
			return Good, fmt.Sprintf("Checking %s is passive but cheap. Raising takes the initiative.", hand)
		case tier == 2:
			return Inaccurate, fmt.Sprintf("%s is strong enough to raise from %s. Checking gives up value.", hand, pos)
		}
		return Mistake, fmt.Sprintf("Checking %s wastes a premium hand. Raise for value every time.", hand)
	}
	return Mistake, "Unexpected action for this situation."
}

// gradeFacingBet covers preflop decisions against a live raise, keyed on
// hand strength tier with pot odds breaking ties for playable hands.
func gradeFacingBet(sit theory.Situation, chosen engine.Action, rationale string) (Grade, string) {
	hand := sit.Notation
	tier := theory.StrengthTier(hand)
	odds := theory.PotOdds(sit.Pot, sit.Bet)

	switch tier {
	case 1:
		switch chosen {
		case engine.Raise:
			return Excellent, rationale
		case engine.Call:
			return Good, fmt.Sprintf("Calling with %s is acceptable, though re-raising is more aggressive.", hand)
		}
		return Blunder, fmt.Sprintf("Never fold %s to a single raise! This is a premium hand.", hand)
	case 2:
		switch chosen {
		case engine.Call:
			return Excellent, rationale
		case engine.Raise:
			return Good, fmt.Sprintf("%s is strong enough to continue. Re-raising is a fine aggressive line.", hand)
		}
		return Mistake, fmt.Sprintf("%s is too strong to fold to a single raise.", hand)
	case 3:
		if odds < theory.PreflopCallCutoff {
			switch chosen {
			case engine.Call:
				return Excellent, rationale
			case engine.Fold:
				return Inaccurate, fmt.Sprintf("Folding is acceptable but you're getting good odds (%.0f%%) to call with %s.", odds*100, hand)
			}
			return Inaccurate, fmt.Sprintf("Re-raising %s is aggressive but can work.", hand)
		}
		switch chosen {
		case engine.Fold:
			return Excellent, rationale
		case engine.Call:
			return Inaccurate, fmt.Sprintf("Calling %s is loose with %.0f%% pot odds, but not terrible.", hand, odds*100)
		}
		return Inaccurate, fmt.Sprintf("Re-raising %s here is aggressive but can work.", hand)
	}
	// tiers 4 and 5
	if chosen == engine.Fold {
		return Excellent, rationale
	}
	return Mistake, fmt.Sprintf("%s is not strong enough to continue against a raise.", hand)
}

// gradePostflop grades on made-hand class: two pair or better plays fast,
// one pair plays pot odds, no pair gives up.
func gradePostflop(sit theory.Situation, chosen engine.Action, rationale string) (Grade, string, error) {
	made := sit.MadeDesc
	odds := theory.PotOdds(sit.Pot, sit.Bet)

	if sit.Bet <= 0 {
		switch {
		case sit.Made >= engine.TwoPair:
			switch chosen {
			case engine.Raise:
				return Excellent, rationale, nil
			case engine.Check:
				return Good, fmt.Sprintf("Checking %s traps occasionally, but betting builds the pot you want.", made), nil
			}
			return Blunder, fmt.Sprintf("Folding %s when you could see a free card is throwing the hand away.", made), nil
		case sit.Made == engine.OnePair:
			switch chosen {
			case engine.Check:
				return Excellent, rationale, nil
			case engine.Raise:
				return Good, fmt.Sprintf("Betting %s can take the pot down, though checking keeps the pot small.", made), nil
			}
			return Mistake, fmt.Sprintf("Folding %s for free is giving up equity you paid for.", made), nil
		case sit.Made == engine.HighCard:
			switch chosen {
			case engine.Check:
				return Excellent, rationale, nil
			case engine.Raise:
				return Inaccurate, fmt.Sprintf("Bluffing with %s can work, but checking is the standard line.", made), nil
			}
			return Mistake, "Never fold when you can check and see a free card.", nil
		}
		return 0, "", fmt.Errorf("%w: unbet pot with %s", ErrTheoryGap, made)
	}

	switch {
	case sit.Made >= engine.TwoPair:
		switch chosen {
		case engine.Raise:
			return Excellent, rationale, nil
		case engine.Call:
			return Good, fmt.Sprintf("Calling with %s is safe, but raising charges worse hands more.", made), nil
		}
		return Blunder, fmt.Sprintf("Folding %s to one bet is a serious mistake.", made), nil
	case sit.Made == engine.OnePair:
		if odds < theory.PostflopCallCutoff {
			switch chosen {
			case engine.Call:
				return Excellent, rationale, nil
			case engine.Raise:
				return Inaccurate, fmt.Sprintf("Raising %s turns a bluff-catcher into a bluff. Calling is the standard line.", made), nil
			}
			return Inaccurate, fmt.Sprintf("Folding %s is tight when you're getting %.0f%% pot odds.", made, odds*100), nil
		}
		switch chosen {
		case engine.Fold:
			return Excellent, rationale, nil
		case engine.Call:
			return Inaccurate, fmt.Sprintf("Calling %s at %.0f%% pot odds is paying too much to catch bluffs.", made, odds*100), nil
		}
		return Mistake, fmt.Sprintf("Raising %s into a big bet compounds the error.", made), nil
	case sit.Made == engine.HighCard:
		if chosen == engine.Fold {
			return Excellent, rationale, nil
		}
		return Mistake, fmt.Sprintf("Putting chips in with %s against a bet is burning money.", made), nil
	}
	return 0, "", fmt.Errorf("%w: facing bet with %s", ErrTheoryGap, made)
}
