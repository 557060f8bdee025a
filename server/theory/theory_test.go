package theory

import (
	"math"
	"testing"

	"poker-trainer/server/engine"
)

func TestStrengthTiers(t *testing.T) {
	cases := map[string]int{
		"AA":  1,
		"AKs": 1,
		"AKo": 1,
		"JJ":  2,
		"AQo": 2,
		"88":  3,
		"KQo": 3,
		"A5s": 4,
		"98s": 4,
		"72o": 5,
		"J4o": 5,
	}
	for hand, want := range cases {
		if got := StrengthTier(hand); got != want {
			t.Fatalf("StrengthTier(%s) = %d, want %d", hand, got, want)
		}
	}
}

// Opening ranges must widen monotonically with position: anything UTG opens,
// every later non-blind seat opens too.
func TestOpeningRangesWidenByPosition(t *testing.T) {
	order := []engine.Position{engine.UTG, engine.MP, engine.CO, engine.BTN}
	for _, hand := range engine.AllNotations() {
		for i := 1; i < len(order); i++ {
			if InOpeningRange(hand, order[i-1]) && !InOpeningRange(hand, order[i]) {
				t.Fatalf("%s opens from %s but not from later seat %s", hand, order[i-1], order[i])
			}
		}
	}
}

func TestOpeningRangeSpotChecks(t *testing.T) {
	if !InOpeningRange("AA", engine.UTG) {
		t.Fatalf("AA must open from UTG")
	}
	if InOpeningRange("72o", engine.BTN) {
		t.Fatalf("72o must never open, even from BTN")
	}
	if InOpeningRange("98s", engine.UTG) {
		t.Fatalf("98s is too weak for a UTG open")
	}
	if !InOpeningRange("98s", engine.BTN) {
		t.Fatalf("98s opens from the button")
	}
}

func TestPotOdds(t *testing.T) {
	if got := PotOdds(4.5, 3.0); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("PotOdds(4.5, 3.0) = %f, want 0.4", got)
	}
	if got := PotOdds(9.0, 3.0); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("PotOdds(9.0, 3.0) = %f, want 0.25", got)
	}
	if got := PotOdds(1.5, 0); got != 0 {
		t.Fatalf("PotOdds with no bet = %f, want 0", got)
	}
}

func TestBestActionOpening(t *testing.T) {
	act, why := BestAction(Situation{Notation: "AA", Position: engine.BTN, Pot: 1.5})
	if act != engine.Raise {
		t.Fatalf("AA on BTN unopened: best = %s, want raise", act)
	}
	if why == "" {
		t.Fatalf("missing rationale")
	}

	act, _ = BestAction(Situation{Notation: "72o", Position: engine.UTG, Pot: 1.5})
	if act != engine.Fold {
		t.Fatalf("72o UTG unopened: best = %s, want fold", act)
	}
}

func TestBestActionFacingBet(t *testing.T) {
	// Premium re-raises.
	act, _ := BestAction(Situation{Notation: "KK", Position: engine.BTN, Pot: 4.5, Bet: 3.0})
	if act != engine.Raise {
		t.Fatalf("KK facing raise: best = %s, want raise", act)
	}
	// Strong calls.
	act, _ = BestAction(Situation{Notation: "99", Position: engine.BTN, Pot: 4.5, Bet: 3.0})
	if act != engine.Call {
		t.Fatalf("99 facing raise: best = %s, want call", act)
	}
	// Playable hand folds when the price is wrong...
	act, _ = BestAction(Situation{Notation: "66", Position: engine.MP, Pot: 4.5, Bet: 3.0})
	if act != engine.Fold {
		t.Fatalf("66 at 40%% pot odds: best = %s, want fold", act)
	}
	// ...and calls when it is right.
	act, _ = BestAction(Situation{Notation: "66", Position: engine.MP, Pot: 10.0, Bet: 3.0})
	if act != engine.Call {
		t.Fatalf("66 at 23%% pot odds: best = %s, want call", act)
	}
	// Weak hands fold.
	act, _ = BestAction(Situation{Notation: "72o", Position: engine.BB, Pot: 4.5, Bet: 3.0})
	if act != engine.Fold {
		t.Fatalf("72o facing raise: best = %s, want fold", act)
	}
}

func TestBestActionPostflop(t *testing.T) {
	// Two pair bets when checked to.
	act, _ := BestAction(Situation{OnBoard: true, Made: engine.TwoPair, MadeDesc: "two pair", Pot: 6.5})
	if act != engine.Raise {
		t.Fatalf("two pair, unbet pot: best = %s, want raise", act)
	}
	// One pair calls a small bet.
	act, _ = BestAction(Situation{OnBoard: true, Made: engine.OnePair, MadeDesc: "a pair", Pot: 10.0, Bet: 3.0})
	if act != engine.Call {
		t.Fatalf("one pair at 23%% odds: best = %s, want call", act)
	}
	// One pair folds to a big bet.
	act, _ = BestAction(Situation{OnBoard: true, Made: engine.OnePair, MadeDesc: "a pair", Pot: 6.5, Bet: 4.0})
	if act != engine.Fold {
		t.Fatalf("one pair at 38%% odds: best = %s, want fold", act)
	}
	// High card checks back.
	act, _ = BestAction(Situation{OnBoard: true, Made: engine.HighCard, MadeDesc: "high card", Pot: 6.5})
	if act != engine.Check {
		t.Fatalf("high card, unbet pot: best = %s, want check", act)
	}
}

func TestArchetypeDispatch(t *testing.T) {
	if got := (Situation{}).Archetype(); got != Opening {
		t.Fatalf("empty situation: archetype %v, want opening", got)
	}
	if got := (Situation{Bet: 3}).Archetype(); got != FacingBet {
		t.Fatalf("bet pending: archetype %v, want facing-bet", got)
	}
	if got := (Situation{OnBoard: true}).Archetype(); got != Postflop {
		t.Fatalf("board dealt: archetype %v, want postflop", got)
	}
	// Prior folds alone never flip the archetype; only a live bet does.
	if got := (Situation{Bet: 0, Notation: "98s"}).Archetype(); got != Opening {
		t.Fatalf("folded-to pot: archetype %v, want opening", got)
	}
}
