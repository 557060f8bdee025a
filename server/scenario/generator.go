package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"poker-trainer/server/engine"
	"poker-trainer/server/theory"
)

// ErrNoConfig is returned when a difficulty tier has no generator preset.
// It signals a configuration defect, not a retryable condition.
var ErrNoConfig = errors.New("no generator config for difficulty")

// DifficultyConfig is one tier's sampling preset: where the hero sits, how
// strong their hand runs, and how often villains have raised or 3-bet in
// front of them.
type DifficultyConfig struct {
	PositionWeights   map[engine.Position]float64
	TierWeights       map[int]float64 // strength tier 1..5 -> weight
	RaiseFrequency    float64
	ThreeBetFrequency float64
}

// Harder tiers shift mass toward early positions, marginal holdings, and
// contested pots.
var difficultyConfigs = map[Tier]DifficultyConfig{
	Beginner: {
		PositionWeights: map[engine.Position]float64{
			engine.UTG: 0.10, engine.MP: 0.15, engine.CO: 0.25,
			engine.BTN: 0.35, engine.SB: 0.05, engine.BB: 0.10,
		},
		TierWeights:       map[int]float64{1: 0.30, 2: 0.30, 3: 0.20, 4: 0.15, 5: 0.05},
		RaiseFrequency:    0.3,
		ThreeBetFrequency: 0.0,
	},
	Intermediate: {
		PositionWeights: map[engine.Position]float64{
			engine.UTG: 0.15, engine.MP: 0.20, engine.CO: 0.25,
			engine.BTN: 0.25, engine.SB: 0.05, engine.BB: 0.10,
		},
		TierWeights:       map[int]float64{1: 0.20, 2: 0.25, 3: 0.25, 4: 0.20, 5: 0.10},
		RaiseFrequency:    0.5,
		ThreeBetFrequency: 0.15,
	},
	Advanced: {
		PositionWeights: map[engine.Position]float64{
			engine.UTG: 0.20, engine.MP: 0.20, engine.CO: 0.20,
			engine.BTN: 0.20, engine.SB: 0.10, engine.BB: 0.10,
		},
		TierWeights:       map[int]float64{1: 0.15, 2: 0.20, 3: 0.25, 4: 0.25, 5: 0.15},
		RaiseFrequency:    0.6,
		ThreeBetFrequency: 0.25,
	},
}

// combosByTier groups all 1326 two-card combos by strength tier so the
// generator can sample a hand of a chosen tier uniformly, instead of
// rejection-sampling the deck.
var combosByTier = func() map[int][][2]engine.Card {
	deck := engine.FullDeck()
	m := make(map[int][][2]engine.Card)
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			tier := theory.StrengthTier(engine.Notation(deck[i], deck[j]))
			m[tier] = append(m[tier], [2]engine.Card{deck[i], deck[j]})
		}
	}
	return m
}()

// Generator produces weighted-random preflop scenarios. Not safe for
// concurrent use; give each session its own.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seeds a generator; seed 0 means use the clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate samples one scenario at the requested difficulty. Every returned
// scenario passes Validate; an unknown tier returns ErrNoConfig.
func (g *Generator) Generate(t Tier) (*Scenario, error) {
	cfg, ok := difficultyConfigs[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoConfig, int(t))
	}

	pos := g.pickPosition(cfg.PositionWeights)
	hole := g.pickHand(cfg.TierWeights)
	history := g.synthesizeHistory(pos, cfg)
	pot, bet := potAndBet(history)

	s := &Scenario{
		Name:         scenarioName(engine.Notation(hole[0], hole[1]), pos, history),
		Description:  "6-max table. " + scenarioDescription(pos, history),
		Street:       Preflop,
		HeroPosition: pos,
		HeroCards:    hole,
		History:      history,
		Pot:          pot,
		CurrentBet:   bet,
		Available:    AvailableActions(bet),
		Difficulty:   t,
		Tags:         []string{"preflop", "6max", "generated"},
	}
	s.BestAction, s.Rationale = theory.BestAction(s.Situation())
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (g *Generator) pickPosition(weights map[engine.Position]float64) engine.Position {
	var total float64
	for _, p := range engine.Positions() {
		total += weights[p]
	}
	r := g.rng.Float64() * total
	for _, p := range engine.Positions() {
		r -= weights[p]
		if r < 0 {
			return p
		}
	}
	return engine.BB
}

func (g *Generator) pickHand(weights map[int]float64) [2]engine.Card {
	var total float64
	for tier := 1; tier <= 5; tier++ {
		total += weights[tier]
	}
	r := g.rng.Float64() * total
	pick := 5
	for tier := 1; tier <= 5; tier++ {
		r -= weights[tier]
		if r < 0 {
			pick = tier
			break
		}
	}
	combos := combosByTier[pick]
	return combos[g.rng.Intn(len(combos))]
}

// synthesizeHistory invents the villains' preflop line: everyone folds until
// the line's single open (if any), after which each seat folds, flat-calls,
// or 3-bets. Opens are to 3BB, 3-bets to 9BB; at most one re-raise, so every
// raise in the history strictly exceeds the standing bet.
func (g *Generator) synthesizeHistory(hero engine.Position, cfg DifficultyConfig) []ActionEvent {
	before := hero.Before()
	if len(before) == 0 {
		return nil
	}
	history := make([]ActionEvent, 0, len(before))
	wantsRaise := g.rng.Float64() < cfg.RaiseFrequency
	raises := 0
	for _, pos := range before {
		switch {
		case wantsRaise && raises == 0 && g.rng.Float64() < 0.4:
			history = append(history, ActionEvent{Position: pos, Action: engine.Raise, Amount: 3.0})
			raises++
		case raises == 1 && g.rng.Float64() < cfg.ThreeBetFrequency && len(history) < 3:
			history = append(history, ActionEvent{Position: pos, Action: engine.Raise, Amount: 9.0})
			raises++
		case raises > 0 && g.rng.Float64() < 0.2:
			history = append(history, ActionEvent{Position: pos, Action: engine.Call})
		default:
			history = append(history, ActionEvent{Position: pos, Action: engine.Fold})
		}
	}
	return history
}

// potAndBet replays the history to size the pot. Blinds seed 1.5BB; each
// raise posts the new amount (the previous raiser's chips are already in),
// each call matches the standing bet.
func potAndBet(history []ActionEvent) (pot, bet float64) {
	pot = 1.5
	for _, e := range history {
		switch e.Action {
		case engine.Raise:
			bet = e.Amount
			if bet == 0 {
				bet = 3.0
			}
			pot += bet
		case engine.Call:
			pot += bet
		}
	}
	return pot, bet
}

func scenarioName(hand string, pos engine.Position, history []ActionEvent) string {
	raises, calls := 0, 0
	for _, e := range history {
		switch e.Action {
		case engine.Raise:
			raises++
		case engine.Call:
			calls++
		}
	}
	switch {
	case raises >= 2:
		return fmt.Sprintf("%s in %s facing 3-bet", hand, pos)
	case raises > 0 && calls > 0:
		return fmt.Sprintf("%s in %s multiway", hand, pos)
	case raises > 0:
		return fmt.Sprintf("%s in %s facing raise", hand, pos)
	}
	return fmt.Sprintf("%s in %s (unopened)", hand, pos)
}

func scenarioDescription(pos engine.Position, history []ActionEvent) string {
	if len(history) == 0 {
		return fmt.Sprintf("You're in %s. You're first to act.", pos.FullName())
	}
	var raises []ActionEvent
	var calls []ActionEvent
	allFolds := true
	for _, e := range history {
		switch e.Action {
		case engine.Raise:
			raises = append(raises, e)
			allFolds = false
		case engine.Call:
			calls = append(calls, e)
			allFolds = false
		}
	}
	switch {
	case len(raises) >= 2:
		return fmt.Sprintf("%s raised, %s 3-bet.", raises[0].Position, raises[1].Position)
	case len(raises) > 0 && len(calls) > 0:
		return fmt.Sprintf("%s raised, %s called.", raises[0].Position, calls[0].Position)
	case len(raises) > 0:
		return fmt.Sprintf("%s raised to %.1fBB.", raises[0].Position, raises[0].Amount)
	case allFolds:
		return fmt.Sprintf("Everyone folded to you in %s.", pos.FullName())
	}
	return fmt.Sprintf("Action to you in %s.", pos.FullName())
}
