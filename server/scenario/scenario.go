// Package scenario models a single poker training decision point, the
// weighted-random generator that produces them, the curated library, and
// the adaptive difficulty controller that steers the generator.
package scenario

import (
	"fmt"
	"strings"

	"poker-trainer/server/engine"
	"poker-trainer/server/theory"
)

// Street is the betting round of a decision point.
type Street string

const (
	Preflop Street = "preflop"
	Flop    Street = "flop"
	Turn    Street = "turn"
	River   Street = "river"
)

func streetForBoard(n int) (Street, error) {
	switch n {
	case 0:
		return Preflop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	}
	return "", fmt.Errorf("board of %d cards matches no street", n)
}

// ActionEvent is one entry of the action history preceding the hero's
// decision. Amount is a raise-to/bet size in big blinds, zero when the
// action carries no amount.
type ActionEvent struct {
	Position engine.Position `json:"position"`
	Action   engine.Action   `json:"action"`
	Amount   float64         `json:"amount,omitempty"`
}

func (e ActionEvent) String() string {
	if e.Amount > 0 {
		return fmt.Sprintf("%s %s %.1fBB", e.Position, e.Action, e.Amount)
	}
	return fmt.Sprintf("%s %s", e.Position, e.Action)
}

// Scenario is one training decision point. Construct via the generator,
// the library, or New; immutable afterwards.
type Scenario struct {
	ID          int
	Name        string
	Description string

	Street       Street
	HeroPosition engine.Position
	HeroCards    [2]engine.Card
	Board        []engine.Card

	History []ActionEvent

	Pot        float64 // big blinds
	CurrentBet float64 // big blinds, amount to call

	Available  []engine.Action
	BestAction engine.Action
	Rationale  string

	Difficulty Tier
	Tags       []string
}

// AvailableActions derives the hero's legal moves from the bet facing them:
// with nothing to call the hero may fold, check, or raise (an open is called
// a raise); facing a bet the hero may fold, call, or raise.
func AvailableActions(currentBet float64) []engine.Action {
	if currentBet > 0 {
		return []engine.Action{engine.Fold, engine.Call, engine.Raise}
	}
	return []engine.Action{engine.Fold, engine.Check, engine.Raise}
}

// Allows reports whether the action is legal for the hero here.
// Bet counts as raise; the two are interchangeable at a single decision point.
func (s *Scenario) Allows(a engine.Action) bool {
	if a == engine.Bet {
		a = engine.Raise
	}
	for _, x := range s.Available {
		if x == a {
			return true
		}
	}
	return false
}

// Notation is the hero's starting-hand notation ("AKs", "QQ").
func (s *Scenario) Notation() string {
	return engine.Notation(s.HeroCards[0], s.HeroCards[1])
}

// Situation reduces the scenario to the theory-relevant facts.
func (s *Scenario) Situation() theory.Situation {
	sit := theory.Situation{
		Notation: s.Notation(),
		Position: s.HeroPosition,
		Pot:      s.Pot,
		Bet:      s.CurrentBet,
	}
	if len(s.Board) > 0 {
		sit.OnBoard = true
		sit.Made = engine.Classify(s.HeroCards, s.Board)
		sit.MadeDesc = engine.DescribeMade(s.HeroCards, s.Board)
	}
	return sit
}

// Validate enforces the data-model invariants: two distinct hero cards,
// board disjoint from the hand and internally distinct, board size matching
// the street, non-negative pot and bet, non-empty legal actions containing
// the embedded best action.
func (s *Scenario) Validate() error {
	seen := map[engine.Card]bool{s.HeroCards[0]: true}
	if seen[s.HeroCards[1]] {
		return fmt.Errorf("scenario %q: duplicate hero card %s", s.Name, s.HeroCards[1])
	}
	seen[s.HeroCards[1]] = true
	for _, c := range s.Board {
		if seen[c] {
			return fmt.Errorf("scenario %q: card %s appears twice", s.Name, c)
		}
		seen[c] = true
	}
	if st, err := streetForBoard(len(s.Board)); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	} else if st != s.Street {
		return fmt.Errorf("scenario %q: street %s does not match %d board cards", s.Name, s.Street, len(s.Board))
	}
	if !s.HeroPosition.Valid() {
		return fmt.Errorf("scenario %q: invalid position", s.Name)
	}
	if s.Pot < 0 || s.CurrentBet < 0 {
		return fmt.Errorf("scenario %q: negative pot or bet", s.Name)
	}
	if len(s.Available) == 0 {
		return fmt.Errorf("scenario %q: no available actions", s.Name)
	}
	if !s.Allows(s.BestAction) {
		return fmt.Errorf("scenario %q: best action %s not available", s.Name, s.BestAction)
	}
	return nil
}

// DescriptionText renders the scenario the way the drill presents it.
func (s *Scenario) DescriptionText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Position: %s\n", s.HeroPosition.FullName())
	fmt.Fprintf(&b, "Your hand: %s %s\n", s.HeroCards[0].Pretty(), s.HeroCards[1].Pretty())
	if len(s.Board) > 0 {
		fmt.Fprintf(&b, "Board: %s\n", strings.Join(engine.CardsToPretty(s.Board), " "))
	}
	fmt.Fprintf(&b, "Pot: %.1fBB\n", s.Pot)
	if s.CurrentBet > 0 {
		fmt.Fprintf(&b, "Bet to call: %.1fBB\n", s.CurrentBet)
	}
	b.WriteString("\nAction before you:\n")
	if len(s.History) == 0 {
		b.WriteString("  (You are first to act)")
	} else {
		for i, e := range s.History {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "  %s", e)
		}
	}
	return b.String()
}

// New builds a scenario from its raw parts, deriving street, legal actions,
// and the embedded best action + rationale from the shared theory tables.
func New(name string, pos engine.Position, heroCards string, boardCards string, pot, currentBet float64, history []ActionEvent, description string) (*Scenario, error) {
	hole, err := engine.ParseCards(heroCards)
	if err != nil {
		return nil, err
	}
	if len(hole) != 2 {
		return nil, fmt.Errorf("scenario %q: need exactly 2 hero cards, got %d", name, len(hole))
	}
	var board []engine.Card
	if boardCards != "" {
		if board, err = engine.ParseCards(boardCards); err != nil {
			return nil, err
		}
	}
	street, err := streetForBoard(len(board))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	s := &Scenario{
		Name:         name,
		Description:  description,
		Street:       street,
		HeroPosition: pos,
		HeroCards:    [2]engine.Card{hole[0], hole[1]},
		Board:        board,
		History:      history,
		Pot:          pot,
		CurrentBet:   currentBet,
		Available:    AvailableActions(currentBet),
	}
	s.BestAction, s.Rationale = theory.BestAction(s.Situation())
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
