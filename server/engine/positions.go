package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Position is a seat at a 6-max table. The numeric value is the preflop
// acting-order index: UTG acts first (0), BB closes the action (5).
type Position int

const (
	UTG Position = iota
	MP
	CO
	BTN
	SB
	BB
)

var positionInfo = [...]struct {
	abbr, full, category string
}{
	UTG: {"UTG", "Under the Gun", "early"},
	MP:  {"MP", "Middle Position", "middle"},
	CO:  {"CO", "Cutoff", "late"},
	BTN: {"BTN", "Button", "late"},
	SB:  {"SB", "Small Blind", "blind"},
	BB:  {"BB", "Big Blind", "blind"},
}

// Positions returns all six seats in acting order.
func Positions() []Position {
	return []Position{UTG, MP, CO, BTN, SB, BB}
}

func (p Position) Valid() bool { return p >= UTG && p <= BB }

func (p Position) Abbr() string     { return positionInfo[p].abbr }
func (p Position) FullName() string { return positionInfo[p].full }
func (p Position) Category() string { return positionInfo[p].category }
func (p Position) Order() int       { return int(p) }

func (p Position) String() string { return p.Abbr() }

func (p Position) IsEarly() bool { return p.Category() == "early" }
func (p Position) IsLate() bool  { return p.Category() == "late" }
func (p Position) IsBlind() bool { return p.Category() == "blind" }

// Before returns the seats that act before p preflop, in acting order.
func (p Position) Before() []Position {
	out := make([]Position, 0, int(p))
	for _, q := range Positions() {
		if q < p {
			out = append(out, q)
		}
	}
	return out
}

// ParsePosition parses a seat abbreviation ("UTG", "btn").
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions() {
		if strings.EqualFold(s, p.Abbr()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// Positions cross the API boundary as their abbreviations.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Abbr())
}

func (p *Position) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	q, err := ParsePosition(s)
	if err != nil {
		return err
	}
	*p = q
	return nil
}
