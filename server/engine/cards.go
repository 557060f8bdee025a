package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Card is a single playing card. Rank 2..14 (Ace=14), Suit one of 'c','d','h','s'.
type Card struct {
	Rank int
	Suit byte
}

const rankSymbols = "  23456789TJQKA"

var suitGlyphs = map[byte]string{'s': "♠", 'h': "♥", 'd': "♦", 'c': "♣"}

// String renders compact notation, e.g. "As", "Td".
func (c Card) String() string {
	return fmt.Sprintf("%c%c", rankSymbols[c.Rank], c.Suit)
}

// Pretty renders display notation with a unicode suit, e.g. "A♠".
func (c Card) Pretty() string {
	return fmt.Sprintf("%c%s", rankSymbols[c.Rank], suitGlyphs[c.Suit])
}

// RankSymbol returns the single-character symbol for a rank value (2..14).
func RankSymbol(rank int) byte { return rankSymbols[rank] }

// ParseCard parses compact notation ("As", "kh", "Tc").
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	var rank int
	switch r := s[0]; {
	case r == 'A' || r == 'a':
		rank = 14
	case r == 'K' || r == 'k':
		rank = 13
	case r == 'Q' || r == 'q':
		rank = 12
	case r == 'J' || r == 'j':
		rank = 11
	case r == 'T' || r == 't':
		rank = 10
	case r >= '2' && r <= '9':
		rank = int(r - '0')
	default:
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}
	suit := s[1] | 0x20 // lowercase
	switch suit {
	case 'c', 'd', 'h', 's':
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses space-separated compact notation ("As Kh Qd").
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParseCards is ParseCards for hard-coded literals.
func MustParseCards(s string) []Card {
	cs, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cs
}

// NewDeck returns a shuffled 52-card deck. seed==0 uses the clock.
func NewDeck(seed int64) []Card {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	deck := FullDeck()
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// FullDeck returns all 52 cards in a fixed order.
func FullDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := 0; s < 4; s++ {
		for rnk := 2; rnk <= 14; rnk++ {
			deck = append(deck, Card{Rank: rnk, Suit: "cdhs"[s]})
		}
	}
	return deck
}

// CardsToStrings converts cards to compact notation strings.
func CardsToStrings(cs []Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// CardsToPretty converts cards to display notation strings.
func CardsToPretty(cs []Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Pretty()
	}
	return out
}
