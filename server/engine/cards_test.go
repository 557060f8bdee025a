package engine

import "testing"

func TestParseCard(t *testing.T) {
	c, err := ParseCard("As")
	if err != nil {
		t.Fatalf("ParseCard(As): %v", err)
	}
	if c.Rank != 14 || c.Suit != 's' {
		t.Fatalf("ParseCard(As) = %+v", c)
	}
	if c.String() != "As" {
		t.Fatalf("String() = %q, want As", c.String())
	}
	if c.Pretty() != "A♠" {
		t.Fatalf("Pretty() = %q, want A♠", c.Pretty())
	}

	lower, err := ParseCard("kh")
	if err != nil {
		t.Fatalf("ParseCard(kh): %v", err)
	}
	if lower.Rank != 13 || lower.Suit != 'h' {
		t.Fatalf("ParseCard(kh) = %+v", lower)
	}

	for _, bad := range []string{"", "A", "1s", "Ax", "AsKd"} {
		if _, err := ParseCard(bad); err == nil {
			t.Fatalf("ParseCard(%q) should fail", bad)
		}
	}
}

func TestFullDeck(t *testing.T) {
	deck := FullDeck()
	if len(deck) != 52 {
		t.Fatalf("deck has %d cards", len(deck))
	}
	seen := map[Card]bool{}
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
}

func TestNewDeckSeeded(t *testing.T) {
	a := NewDeck(42)
	b := NewDeck(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different decks at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestNotation(t *testing.T) {
	cases := []struct {
		cards string
		want  string
	}{
		{"As Ah", "AA"},
		{"As Ks", "AKs"},
		{"As Kd", "AKo"},
		{"Kd As", "AKo"}, // higher rank first regardless of input order
		{"7h 2d", "72o"},
		{"9h 8h", "98s"},
	}
	for _, tc := range cases {
		cs := MustParseCards(tc.cards)
		if got := Notation(cs[0], cs[1]); got != tc.want {
			t.Fatalf("Notation(%s) = %q, want %q", tc.cards, got, tc.want)
		}
	}
}

func TestAllNotations(t *testing.T) {
	all := AllNotations()
	if len(all) != 169 {
		t.Fatalf("got %d starting-hand classes, want 169", len(all))
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		hole  string
		board string
		want  MadeCategory
	}{
		{"Ah Kd", "Qc 7s 2d", HighCard},
		{"Ah Kd", "Ac 7s 2d", OnePair},
		{"Ah Kd", "Ac Kh 2d", TwoPair},
		{"Ah Ad", "Ac 7s 2d", Trips},
		{"Ah Kd", "Qc Js Td", Straight},
		{"Ah 2h", "3c 4s 5d", Straight}, // wheel
		{"Ah Kh", "Qh 7h 2h", Flush},
		{"Ah Ad", "Ac 7s 7d", FullHouse},
		{"Ah Ad", "Ac As 2d", Quads},
		{"9c 9d", "Kh 7d 2s", OnePair},
	}
	for _, tc := range cases {
		hole := MustParseCards(tc.hole)
		board := MustParseCards(tc.board)
		got := Classify([2]Card{hole[0], hole[1]}, board)
		if got != tc.want {
			t.Fatalf("Classify(%s | %s) = %v, want %v", tc.hole, tc.board, got, tc.want)
		}
	}
}

func TestDescribeMadeFallsBackToCategory(t *testing.T) {
	hole := MustParseCards("Ah Kd")
	board := MustParseCards("Ac Kh 2d")
	got := DescribeMade([2]Card{hole[0], hole[1]}, board)
	if got == "" {
		t.Fatalf("DescribeMade returned empty string")
	}
}

func TestPositions(t *testing.T) {
	ps := Positions()
	if len(ps) != 6 {
		t.Fatalf("got %d positions, want 6", len(ps))
	}
	for i, p := range ps {
		if p.Order() != i {
			t.Fatalf("%s has order %d, want %d", p, p.Order(), i)
		}
	}
	if got := len(BTN.Before()); got != 3 {
		t.Fatalf("BTN has %d seats before it, want 3", got)
	}
	if got := len(UTG.Before()); got != 0 {
		t.Fatalf("UTG has %d seats before it, want 0", got)
	}
	p, err := ParsePosition("btn")
	if err != nil || p != BTN {
		t.Fatalf("ParsePosition(btn) = %v, %v", p, err)
	}
	if _, err := ParsePosition("UTG+1"); err == nil {
		t.Fatalf("ParsePosition(UTG+1) should fail")
	}
}
