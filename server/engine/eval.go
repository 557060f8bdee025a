package engine

import (
	"sort"

	poker "github.com/paulhankin/poker"
)

// MadeCategory is a coarse made-hand class for a hole+board combination.
// It deliberately ignores kickers and draws; the grading rules only need
// the broad class.
type MadeCategory int

const (
	HighCard MadeCategory = iota
	OnePair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
)

var madeNames = [...]string{
	HighCard:  "high card",
	OnePair:   "a pair",
	TwoPair:   "two pair",
	Trips:     "three of a kind",
	Straight:  "a straight",
	Flush:     "a flush",
	FullHouse: "a full house",
	Quads:     "four of a kind",
}

func (m MadeCategory) String() string { return madeNames[m] }

// Classify buckets hole cards plus a 3-5 card board into a MadeCategory.
func Classify(hole [2]Card, board []Card) MadeCategory {
	all := append([]Card{hole[0], hole[1]}, board...)
	ranks := map[int]int{}
	suits := map[byte]int{}
	uniq := map[int]bool{}
	for _, c := range all {
		ranks[c.Rank]++
		suits[c.Suit]++
		uniq[c.Rank] = true
	}
	var pairs []int
	trips, quads := -1, -1
	for r, cnt := range ranks {
		switch cnt {
		case 4:
			quads = r
		case 3:
			trips = r
		case 2:
			pairs = append(pairs, r)
		}
	}
	sort.Ints(pairs)
	flushCnt := 0
	for _, c := range suits {
		if c > flushCnt {
			flushCnt = c
		}
	}
	switch {
	case quads != -1:
		return Quads
	case trips != -1 && len(pairs) > 0:
		return FullHouse
	case flushCnt >= 5:
		return Flush
	case hasStraight(uniq):
		return Straight
	case trips != -1:
		return Trips
	case len(pairs) >= 2:
		return TwoPair
	case len(pairs) == 1:
		return OnePair
	default:
		return HighCard
	}
}

func hasStraight(uniq map[int]bool) bool {
	vals := make([]int, 0, len(uniq)+1)
	for r := range uniq {
		vals = append(vals, r)
		if r == 14 {
			vals = append(vals, 1) // wheel
		}
	}
	sort.Ints(vals)
	run := 1
	for i := 1; i < len(vals); i++ {
		switch vals[i] - vals[i-1] {
		case 0:
		case 1:
			run++
			if run >= 5 {
				return true
			}
		default:
			run = 1
		}
	}
	return false
}

// Convert an engine card to the evaluation library's representation.
// Our ranks run 2..14 (Ace=14); the library uses 1..13 with Ace=1.
func toPH(c Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	default:
		s = poker.Spade
	}
	var r poker.Rank
	if c.Rank == 14 {
		r = poker.Rank(1)
	} else {
		r = poker.Rank(c.Rank)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// DescribeMade returns the evaluation library's human description of the
// best hand available from hole+board ("full house kings over twos" style).
// Falls back to the coarse category name if the library declines the input.
func DescribeMade(hole [2]Card, board []Card) string {
	all := make([]poker.Card, 0, 2+len(board))
	all = append(all, toPH(hole[0]), toPH(hole[1]))
	for _, c := range board {
		all = append(all, toPH(c))
	}
	if d, err := poker.Describe(all); err == nil {
		return d
	}
	return Classify(hole, board).String()
}
