package scenario

import (
	"fmt"

	"poker-trainer/server/engine"
)

type libraryEntry struct {
	name        string
	pos         engine.Position
	hero        string
	board       string
	pot         float64
	bet         float64
	history     []ActionEvent
	description string
	difficulty  Tier
	tags        []string
}

var libraryEntries = []libraryEntry{
	{
		name:        "Premium Pocket Aces",
		pos:         engine.BTN,
		hero:        "As Ah",
		pot:         1.5,
		description: "You have pocket aces on the button. No one has acted yet.",
		difficulty:  Beginner,
		tags:        []string{"preflop", "premium", "position"},
	},
	{
		name:        "Weak Hand Early Position",
		pos:         engine.UTG,
		hero:        "7h 2d",
		pot:         1.5,
		description: "You have 7-2 offsuit under the gun. No one has acted.",
		difficulty:  Beginner,
		tags:        []string{"preflop", "trash", "position"},
	},
	{
		name: "Suited Connector Button (Unopened)",
		pos:  engine.BTN,
		hero: "9h 8h",
		pot:  1.5,
		history: []ActionEvent{
			{Position: engine.UTG, Action: engine.Fold},
			{Position: engine.MP, Action: engine.Fold},
			{Position: engine.CO, Action: engine.Fold},
		},
		description: "You have 9-8 suited on the button. Everyone folded to you.",
		difficulty:  Beginner,
		tags:        []string{"preflop", "suited_connector", "position"},
	},
	{
		name: "AK Facing Raise",
		pos:  engine.BTN,
		hero: "As Kd",
		pot:  4.5,
		bet:  3.0,
		history: []ActionEvent{
			{Position: engine.UTG, Action: engine.Raise, Amount: 3.0},
		},
		description: "You have AK offsuit on the button. UTG raised to 3BB.",
		difficulty:  Beginner,
		tags:        []string{"preflop", "facing_raise", "premium"},
	},
	{
		name: "Small Pocket Pair MP (Unopened)",
		pos:  engine.MP,
		hero: "6d 6c",
		pot:  1.5,
		history: []ActionEvent{
			{Position: engine.UTG, Action: engine.Fold},
		},
		description: "You have pocket sixes in middle position. Everyone folded to you.",
		difficulty:  Beginner,
		tags:        []string{"preflop", "pocket_pair", "position"},
	},
	{
		name: "Small Pocket Pair Facing Raise",
		pos:  engine.MP,
		hero: "6d 6c",
		pot:  4.5,
		bet:  3.0,
		history: []ActionEvent{
			{Position: engine.UTG, Action: engine.Raise, Amount: 3.0},
		},
		description: "You have pocket sixes in middle position. UTG raised to 3BB.",
		difficulty:  Beginner,
		tags:        []string{"preflop", "pocket_pair", "facing_raise"},
	},
	{
		name:        "Ace-X Suited Early",
		pos:         engine.UTG,
		hero:        "Ad 5d",
		pot:         1.5,
		description: "You have A5 suited in early position.",
		difficulty:  Intermediate,
		tags:        []string{"preflop", "suited_ace", "position"},
	},
	{
		name: "JJ Facing 3-Bet",
		pos:  engine.CO,
		hero: "Jh Jd",
		pot:  13.5,
		bet:  9.0,
		history: []ActionEvent{
			{Position: engine.CO, Action: engine.Raise, Amount: 3.0},
			{Position: engine.BTN, Action: engine.Raise, Amount: 9.0},
		},
		description: "You raised from CO, BTN 3-bet to 9BB.",
		difficulty:  Intermediate,
		tags:        []string{"preflop", "facing_3bet", "pocket_pair"},
	},
	{
		name: "KQ Offsuit CO (Unopened)",
		pos:  engine.CO,
		hero: "Kc Qh",
		pot:  1.5,
		history: []ActionEvent{
			{Position: engine.UTG, Action: engine.Fold},
			{Position: engine.MP, Action: engine.Fold},
		},
		description: "You have KQ offsuit in the cutoff. Everyone folded to you.",
		difficulty:  Intermediate,
		tags:        []string{"preflop", "broadway", "position"},
	},
	{
		name: "AQ Multiway (Raise + Call)",
		pos:  engine.BTN,
		hero: "Ah Qc",
		pot:  7.5,
		bet:  3.0,
		history: []ActionEvent{
			{Position: engine.UTG, Action: engine.Fold},
			{Position: engine.MP, Action: engine.Raise, Amount: 3.0},
			{Position: engine.CO, Action: engine.Call},
		},
		description: "You have AQ offsuit on the button. MP raised to 3BB, CO called.",
		difficulty:  Intermediate,
		tags:        []string{"preflop", "facing_raise", "multiway"},
	},
	{
		name:        "Top Two on a Dry Flop",
		pos:         engine.BTN,
		hero:        "Ah Kd",
		board:       "Ac Kh 7s",
		pot:         6.5,
		description: "You raised preflop and got one caller. The flop gives you top two pair; it checks to you.",
		difficulty:  Advanced,
		tags:        []string{"flop", "value_bet", "two_pair"},
	},
	{
		name:        "Middle Pair Facing a Barrel",
		pos:         engine.CO,
		hero:        "9c 9d",
		board:       "Kh 7d 2s",
		pot:         6.5,
		bet:         4.0,
		history:     []ActionEvent{{Position: engine.MP, Action: engine.Bet, Amount: 4.0}},
		description: "You called a raise with pocket nines. The flop comes king-high and MP bets 4BB into 6.5BB.",
		difficulty:  Advanced,
		tags:        []string{"flop", "pot_odds", "bluff_catch"},
	},
	{
		name:        "Whiffed Overcards on the Turn",
		pos:         engine.BTN,
		hero:        "Qh Jh",
		board:       "8c 5d 2s 3h",
		pot:         9.0,
		bet:         6.0,
		history:     []ActionEvent{{Position: engine.CO, Action: engine.Bet, Amount: 6.0}},
		description: "You floated the flop with queen-jack high. The turn bricks and CO bets 6BB into 9BB.",
		difficulty:  Advanced,
		tags:        []string{"turn", "discipline", "high_card"},
	},
}

// libraryScenarios is built once at init; a broken entry is a programming
// defect and panics immediately.
var libraryScenarios = func() []*Scenario {
	out := make([]*Scenario, 0, len(libraryEntries))
	for i, e := range libraryEntries {
		s, err := New(e.name, e.pos, e.hero, e.board, e.pot, e.bet, e.history, e.description)
		if err != nil {
			panic(fmt.Sprintf("scenario library: %v", err))
		}
		s.ID = i + 1
		s.Difficulty = e.difficulty
		s.Tags = e.tags
		out = append(out, s)
	}
	return out
}()

// All returns every curated scenario in library order.
func All() []*Scenario {
	out := make([]*Scenario, len(libraryScenarios))
	copy(out, libraryScenarios)
	return out
}

// ByDifficulty returns the curated scenarios at one tier.
func ByDifficulty(t Tier) []*Scenario {
	var out []*Scenario
	for _, s := range libraryScenarios {
		if s.Difficulty == t {
			out = append(out, s)
		}
	}
	return out
}

// ByID looks a curated scenario up by its library ID.
func ByID(id int) (*Scenario, bool) {
	for _, s := range libraryScenarios {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}
