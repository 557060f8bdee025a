package engine

import (
	"fmt"
	"strings"
)

// Action is one of the moves a player can make at a decision point.
type Action string

const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	Raise Action = "raise"
)

func (a Action) String() string { return string(a) }

// ParseAction parses user/API input into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case Fold:
		return Fold, nil
	case Check:
		return Check, nil
	case Call:
		return Call, nil
	case Bet:
		return Bet, nil
	case Raise:
		return Raise, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}
