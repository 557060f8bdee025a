package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"poker-trainer/server/engine"
	"poker-trainer/server/grading"
	"poker-trainer/server/scenario"
	"poker-trainer/server/store"
)

// runDrill is the interactive terminal trainer: generate, ask, grade, adapt.
func runDrill(checkStop func() bool, db *store.DB, start scenario.Tier) {
	adaptive := scenario.NewAdaptive(start, scenario.DefaultAdaptiveConfig())
	gen := scenario.NewGenerator(0)
	rating := NewRating(1200, 32)
	stats := NewTrainerStats()

	var dbID int64
	if db != nil {
		id, err := db.CreateSession(context.Background(), start.String(), true, rating.R)
		if err != nil {
			log.Printf("DB session disabled: %v", err)
		} else {
			dbID = id
		}
	}

	section("Poker Decision Trainer")
	fmt.Printf("Difficulty: %s. Type an action, %s for stats, %s to quit.\n",
		bold(start.String()), cyan("s"), cyan("q"))

	in := bufio.NewScanner(os.Stdin)
	for !checkStop() {
		sc, err := gen.Generate(adaptive.Tier())
		if err != nil {
			log.Fatalf("generate: %v", err)
		}

		section(sc.Name)
		fmt.Println(dim(sc.Description))
		fmt.Println()
		fmt.Println(sc.DescriptionText())
		fmt.Printf("\nActions: %s\n", cyan(actionList(sc.Available)))

		act, quit := readAction(in, sc, adaptive, stats, rating)
		if quit {
			break
		}

		v, err := grading.Evaluate(sc, act)
		if err != nil {
			fmt.Println(bad(err.Error()))
			continue
		}

		printVerdict(v)
		delta := rating.Update(sc.Difficulty, v.Grade.Value())
		stats.Add(sc.HeroPosition, v.Grade)
		if tier, changed := adaptive.Record(v.Grade.Value()); changed {
			fmt.Printf("\n%s Difficulty is now %s.\n", mag("▲▼"), bold(tier.String()))
		}
		fmt.Printf("%s\n", dim(fmt.Sprintf("Rating %.0f (%+.1f)", rating.R, delta)))

		if db != nil && dbID != 0 {
			rec := store.DecisionRecord{
				SessionID:    dbID,
				ScenarioName: sc.Name,
				Street:       string(sc.Street),
				Position:     sc.HeroPosition.Abbr(),
				Hand:         sc.HeroCards[0].String() + " " + sc.HeroCards[1].String(),
				Board:        engine.CardsToStrings(sc.Board),
				Pot:          sc.Pot,
				CurrentBet:   sc.CurrentBet,
				ChosenAction: string(v.Chosen),
				BestAction:   string(v.Best),
				Grade:        v.Grade.Label(),
				GradeValue:   v.Grade.Value(),
				Explanation:  v.Explanation,
				Difficulty:   sc.Difficulty.String(),
			}
			if err := db.InsertDecision(context.Background(), rec); err != nil {
				log.Printf("persist decision: %v", err)
			}
		}
	}

	printStats(stats, adaptive, rating)
	if db != nil && dbID != 0 {
		if err := db.EndSession(context.Background(), dbID, adaptive.Tier().String(), rating.R); err != nil {
			log.Printf("end session: %v", err)
		}
	}
}

// readAction loops until the trainee types a legal action, 's', or 'q'.
func readAction(in *bufio.Scanner, sc *scenario.Scenario, adaptive *scenario.Adaptive, stats *TrainerStats, rating Rating) (engine.Action, bool) {
	for {
		fmt.Print(bold("> "))
		if !in.Scan() {
			return "", true
		}
		raw := strings.TrimSpace(in.Text())
		switch strings.ToLower(raw) {
		case "q", "quit", "exit":
			return "", true
		case "s", "stats":
			printStats(stats, adaptive, rating)
			continue
		case "":
			continue
		}
		act, err := engine.ParseAction(raw)
		if err != nil {
			fmt.Println(warn(err.Error()))
			continue
		}
		if !sc.Allows(act) {
			fmt.Println(warn(fmt.Sprintf("%s is not available here (%s)", act, actionList(sc.Available))))
			continue
		}
		return act, false
	}
}

func printVerdict(v grading.Verdict) {
	tag := gradeTag(v.Grade)
	fmt.Printf("\n%s  best: %s\n", tag, bold(string(v.Best)))
	fmt.Println(v.Explanation)
}

func gradeTag(g grading.Grade) string {
	label := g.Label()
	switch g {
	case grading.Excellent:
		return good("★ " + label)
	case grading.Good:
		return good(label)
	case grading.Inaccurate:
		return warn(label)
	default:
		return bad(label)
	}
}

func printStats(stats *TrainerStats, adaptive *scenario.Adaptive, rating Rating) {
	snap := adaptive.Snapshot()
	section("Session stats")
	fmt.Printf("Difficulty: %s  (last-%d avg %.2f)\n", bold(snap.TierName), scenario.DefaultAdaptiveConfig().WindowSize, snap.WindowAvg)
	fmt.Printf("Rating: %s over %d decisions\n", bold(fmt.Sprintf("%.0f", rating.R)), rating.Games)
	o := stats.Overall
	fmt.Printf("Graded: %d  good: %d  accuracy: %.0f%%  avg grade: %.2f\n",
		o.Total, o.Good, o.Accuracy()*100, o.AvgGrade())
	g := stats.Grades
	fmt.Printf("Tally: %s %d  %s %d  %s %d  %s %d  %s %d\n",
		good("Excellent"), g.Excellent, good("Good"), g.Good,
		warn("Inaccurate"), g.Inaccurate, bad("Mistake"), g.Mistake, bad("Blunder"), g.Blunder)
	for _, row := range stats.positionRows() {
		fmt.Printf("  %s: %d graded, %.0f%% good, avg %.2f\n",
			cyan(row.Pos.Abbr()), row.Stats.Total, row.Stats.Accuracy()*100, row.Stats.AvgGrade())
	}
}

func actionList(actions []engine.Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = string(a)
	}
	return strings.Join(parts, " / ")
}
