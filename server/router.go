package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"poker-trainer/server/engine"
	"poker-trainer/server/grading"
	"poker-trainer/server/scenario"
	"poker-trainer/server/store"
)

//
// ===== session hub =====
//

// trainSession is one trainee's live state. The hub owns the id space;
// each session serializes its own mutations.
type trainSession struct {
	mu       sync.Mutex
	id       int64
	dbID     int64 // 0 when persistence is off
	adaptive *scenario.Adaptive
	adaptOn  bool
	gen      *scenario.Generator
	rating   Rating
	stats    *TrainerStats
	current  *scenario.Scenario
}

type sessionHub struct {
	mu   sync.Mutex
	next int64
	m    map[int64]*trainSession
}

func newSessionHub() *sessionHub {
	return &sessionHub{next: 1, m: make(map[int64]*trainSession)}
}

func (h *sessionHub) create(start scenario.Tier, adaptOn bool, dbID int64) *trainSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := &trainSession{
		id:       h.next,
		dbID:     dbID,
		adaptive: scenario.NewAdaptive(start, scenario.DefaultAdaptiveConfig()),
		adaptOn:  adaptOn,
		gen:      scenario.NewGenerator(0),
		rating:   NewRating(1200, 32),
		stats:    NewTrainerStats(),
	}
	h.m[s.id] = s
	h.next++
	return s
}

func (h *sessionHub) get(id int64) (*trainSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.m[id]
	return s, ok
}

//
// ===== payloads =====
//

type scenarioPayload struct {
	ID           int                    `json:"id,omitempty"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Street       string                 `json:"street"`
	Position     string                 `json:"position"`
	PositionFull string                 `json:"position_full"`
	Cards        []string               `json:"cards"`
	Board        []string               `json:"board,omitempty"`
	Pot          float64                `json:"pot"`
	CurrentBet   float64                `json:"current_bet"`
	History      []scenario.ActionEvent `json:"action_history"`
	Available    []engine.Action        `json:"available_actions"`
	Difficulty   string                 `json:"difficulty"`
	Tags         []string               `json:"tags,omitempty"`
}

func toScenarioPayload(s *scenario.Scenario) scenarioPayload {
	return scenarioPayload{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Street:       string(s.Street),
		Position:     s.HeroPosition.Abbr(),
		PositionFull: s.HeroPosition.FullName(),
		Cards:        engine.CardsToPretty(s.HeroCards[:]),
		Board:        engine.CardsToPretty(s.Board),
		Pot:          s.Pot,
		CurrentBet:   s.CurrentBet,
		History:      s.History,
		Available:    s.Available,
		Difficulty:   s.Difficulty.String(),
		Tags:         s.Tags,
	}
}

type summaryPayload struct {
	Difficulty string  `json:"difficulty"`
	Rating     float64 `json:"rating"`
	Decisions  int     `json:"decisions"`
	Good       int     `json:"good"`
	AvgGrade   float64 `json:"avg_grade"`
	Ended      bool    `json:"ended"`
}

func toSummaryPayload(sum store.SessionSummary) summaryPayload {
	return summaryPayload{
		Difficulty: sum.Difficulty,
		Rating:     sum.Rating,
		Decisions:  sum.Decisions,
		Good:       sum.Good,
		AvgGrade:   sum.AvgGrade,
		Ended:      sum.EndedAt != nil,
	}
}

type decisionPayload struct {
	Scenario     string   `json:"scenario"`
	Street       string   `json:"street"`
	Position     string   `json:"position"`
	Hand         string   `json:"hand"`
	Board        []string `json:"board,omitempty"`
	ChosenAction string   `json:"chosen_action"`
	BestAction   string   `json:"best_action"`
	Grade        string   `json:"grade"`
	GradeValue   int      `json:"grade_value"`
}

func toDecisionPayloads(recs []store.DecisionRecord) []decisionPayload {
	out := make([]decisionPayload, 0, len(recs))
	for _, d := range recs {
		out = append(out, decisionPayload{
			Scenario:     d.ScenarioName,
			Street:       d.Street,
			Position:     d.Position,
			Hand:         d.Hand,
			Board:        d.Board,
			ChosenAction: d.ChosenAction,
			BestAction:   d.BestAction,
			Grade:        d.Grade,
			GradeValue:   d.GradeValue,
		})
	}
	return out
}

type verdictPayload struct {
	ChosenAction string  `json:"chosen_action"`
	BestAction   string  `json:"best_action"`
	Grade        string  `json:"grade"`
	GradeValue   int     `json:"grade_value"`
	Explanation  string  `json:"explanation"`
	Difficulty   string  `json:"difficulty"`
	TierChanged  bool    `json:"difficulty_changed"`
	Rating       float64 `json:"rating"`
	RatingDelta  float64 `json:"rating_delta"`
	Total        int     `json:"total_graded"`
	Good         int     `json:"good"`
	Accuracy     float64 `json:"accuracy"`
}

//
// ===== router =====
//

func Router(db *store.DB) http.Handler {
	hub := newSessionHub()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	// Curated library, filtered by difficulty ("all" returns everything).
	r.Get("/api/scenarios/{difficulty}", func(w http.ResponseWriter, req *http.Request) {
		raw := chi.URLParam(req, "difficulty")
		var list []*scenario.Scenario
		if raw == "all" {
			list = scenario.All()
		} else {
			tier, err := scenario.ParseTier(raw)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			list = scenario.ByDifficulty(tier)
		}
		out := make([]scenarioPayload, 0, len(list))
		for _, s := range list {
			out = append(out, toScenarioPayload(s))
		}
		writeJSON(w, map[string]any{"scenarios": out})
	})

	// Stateless grading of a library scenario.
	r.Post("/api/evaluate", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			ScenarioID int    `json:"scenario_id"`
			Action     string `json:"action"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, ok := scenario.ByID(body.ScenarioID)
		if !ok {
			http.Error(w, "unknown scenario", http.StatusNotFound)
			return
		}
		act, err := engine.ParseAction(body.Action)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		v, err := grading.Evaluate(s, act)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, grading.ErrInvalidAction) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}
		writeJSON(w, verdictPayload{
			ChosenAction: string(v.Chosen),
			BestAction:   string(v.Best),
			Grade:        v.Grade.Label(),
			GradeValue:   v.Grade.Value(),
			Explanation:  v.Explanation,
			Difficulty:   s.Difficulty.String(),
		})
	})

	// Session lifecycle.
	r.Post("/api/sessions", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Difficulty string `json:"difficulty"`
			Adaptive   *bool  `json:"adaptive"`
		}
		if req.Body != nil {
			_ = json.NewDecoder(req.Body).Decode(&body) // empty body means defaults
		}
		start := scenario.Beginner
		if body.Difficulty != "" {
			t, err := scenario.ParseTier(body.Difficulty)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			start = t
		}
		adaptOn := body.Adaptive == nil || *body.Adaptive

		var dbID int64
		if db != nil {
			id, err := db.CreateSession(req.Context(), start.String(), adaptOn, 1200)
			if err != nil {
				log.Printf("create session row: %v", err)
			} else {
				dbID = id
			}
		}
		s := hub.create(start, adaptOn, dbID)
		writeJSON(w, map[string]any{
			"session_id": s.id,
			"difficulty": start.String(),
			"adaptive":   adaptOn,
			"rating":     s.rating.R,
		})
	})

	r.Get("/api/sessions/{id}/next", func(w http.ResponseWriter, req *http.Request) {
		s, ok := sessionFrom(hub, w, req)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		sc, err := s.gen.Generate(s.adaptive.Tier())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.current = sc
		writeJSON(w, toScenarioPayload(sc))
	})

	r.Post("/api/sessions/{id}/evaluate", func(w http.ResponseWriter, req *http.Request) {
		s, ok := sessionFrom(hub, w, req)
		if !ok {
			return
		}
		var body struct {
			Action string `json:"action"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		act, err := engine.ParseAction(body.Action)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.current == nil {
			http.Error(w, "no scenario pending; call /next first", http.StatusConflict)
			return
		}
		sc := s.current
		v, err := grading.Evaluate(sc, act)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, grading.ErrInvalidAction) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}
		s.current = nil

		delta := s.rating.Update(sc.Difficulty, v.Grade.Value())
		s.stats.Add(sc.HeroPosition, v.Grade)
		changed := false
		if s.adaptOn {
			_, changed = s.adaptive.Record(v.Grade.Value())
		}
		persistDecision(req.Context(), db, s, sc, v)

		writeJSON(w, verdictPayload{
			ChosenAction: string(v.Chosen),
			BestAction:   string(v.Best),
			Grade:        v.Grade.Label(),
			GradeValue:   v.Grade.Value(),
			Explanation:  v.Explanation,
			Difficulty:   s.adaptive.Tier().String(),
			TierChanged:  changed,
			Rating:       s.rating.R,
			RatingDelta:  delta,
			Total:        s.stats.Overall.Total,
			Good:         s.stats.Overall.Good,
			Accuracy:     s.stats.Overall.Accuracy(),
		})
	})

	r.Get("/api/sessions/{id}/stats", func(w http.ResponseWriter, req *http.Request) {
		s, ok := sessionFrom(hub, w, req)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		type posRow struct {
			Position string  `json:"position"`
			Total    int     `json:"total"`
			Good     int     `json:"good"`
			Accuracy float64 `json:"accuracy"`
			AvgGrade float64 `json:"avg_grade"`
		}
		rows := make([]posRow, 0, len(s.stats.ByPosition))
		for _, pr := range s.stats.positionRows() {
			rows = append(rows, posRow{
				Position: pr.Pos.Abbr(),
				Total:    pr.Stats.Total,
				Good:     pr.Stats.Good,
				Accuracy: pr.Stats.Accuracy(),
				AvgGrade: pr.Stats.AvgGrade(),
			})
		}
		payload := map[string]any{
			"session_id":   s.id,
			"adaptive":     s.adaptive.Snapshot(),
			"rating":       s.rating.R,
			"total_graded": s.stats.Overall.Total,
			"good":         s.stats.Overall.Good,
			"accuracy":     s.stats.Overall.Accuracy(),
			"avg_grade":    s.stats.Overall.AvgGrade(),
			"grades":       s.stats.Grades,
			"by_position":  rows,
		}
		// With persistence on, fold in what Postgres has on record for the
		// session. Failures degrade to the in-memory view.
		if db != nil && s.dbID != 0 {
			if sum, err := db.GetSessionSummary(req.Context(), s.dbID); err != nil {
				log.Printf("session summary: %v", err)
			} else {
				payload["stored"] = toSummaryPayload(sum)
			}
			if recent, err := db.RecentDecisions(req.Context(), s.dbID, 10); err != nil {
				log.Printf("recent decisions: %v", err)
			} else {
				payload["recent_decisions"] = toDecisionPayloads(recent)
			}
		}
		writeJSON(w, payload)
	})

	r.Post("/api/sessions/{id}/reset", func(w http.ResponseWriter, req *http.Request) {
		s, ok := sessionFrom(hub, w, req)
		if !ok {
			return
		}
		var body struct {
			Difficulty string `json:"difficulty"`
		}
		if req.Body != nil {
			_ = json.NewDecoder(req.Body).Decode(&body)
		}
		start := scenario.Beginner
		if body.Difficulty != "" {
			t, err := scenario.ParseTier(body.Difficulty)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			start = t
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.adaptive.Reset(start)
		s.stats = NewTrainerStats()
		s.rating = NewRating(1200, 32)
		s.current = nil
		writeJSON(w, map[string]any{"session_id": s.id, "difficulty": start.String()})
	})

	return r
}

func sessionFrom(hub *sessionHub, w http.ResponseWriter, req *http.Request) (*trainSession, bool) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad session id", http.StatusBadRequest)
		return nil, false
	}
	s, ok := hub.get(id)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

// persistDecision mirrors a graded decision into Postgres when configured.
// Failures are logged, never surfaced; the trainer keeps working without DB.
func persistDecision(ctx context.Context, db *store.DB, s *trainSession, sc *scenario.Scenario, v grading.Verdict) {
	if db == nil || s.dbID == 0 {
		return
	}
	rec := store.DecisionRecord{
		SessionID:    s.dbID,
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
	if err := db.InsertDecision(ctx, rec); err != nil {
		log.Printf("persist decision: %v", err)
		return
	}
	if err := db.TouchSession(ctx, s.dbID, s.adaptive.Tier().String(), s.rating.R); err != nil {
		log.Printf("touch session: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
