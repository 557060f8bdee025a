package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poker-trainer/server/engine"
	"poker-trainer/server/grading"
	"poker-trainer/server/scenario"
	"poker-trainer/server/store"
)

func testRequest(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var out map[string]any
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: bad json response: %v\n%s", method, path, err, rec.Body.String())
		}
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	r := Router(nil)
	rec, out := testRequest(t, r, "GET", "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health: %d", rec.Code)
	}
	if out["ok"] != true {
		t.Fatalf("health body: %v", out)
	}
}

func TestListScenarios(t *testing.T) {
	r := Router(nil)
	rec, out := testRequest(t, r, "GET", "/api/scenarios/beginner", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: %d %s", rec.Code, rec.Body.String())
	}
	rows, ok := out["scenarios"].([]any)
	if !ok || len(rows) == 0 {
		t.Fatalf("no beginner scenarios in response: %v", out)
	}

	rec, _ = testRequest(t, r, "GET", "/api/scenarios/impossible", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad difficulty: %d, want 400", rec.Code)
	}
}

func TestStatelessEvaluate(t *testing.T) {
	r := Router(nil)
	rec, out := testRequest(t, r, "POST", "/api/evaluate", map[string]any{
		"scenario_id": 1, // Premium Pocket Aces
		"action":      "fold",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("evaluate: %d %s", rec.Code, rec.Body.String())
	}
	if out["grade"] != "Blunder" {
		t.Fatalf("folding aces graded %v, want Blunder", out["grade"])
	}
	if out["grade_value"].(float64) != 1 {
		t.Fatalf("grade_value = %v, want 1", out["grade_value"])
	}

	rec, _ = testRequest(t, r, "POST", "/api/evaluate", map[string]any{
		"scenario_id": 1,
		"action":      "call",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("illegal action: %d, want 400", rec.Code)
	}

	rec, _ = testRequest(t, r, "POST", "/api/evaluate", map[string]any{
		"scenario_id": 9999,
		"action":      "fold",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown scenario: %d, want 404", rec.Code)
	}
}

func TestSessionFlow(t *testing.T) {
	r := Router(nil)

	rec, out := testRequest(t, r, "POST", "/api/sessions", map[string]any{"difficulty": "beginner"})
	if rec.Code != http.StatusOK {
		t.Fatalf("create session: %d %s", rec.Code, rec.Body.String())
	}
	id := out["session_id"].(float64)
	if id == 0 {
		t.Fatalf("no session id in %v", out)
	}
	base := "/api/sessions/1"

	// Grading before /next is a conflict.
	rec, _ = testRequest(t, r, "POST", base+"/evaluate", map[string]any{"action": "fold"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("evaluate before next: %d, want 409", rec.Code)
	}

	rec, next := testRequest(t, r, "GET", base+"/next", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("next: %d %s", rec.Code, rec.Body.String())
	}
	avail, ok := next["available_actions"].([]any)
	if !ok || len(avail) == 0 {
		t.Fatalf("no available actions: %v", next)
	}

	rec, verdict := testRequest(t, r, "POST", base+"/evaluate", map[string]any{
		"action": avail[0].(string),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("evaluate: %d %s", rec.Code, rec.Body.String())
	}
	if verdict["grade"] == "" || verdict["best_action"] == "" {
		t.Fatalf("incomplete verdict: %v", verdict)
	}
	if verdict["total_graded"].(float64) != 1 {
		t.Fatalf("total_graded = %v, want 1", verdict["total_graded"])
	}

	// A scenario is consumed once graded.
	rec, _ = testRequest(t, r, "POST", base+"/evaluate", map[string]any{"action": "fold"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("double evaluate: %d, want 409", rec.Code)
	}

	rec, stats := testRequest(t, r, "GET", base+"/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: %d", rec.Code)
	}
	if stats["total_graded"].(float64) != 1 {
		t.Fatalf("stats total = %v, want 1", stats["total_graded"])
	}
	// Without a database the stored view is simply absent.
	if _, ok := stats["stored"]; ok {
		t.Fatalf("stats carry a stored summary with no DB configured")
	}
	if _, ok := stats["recent_decisions"]; ok {
		t.Fatalf("stats carry recent decisions with no DB configured")
	}

	rec, _ = testRequest(t, r, "POST", base+"/reset", map[string]any{"difficulty": "intermediate"})
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: %d", rec.Code)
	}
	_, stats = testRequest(t, r, "GET", base+"/stats", nil)
	if stats["total_graded"].(float64) != 0 {
		t.Fatalf("stats after reset = %v, want 0", stats["total_graded"])
	}

	rec, _ = testRequest(t, r, "GET", "/api/sessions/999/next", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown session: %d, want 404", rec.Code)
	}
}

func TestRatingMovesWithGrades(t *testing.T) {
	up := NewRating(1200, 32)
	delta := up.Update(scenario.Advanced, 5)
	if delta <= 0 || up.R <= 1200 {
		t.Fatalf("excellent decision should raise the rating: delta %f, R %f", delta, up.R)
	}

	down := NewRating(1200, 32)
	delta = down.Update(scenario.Beginner, 1)
	if delta >= 0 || down.R >= 1200 {
		t.Fatalf("blundering should lower the rating: delta %f, R %f", delta, down.R)
	}

	// Harder spots move the needle more for the same grade.
	easy := NewRating(1200, 32)
	hard := NewRating(1200, 32)
	if hard.Update(scenario.Advanced, 5) <= easy.Update(scenario.Beginner, 5) {
		t.Fatalf("advanced win should outweigh beginner win")
	}
}

func TestStoredStatsPayloads(t *testing.T) {
	ended := time.Now()
	sum := toSummaryPayload(store.SessionSummary{
		SessionID:  7,
		EndedAt:    &ended,
		Difficulty: "intermediate",
		Rating:     1234.5,
		Decisions:  12,
		Good:       9,
		AvgGrade:   3.8,
	})
	if sum.Difficulty != "intermediate" || sum.Decisions != 12 || sum.Good != 9 || !sum.Ended {
		t.Fatalf("summary payload = %+v", sum)
	}

	recs := toDecisionPayloads([]store.DecisionRecord{
		{ScenarioName: "AK Facing Raise", Street: "preflop", Position: "BTN", Hand: "As Kd",
			ChosenAction: "raise", BestAction: "raise", Grade: "Excellent", GradeValue: 5},
		{ScenarioName: "Weak Hand Early Position", Street: "preflop", Position: "UTG", Hand: "7h 2d",
			ChosenAction: "raise", BestAction: "fold", Grade: "Blunder", GradeValue: 1},
	})
	if len(recs) != 2 {
		t.Fatalf("got %d decision payloads, want 2", len(recs))
	}
	if recs[0].Scenario != "AK Facing Raise" || recs[0].GradeValue != 5 {
		t.Fatalf("first decision payload = %+v", recs[0])
	}
	if recs[1].BestAction != "fold" || recs[1].Grade != "Blunder" {
		t.Fatalf("second decision payload = %+v", recs[1])
	}
	if out := toDecisionPayloads(nil); len(out) != 0 {
		t.Fatalf("nil records should map to an empty list, got %v", out)
	}
}

func TestTrainerStats(t *testing.T) {
	s := NewTrainerStats()
	s.Add(engine.BTN, grading.Excellent)
	s.Add(engine.BTN, grading.Blunder)
	s.Add(engine.UTG, grading.Good)
	if s.Overall.Total != 3 || s.Overall.Good != 2 {
		t.Fatalf("overall = %+v", s.Overall)
	}
	if acc := s.Overall.Accuracy(); acc < 0.66 || acc > 0.67 {
		t.Fatalf("accuracy = %f, want 2/3", acc)
	}
	if s.Grades.Blunder != 1 || s.Grades.Excellent != 1 || s.Grades.Good != 1 {
		t.Fatalf("tally = %+v", s.Grades)
	}
	rows := s.positionRows()
	if len(rows) != 2 || rows[0].Pos != engine.UTG {
		t.Fatalf("position rows out of order: %+v", rows)
	}
}
