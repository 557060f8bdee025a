package main

import (
	"sort"

	"poker-trainer/server/engine"
	"poker-trainer/server/grading"
)

// GradeTally counts verdicts per quality tier.
type GradeTally struct {
	Excellent  int `json:"excellent"`
	Good       int `json:"good"`
	Inaccurate int `json:"inaccurate"`
	Mistake    int `json:"mistake"`
	Blunder    int `json:"blunder"`
}

func (t *GradeTally) add(g grading.Grade) {
	switch g {
	case grading.Excellent:
		t.Excellent++
	case grading.Good:
		t.Good++
	case grading.Inaccurate:
		t.Inaccurate++
	case grading.Mistake:
		t.Mistake++
	case grading.Blunder:
		t.Blunder++
	}
}

// PosStats buckets decision quality by seat.
type PosStats struct {
	Total    int `json:"total"`
	Good     int `json:"good"` // grade Good or better
	SumGrade int `json:"-"`
}

func (p *PosStats) Accuracy() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Good) / float64(p.Total)
}

func (p *PosStats) AvgGrade() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.SumGrade) / float64(p.Total)
}

// TrainerStats accumulates a session's graded decisions.
type TrainerStats struct {
	Overall    PosStats
	Grades     GradeTally
	ByPosition map[engine.Position]*PosStats
}

func NewTrainerStats() *TrainerStats {
	return &TrainerStats{ByPosition: make(map[engine.Position]*PosStats)}
}

func (s *TrainerStats) Add(pos engine.Position, g grading.Grade) {
	s.Grades.add(g)
	bump := func(p *PosStats) {
		p.Total++
		p.SumGrade += g.Value()
		if g >= grading.Good {
			p.Good++
		}
	}
	bump(&s.Overall)
	ps, ok := s.ByPosition[pos]
	if !ok {
		ps = &PosStats{}
		s.ByPosition[pos] = ps
	}
	bump(ps)
}

// positionRows flattens the per-seat buckets in acting order for display.
func (s *TrainerStats) positionRows() []struct {
	Pos   engine.Position
	Stats *PosStats
} {
	rows := make([]struct {
		Pos   engine.Position
		Stats *PosStats
	}, 0, len(s.ByPosition))
	for pos, ps := range s.ByPosition {
		rows = append(rows, struct {
			Pos   engine.Position
			Stats *PosStats
		}{pos, ps})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Pos.Order() < rows[j].Pos.Order() })
	return rows
}
