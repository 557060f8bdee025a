package main

import (
	"math"

	"poker-trainer/server/scenario"
)

// Rating is an Elo-style trainee rating. Each graded decision is scored
// against a fixed "opponent" rating for its difficulty tier, so beating
// advanced spots moves the needle more than beating beginner ones.
type Rating struct {
	R     float64
	K     float64
	Games int
}

func NewRating(start, k float64) Rating { return Rating{R: start, K: k} }

var difficultyRating = map[scenario.Tier]float64{
	scenario.Beginner:     1300,
	scenario.Intermediate: 1500,
	scenario.Advanced:     1700,
}

// Update applies one graded decision and returns the delta. The grade value
// 1..5 maps linearly onto a 0..1 score; K anneals slowly with volume.
func (r *Rating) Update(tier scenario.Tier, gradeValue int) float64 {
	opp := difficultyRating[tier]
	expected := 1.0 / (1.0 + math.Pow(10, (opp-r.R)/400.0))
	score := float64(gradeValue-1) / 4.0
	kEff := r.K * ratingDecay(r.Games)
	delta := kEff * (score - expected)
	r.R += delta
	r.Games++
	return delta
}

func ratingDecay(games int) float64 {
	return 1.0 / (1.0 + 0.01*float64(games))
}
