package scenario

import (
	"fmt"
	"strings"
)

// Tier is a difficulty band for generated scenarios.
type Tier int

const (
	Beginner Tier = iota
	Intermediate
	Advanced
)

var tierNames = [...]string{"beginner", "intermediate", "advanced"}

func (t Tier) Valid() bool { return t >= Beginner && t <= Advanced }

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseTier maps a difficulty name to its Tier, case-insensitively.
func ParseTier(s string) (Tier, error) {
	for i, n := range tierNames {
		if strings.EqualFold(s, n) {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// AdaptiveConfig tunes the difficulty controller. Promotion and demotion
// look at the average grade over the last WindowSize decisions; no
// transition happens until the window has filled once.
type AdaptiveConfig struct {
	WindowSize int
	PromoteAvg float64
	DemoteAvg  float64
}

// DefaultAdaptiveConfig is the tuning the drill and HTTP sessions use.
func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{WindowSize: 10, PromoteAvg: 4.0, DemoteAvg: 2.0}
}

// Adaptive tracks recent grade values and moves the trainee between tiers.
// Not safe for concurrent use; callers serialize access.
type Adaptive struct {
	cfg    AdaptiveConfig
	tier   Tier
	window []float64 // ring buffer of the last cfg.WindowSize grades
	head   int
	filled bool
	total  int
}

// NewAdaptive starts a controller at the given tier. Zero-value fields of
// cfg fall back to the defaults.
func NewAdaptive(start Tier, cfg AdaptiveConfig) *Adaptive {
	def := DefaultAdaptiveConfig()
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = def.WindowSize
	}
	if cfg.PromoteAvg == 0 {
		cfg.PromoteAvg = def.PromoteAvg
	}
	if cfg.DemoteAvg == 0 {
		cfg.DemoteAvg = def.DemoteAvg
	}
	if !start.Valid() {
		start = Beginner
	}
	return &Adaptive{cfg: cfg, tier: start, window: make([]float64, 0, cfg.WindowSize)}
}

// Tier is the controller's current difficulty.
func (a *Adaptive) Tier() Tier { return a.tier }

// Total is the number of grades recorded since the last Reset.
func (a *Adaptive) Total() int { return a.total }

// WindowAvg is the mean grade over the buffered window, 0 when empty.
func (a *Adaptive) WindowAvg() float64 {
	if len(a.window) == 0 {
		return 0
	}
	var sum float64
	for _, g := range a.window {
		sum += g
	}
	return sum / float64(len(a.window))
}

// Record feeds one grade value (1..5) into the window and returns the tier
// in force afterwards plus whether it changed. Tier moves at most one step
// per call and saturates at the extremes; the window is kept across
// transitions so momentum carries over.
func (a *Adaptive) Record(gradeValue int) (Tier, bool) {
	g := float64(gradeValue)
	if len(a.window) < a.cfg.WindowSize {
		a.window = append(a.window, g)
	} else {
		a.window[a.head] = g
		a.head = (a.head + 1) % a.cfg.WindowSize
		a.filled = true
	}
	if len(a.window) == a.cfg.WindowSize {
		a.filled = true
	}
	a.total++

	if !a.filled {
		return a.tier, false
	}
	avg := a.WindowAvg()
	switch {
	case avg >= a.cfg.PromoteAvg && a.tier < Advanced:
		a.tier++
		return a.tier, true
	case avg <= a.cfg.DemoteAvg && a.tier > Beginner:
		a.tier--
		return a.tier, true
	}
	return a.tier, false
}

// Reset empties the window and moves the controller back to the given tier.
func (a *Adaptive) Reset(tier Tier) {
	if !tier.Valid() {
		tier = Beginner
	}
	a.tier = tier
	a.window = a.window[:0]
	a.head = 0
	a.filled = false
	a.total = 0
}

// AdaptiveSnapshot is a read-only view of the controller state.
type AdaptiveSnapshot struct {
	Tier      Tier    `json:"-"`
	TierName  string  `json:"difficulty"`
	WindowAvg float64 `json:"window_avg"`
	Total     int     `json:"total_graded"`
}

// Snapshot captures the current state for reporting.
func (a *Adaptive) Snapshot() AdaptiveSnapshot {
	return AdaptiveSnapshot{
		Tier:      a.tier,
		TierName:  a.tier.String(),
		WindowAvg: a.WindowAvg(),
		Total:     a.total,
	}
}
