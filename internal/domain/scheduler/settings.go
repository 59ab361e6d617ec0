package scheduler

import (
	"fmt"
	"math"
)

// LeechAction is what happens to a card once its lapse count crosses the
// leech threshold.
type LeechAction string

const (
	LeechActionSuspend LeechAction = "suspend"
	LeechActionTag     LeechAction = "tag" // tagging itself is an external concern
)

// NewCardOrder controls which eligible new card the selector picks.
type NewCardOrder string

const (
	NewCardOrderFIFO   NewCardOrder = "fifo"
	NewCardOrderRandom NewCardOrder = "random"
)

// Settings is the per-learner, per-deck scheduling configuration. It is always
// passed explicitly; nothing in this package holds configuration state.
//
// Step sequences are in minutes, interval fields in days.
type Settings struct {
	NewCardsPerDay   int `json:"new_cards_per_day"`
	MaxReviewsPerDay int `json:"max_reviews_per_day"` // 0 = unlimited

	LearningSteps   []float64 `json:"learning_steps"`   // minutes
	RelearningSteps []float64 `json:"relearning_steps"` // minutes

	GraduatingInterval int `json:"graduating_interval"` // days
	EasyInterval       int `json:"easy_interval"`       // days

	StartingEase     float64 `json:"starting_ease"`
	MinimumEase      float64 `json:"minimum_ease"`
	AgainEasePenalty float64 `json:"again_ease_penalty"`
	EasyEaseBonus    float64 `json:"easy_ease_bonus"`

	HardIntervalFactor  float64 `json:"hard_interval_factor"`
	EasyIntervalFactor  float64 `json:"easy_interval_factor"`
	LapseRecoveryFactor float64 `json:"lapse_recovery_factor"`
	IntervalModifier    float64 `json:"interval_modifier"`

	LeechThreshold int         `json:"leech_threshold"`
	LeechAction    LeechAction `json:"leech_action"`

	NewCardOrder NewCardOrder `json:"new_card_order"`
	ReviewAhead  bool         `json:"review_ahead"`
	BurySiblings bool         `json:"bury_siblings"`

	MaxInterval int `json:"max_interval"` // days
}

// Default returns the stock configuration.
func Default() Settings {
	return Settings{
		NewCardsPerDay:      20,
		MaxReviewsPerDay:    200,
		LearningSteps:       []float64{1, 10},
		RelearningSteps:     []float64{10, 1440},
		GraduatingInterval:  1,
		EasyInterval:        4,
		StartingEase:        2.5,
		MinimumEase:         1.3,
		AgainEasePenalty:    0.2,
		EasyEaseBonus:       0.15,
		HardIntervalFactor:  1.2,
		EasyIntervalFactor:  1.3,
		LapseRecoveryFactor: 0.5,
		IntervalModifier:    1.0,
		LeechThreshold:      8,
		LeechAction:         LeechActionSuspend,
		NewCardOrder:        NewCardOrderFIFO,
		ReviewAhead:         false,
		BurySiblings:        true,
		MaxInterval:         36500,
	}
}

// Warning describes one repaired configuration violation. Warnings are
// informational; validation never fails.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate sanitizes an arbitrary settings value into one guaranteed to
// satisfy every documented bound, substituting the default and recording a
// warning for each violation. It is the single point where untrusted
// configuration becomes trustworthy for the rest of the engine.
//
// Validate is idempotent: applied to an already-valid record it returns an
// identical record and no warnings.
func Validate(s Settings) (Settings, []Warning) {
	def := Default()
	var warnings []Warning

	warn := func(field, format string, args ...any) {
		warnings = append(warnings, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	intField := func(field string, v *int, min, max, fallback int) {
		if *v < min || *v > max {
			warn(field, "%d outside [%d, %d], using %d", *v, min, max, fallback)
			*v = fallback
		}
	}
	floatField := func(field string, v *float64, min, max, fallback float64) {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			warn(field, "not a finite number, using %g", fallback)
			*v = fallback
			return
		}
		if *v < min || *v > max {
			warn(field, "%g outside [%g, %g], using %g", *v, min, max, fallback)
			*v = fallback
		}
	}
	stepsField := func(field string, v *[]float64, fallback []float64) {
		ok := len(*v) > 0
		for _, step := range *v {
			if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
				ok = false
				break
			}
		}
		if !ok {
			warn(field, "must be a non-empty sequence of positive minutes, using default")
			*v = append([]float64(nil), fallback...)
		}
	}

	stepsField("learning_steps", &s.LearningSteps, def.LearningSteps)
	stepsField("relearning_steps", &s.RelearningSteps, def.RelearningSteps)

	intField("new_cards_per_day", &s.NewCardsPerDay, 0, 1000, def.NewCardsPerDay)
	intField("max_reviews_per_day", &s.MaxReviewsPerDay, 0, 10000, def.MaxReviewsPerDay)
	intField("graduating_interval", &s.GraduatingInterval, 1, 365, def.GraduatingInterval)
	intField("easy_interval", &s.EasyInterval, 1, 365, def.EasyInterval)
	intField("leech_threshold", &s.LeechThreshold, 1, 100, def.LeechThreshold)
	intField("max_interval", &s.MaxInterval, 1, 36500, def.MaxInterval)

	floatField("starting_ease", &s.StartingEase, 1.3, 5.0, def.StartingEase)
	floatField("minimum_ease", &s.MinimumEase, 1.0, 2.0, def.MinimumEase)
	floatField("again_ease_penalty", &s.AgainEasePenalty, 0, 1.0, def.AgainEasePenalty)
	floatField("easy_ease_bonus", &s.EasyEaseBonus, 0, 1.0, def.EasyEaseBonus)
	floatField("hard_interval_factor", &s.HardIntervalFactor, 0.5, 2.0, def.HardIntervalFactor)
	floatField("easy_interval_factor", &s.EasyIntervalFactor, 1.0, 3.0, def.EasyIntervalFactor)
	floatField("lapse_recovery_factor", &s.LapseRecoveryFactor, 0, 1.0, def.LapseRecoveryFactor)
	floatField("interval_modifier", &s.IntervalModifier, 0.1, 3.0, def.IntervalModifier)

	// Starting ease below the floor would make the invariant unsatisfiable
	// from the first graduation.
	if s.StartingEase < s.MinimumEase {
		warn("starting_ease", "%g below minimum ease %g, using %g", s.StartingEase, s.MinimumEase, def.StartingEase)
		s.StartingEase = def.StartingEase
		s.MinimumEase = def.MinimumEase
	}

	switch s.LeechAction {
	case LeechActionSuspend, LeechActionTag:
	default:
		warn("leech_action", "%q is not one of suspend|tag, using %q", s.LeechAction, def.LeechAction)
		s.LeechAction = def.LeechAction
	}

	switch s.NewCardOrder {
	case NewCardOrderFIFO, NewCardOrderRandom:
	default:
		warn("new_card_order", "%q is not one of fifo|random, using %q", s.NewCardOrder, def.NewCardOrder)
		s.NewCardOrder = def.NewCardOrder
	}

	return s, warnings
}
