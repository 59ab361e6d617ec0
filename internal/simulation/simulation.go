// Package simulation forecasts review load by replaying synthetic learners
// against the real scheduling core. Each learner profile runs as one job on
// the worker pool; the scheduler, selector and tracker see exactly the code
// paths a live session would.
package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cardloop/backend/internal/domain/card"
	"github.com/cardloop/backend/internal/domain/scheduler"
	"github.com/cardloop/backend/internal/domain/session"
	"github.com/cardloop/backend/internal/worker"
)

// Profile describes how a simulated learner answers. Probabilities are
// cumulative-sampled in rating order; the Easy share is whatever remains.
type Profile struct {
	Name   string
	PAgain float64
	PHard  float64
	PGood  float64
}

// Typical answer mixes, roughly a struggling, an average and a strong learner.
var DefaultProfiles = []Profile{
	{Name: "struggling", PAgain: 0.30, PHard: 0.30, PGood: 0.35},
	{Name: "average", PAgain: 0.10, PHard: 0.20, PGood: 0.60},
	{Name: "strong", PAgain: 0.03, PHard: 0.07, PGood: 0.60},
}

// DayLoad is one simulated day's counters.
type DayLoad struct {
	Day        int
	NewStudied int
	Reviews    int
	Ratings    int
}

// Result summarizes one learner profile's full run.
type Result struct {
	Profile   string
	Days      []DayLoad
	Graduated int
	Leeches   int
	Suspended int
}

// Run simulates days of study over a synthetic deck of cardCount cards, one
// job per profile, and returns results in profile order. Deterministic for a
// given seed as long as settings keep the fifo new-card order.
func Run(cardCount, days int, settings scheduler.Settings, profiles []Profile, seed int64) []Result {
	settings, _ = scheduler.Validate(settings)

	pool := worker.NewPool[Result](len(profiles), len(profiles))
	for i, p := range profiles {
		p := p
		rng := rand.New(rand.NewSource(seed + int64(i)))
		pool.Submit(p.Name, func() Result {
			return runLearner(cardCount, days, settings, p, rng)
		})
	}
	pool.Close()

	byName := make(map[string]Result, len(profiles))
	for range profiles {
		r := <-pool.Results()
		byName[r.JobID] = r.Output
	}

	results := make([]Result, len(profiles))
	for i, p := range profiles {
		results[i] = byName[p.Name]
	}
	return results
}

// runLearner replays one learner: every simulated day rolls the session over,
// then rates cards until the selector runs dry.
func runLearner(cardCount, days int, settings scheduler.Settings, p Profile, rng *rand.Rand) Result {
	start := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	cards := make(map[string]card.Card, cardCount)
	for i := 0; i < cardCount; i++ {
		c := card.New(fmt.Sprintf("card-%04d", i), start)
		cards[c.ID] = c
	}

	midnight := start.Truncate(24 * time.Hour)
	sess := session.New("sim-"+p.Name, "learner-"+p.Name, "deck-sim", midnight)
	res := Result{Profile: p.Name}

	for day := 0; day < days; day++ {
		dayStart := midnight.AddDate(0, 0, day)
		now := dayStart.Add(9 * time.Hour)
		dayEnd := dayStart.AddDate(0, 0, 1)
		sess = session.Rollover(sess, dayStart)
		for id, c := range cards {
			if c.IsBuried {
				cards[id] = c.Unbury()
			}
		}

		load := DayLoad{Day: day}
		// Generous guard; a day can never legitimately need this many ratings.
		for i := 0; i < cardCount*50; i++ {
			cardID, ok := session.NextCard(cards, sess, settings, now)
			if !ok {
				// Learning steps may come due later today; jump to the
				// earliest one instead of ending the day early.
				next, found := nextLearningDue(cards, now, dayEnd)
				if !found {
					break
				}
				now = next
				continue
			}

			before := cards[cardID]
			rating := p.sample(rng)
			after := scheduler.Schedule(before, rating, settings, now)
			sess = session.ApplyReview(sess, before, rating, after, cards, settings, now)
			cards[cardID] = after

			load.Ratings++
			if before.State == card.StateNew {
				load.NewStudied++
			}
			if before.State == card.Review {
				load.Reviews++
			}
			now = now.Add(15 * time.Second)
		}
		res.Days = append(res.Days, load)
	}

	for _, c := range cards {
		if c.State == card.Review {
			res.Graduated++
		}
		if c.IsLeech {
			res.Leeches++
		}
		if c.IsSuspended {
			res.Suspended++
		}
	}
	return res
}

// nextLearningDue finds the earliest learning-card due time in (now, dayEnd).
func nextLearningDue(cards map[string]card.Card, now, dayEnd time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, c := range cards {
		if !c.State.InLearning() || c.IsSuspended || c.IsBuried {
			continue
		}
		if c.Due.After(now) && c.Due.Before(dayEnd) {
			if !found || c.Due.Before(best) {
				best = c.Due
				found = true
			}
		}
	}
	return best, found
}

func (p Profile) sample(rng *rand.Rand) card.Rating {
	r := rng.Float64()
	switch {
	case r < p.PAgain:
		return card.Again
	case r < p.PAgain+p.PHard:
		return card.Hard
	case r < p.PAgain+p.PHard+p.PGood:
		return card.Good
	default:
		return card.Easy
	}
}
