package card

import "time"

// Card is the scheduling state of a single learning item for one learner.
//
// Interval is a magnitude whose unit depends on State: minutes while the card
// is in Learning or Relearning, whole days while it is in Review. Due and
// LastReviewed are absolute times; LastReviewed is zero for a card that has
// never been rated.
type Card struct {
	ID     string
	NoteID string // grouping key for sibling burying; empty = no siblings

	State        State
	Interval     float64 // minutes in Learning/Relearning, days in Review
	Ease         float64
	Due          time.Time
	LastReviewed time.Time
	Repetitions  int // successful review-state passes
	Lapses       int // Again ratings while in Review
	LearningStep int // index into the active step sequence

	IsLeech     bool
	IsSuspended bool
	IsBuried    bool

	// Optional embedded display content. The scheduler never touches these.
	Front string
	Back  string
}

// New creates a card in the New state, due immediately.
func New(id string, now time.Time) Card {
	return Card{
		ID:  id,
		Due: now,
	}
}

// Clone returns a copy of the card. All fields are value types, so a plain
// copy is a deep copy; the method exists to make copy-on-write sites explicit.
func (c Card) Clone() Card {
	return c
}

// Suspend marks the card suspended. A suspended card is skipped by selection
// and is a no-op for the scheduler.
func (c Card) Suspend() Card {
	c.IsSuspended = true
	return c
}

// Unsuspend clears the suspended flag and, if the suspension came from leech
// detection, leaves the leech flag in place so the condition stays visible.
func (c Card) Unsuspend() Card {
	c.IsSuspended = false
	return c
}

// Bury marks the card buried until explicitly unburied or the day rolls over.
func (c Card) Bury() Card {
	c.IsBuried = true
	return c
}

// Unbury clears the buried flag.
func (c Card) Unbury() Card {
	c.IsBuried = false
	return c
}

// Reset returns the card to a pristine New state, due now. Content and the
// grouping key are preserved; all scheduling progress and flags are dropped.
func (c Card) Reset(now time.Time) Card {
	return Card{
		ID:     c.ID,
		NoteID: c.NoteID,
		Due:    now,
		Front:  c.Front,
		Back:   c.Back,
	}
}
