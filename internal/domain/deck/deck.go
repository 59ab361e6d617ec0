package deck

import (
	"errors"

	"github.com/cardloop/backend/internal/id"
)

// DefaultTimezone anchors day boundaries when a deck does not name one.
const DefaultTimezone = "UTC"

// Deck is a named collection of cards studied together. Timezone is the IANA
// zone used for the deck's day boundaries (counter resets, bury expiry).
type Deck struct {
	ID       string
	Name     string
	Timezone string
}

// New creates a deck with the default timezone.
func New(name string) *Deck {
	return &Deck{
		ID:       id.GenerateID(),
		Name:     name,
		Timezone: DefaultTimezone,
	}
}

// NewWithTimezone creates a deck anchored to the given IANA timezone name.
// The name is not resolved here; the day-boundary utility reports unknown
// zones when they are actually used.
func NewWithTimezone(name, tz string) *Deck {
	d := New(name)
	if tz != "" {
		d.Timezone = tz
	}
	return d
}

// Validate checks the fields a consumer supplies directly.
func (d *Deck) Validate() error {
	if d.Name == "" {
		return errors.New("deck name cannot be empty")
	}
	return nil
}
